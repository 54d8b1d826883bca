package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"cashdesk/internal/validation"
)

// SessionStatus is the lifecycle state of a cash-register session.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "open"
	SessionClosed SessionStatus = "closed"
)

// CashRegisterSession is a work period of one cash drawer. It is created
// open and moves to closed exactly once.
type CashRegisterSession struct {
	ID             uint             `json:"id"`
	CashRegisterID uint             `json:"cash_register_id"`
	UserID         uint             `json:"user_id"`
	OpeningAmount  decimal.Decimal  `json:"opening_amount"`
	OpeningDate    time.Time        `json:"opening_date"`
	ClosingAmount  *decimal.Decimal `json:"closing_amount,omitempty"`
	ClosingDate    *time.Time       `json:"closing_date,omitempty"`
	Status         SessionStatus    `json:"status"`
}

func (s CashRegisterSession) IsOpen() bool {
	return s.Status == SessionOpen
}

func (s CashRegisterSession) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("id", s.ID, v)
	validation.RequiredID("cash_register_id", s.CashRegisterID, v)
	validation.NonNegative("opening_amount", s.OpeningAmount, v)
	validation.OneOf("status", string(s.Status), []string{string(SessionOpen), string(SessionClosed)}, v)
	if s.Status == SessionClosed && s.ClosingAmount == nil {
		v["closing_amount"] = validation.CodeRequired
	}
	return v
}
