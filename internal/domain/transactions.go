package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cashdesk/internal/validation"
)

// PaymentMethod is a way of paying (cash, mobile money, transfer...). The
// principal method is the one whose takings sit in the cash drawer.
type PaymentMethod struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	IsPrincipal bool   `json:"is_principal"`
}

// TransactionType defines the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "encaissement"
	TransactionTypeOutcome TransactionType = "décaissement"
)

// Transaction is a ledger entry under a cash-register session. A Payment is
// owned by an income transaction, an Expense by an outcome transaction.
type Transaction struct {
	ID                    uint            `json:"id"`
	CashRegisterSessionID uint            `json:"cash_register_session_id"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	Type                  TransactionType `json:"transaction_type"`
	CreatedAt             time.Time       `json:"created_at"`
}

func (t Transaction) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("id", t.ID, v)
	validation.RequiredID("cash_register_session_id", t.CashRegisterSessionID, v)
	validation.OneOf("transaction_type", string(t.Type), []string{
		string(TransactionTypeIncome), string(TransactionTypeOutcome),
	}, v)
	return v
}

// MethodSplit is the part of a payment settled with one payment method.
type MethodSplit struct {
	PaymentMethodID uint            `json:"id"`
	Amount          decimal.Decimal `json:"pivot_amount"`
}

type Payment struct {
	ID             uint            `json:"id"`
	Reference      string          `json:"reference,omitempty"`
	StudentID      uint            `json:"student_id"`
	InstallmentID  uint            `json:"installment_id"`
	TransactionID  uint            `json:"transaction_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethods []MethodSplit   `json:"payment_methods"`
	CreatedAt      time.Time       `json:"created_at"`
	CashierID      uint            `json:"cashier_id"`
	CashRegisterID uint            `json:"cash_register_id"`
}

// SplitTotal sums the per-method amounts of the payment.
func (p Payment) SplitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, m := range p.PaymentMethods {
		total = total.Add(m.Amount)
	}
	return total
}

// CheckSplit enforces that the method splits add up exactly to Amount.
func (p Payment) CheckSplit() error {
	split := p.SplitTotal()
	if !split.Equal(p.Amount) {
		return NewError(CodeInconsistentSplit,
			fmt.Sprintf("payment methods total %s, payment amount %s", split.String(), p.Amount.String()))
	}
	return nil
}

// Before orders payments chronologically. Payments created at the same
// instant are ordered by ID, which follows insertion order in the store.
func (p Payment) Before(other Payment) bool {
	if p.CreatedAt.Equal(other.CreatedAt) {
		return p.ID < other.ID
	}
	return p.CreatedAt.Before(other.CreatedAt)
}

func (p Payment) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("id", p.ID, v)
	validation.RequiredID("student_id", p.StudentID, v)
	validation.RequiredID("installment_id", p.InstallmentID, v)
	validation.RequiredID("transaction_id", p.TransactionID, v)
	validation.Positive("amount", p.Amount, v)
	for i, m := range p.PaymentMethods {
		sv := make(validation.Violations)
		validation.RequiredID("id", m.PaymentMethodID, sv)
		validation.NonNegative("pivot_amount", m.Amount, sv)
		v.Merge(fmt.Sprintf("payment_methods[%d].", i), sv)
	}
	if len(p.PaymentMethods) > 0 && !p.SplitTotal().Equal(p.Amount) {
		v["payment_methods"] = string(CodeInconsistentSplit)
	}
	return v
}

type Expense struct {
	ID            uint            `json:"id"`
	TransactionID uint            `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	ExpenseTypeID uint            `json:"expense_type_id"`
	Label         string          `json:"label,omitempty"`
}

func (e Expense) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("id", e.ID, v)
	validation.RequiredID("transaction_id", e.TransactionID, v)
	return v
}
