package cashregister

import (
	"fmt"
	"time"

	"cashdesk/internal/domain"
	"cashdesk/internal/money"
)

// Open starts a session on a register with the amount counted in the drawer.
func Open(cashRegisterID, userID uint, rawOpening string, now time.Time) (domain.CashRegisterSession, error) {
	opening, err := money.ParseNonNegative(rawOpening)
	if err != nil {
		return domain.CashRegisterSession{}, err
	}
	if cashRegisterID == 0 {
		return domain.CashRegisterSession{}, domain.NewError(domain.CodeInvalidInput, "cash register is required")
	}
	return domain.CashRegisterSession{
		CashRegisterID: cashRegisterID,
		UserID:         userID,
		OpeningAmount:  opening,
		OpeningDate:    now,
		Status:         domain.SessionOpen,
	}, nil
}

// Close moves an open session to closed with the amount the cashier counted.
// It fails with ALREADY_CLOSED on any session that is not open, whatever the
// amount, and with INVALID_AMOUNT when rawAmount is not a non-negative number.
// s is left untouched on failure. There is no way back to open.
func Close(s *domain.CashRegisterSession, rawAmount string, now time.Time) error {
	if !s.IsOpen() {
		return domain.NewError(domain.CodeAlreadyClosed, fmt.Sprintf("session %d is %s", s.ID, s.Status))
	}
	amount, err := money.ParseNonNegative(rawAmount)
	if err != nil {
		return err
	}
	closedAt := now
	s.Status = domain.SessionClosed
	s.ClosingAmount = &amount
	s.ClosingDate = &closedAt
	return nil
}

// Summarize compares the declared closing amount with the expectation. It
// returns nil for a session that is still open.
func Summarize(s domain.CashRegisterSession, totals domain.SessionTotals) *domain.ClosingSummary {
	if s.Status != domain.SessionClosed || s.ClosingAmount == nil {
		return nil
	}
	return &domain.ClosingSummary{
		Expected:   totals.ExpectedAmount,
		Declared:   *s.ClosingAmount,
		Difference: s.ClosingAmount.Sub(totals.ExpectedAmount),
	}
}
