package billing

import (
	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
)

// InstallmentStatuses derives, for one student, each installment's status
// from the payments made against it: pending with nothing paid, partial below
// the amount due, paid once the amount due is reached.
func InstallmentStatuses(studentID uint, installments []domain.Installment, payments []domain.Payment) map[uint]domain.InstallmentStatus {
	paid := make(map[uint]decimal.Decimal, len(installments))
	for _, p := range payments {
		if p.StudentID == studentID {
			paid[p.InstallmentID] = paid[p.InstallmentID].Add(p.Amount)
		}
	}

	statuses := make(map[uint]domain.InstallmentStatus, len(installments))
	for _, inst := range installments {
		got := paid[inst.ID]
		switch {
		case !got.IsPositive():
			statuses[inst.ID] = domain.InstallmentPending
		case got.LessThan(inst.AmountDue):
			statuses[inst.ID] = domain.InstallmentPartial
		default:
			statuses[inst.ID] = domain.InstallmentPaid
		}
	}
	return statuses
}
