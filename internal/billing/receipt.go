package billing

import (
	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
)

// PaymentDetails computes the receipt snapshot of a payment. It returns nil
// when the payment, its installment, the installment's pricing or the
// pricing's academic year cannot be found.
//
// The balance is taken against the whole pricing (every installment), minus
// the student's earlier payments on the same installment. Earlier means
// Payment.Before: creation time, then id.
func PaymentDetails(paymentID uint, l Ledger) *domain.PaymentDetails {
	var payment *domain.Payment
	for i := range l.Payments {
		if l.Payments[i].ID == paymentID {
			payment = &l.Payments[i]
			break
		}
	}
	if payment == nil {
		return nil
	}

	inst, ok := indexInstallments(l.Installments)[payment.InstallmentID]
	if !ok {
		return nil
	}
	pricing, ok := indexPricings(l.Pricings)[inst.PricingID]
	if !ok {
		return nil
	}
	var year *domain.AcademicYear
	for i := range l.AcademicYears {
		if l.AcademicYears[i].ID == pricing.AcademicYearID {
			year = &l.AcademicYears[i]
			break
		}
	}
	if year == nil {
		return nil
	}

	prior := decimal.Zero
	for _, other := range l.Payments {
		if other.ID == payment.ID ||
			other.StudentID != payment.StudentID ||
			other.InstallmentID != payment.InstallmentID {
			continue
		}
		if other.Before(*payment) {
			prior = prior.Add(other.Amount)
		}
	}

	before := TotalDue(pricing, l.Installments).Sub(prior)
	details := &domain.PaymentDetails{
		Payment:       *payment,
		AcademicYear:  *year,
		FeeTypeLabel:  pricing.Label,
		AmountPaid:    payment.Amount,
		BalanceBefore: before,
		BalanceAfter:  before.Sub(payment.Amount),
	}
	for i := range l.Students {
		if l.Students[i].ID == payment.StudentID {
			s := l.Students[i]
			details.Student = &s
			break
		}
	}
	return details
}
