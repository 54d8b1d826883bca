// Package billing computes a student's position on the fees billed to them:
// paid versus due per fee type, registration discounts, the balance snapshot
// printed on each receipt and installment status.
//
// Every function here is pure and total. Inputs are expected to have passed
// validation at the data boundary; dangling references are skipped.
package billing

import (
	"sort"

	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
)

// Ledger groups the collections the receipt computation resolves against.
type Ledger struct {
	Payments      []domain.Payment
	Installments  []domain.Installment
	Pricings      []domain.Pricing
	AcademicYears []domain.AcademicYear
	Students      []domain.Student
}

// PaymentSummary accumulates the student's payments per fee type. Pricings of
// the cohort without any payment yet are listed with Paid = 0. Rows are
// ordered by fee type id.
func PaymentSummary(studentID uint, payments []domain.Payment, pricings []domain.Pricing, installments []domain.Installment, cohort domain.Cohort) []domain.FeeTypeSummary {
	installmentsByID := indexInstallments(installments)
	pricingsByID := indexPricings(pricings)

	byFeeType := make(map[uint]*domain.FeeTypeSummary)
	for _, p := range payments {
		if p.StudentID != studentID {
			continue
		}
		inst, ok := installmentsByID[p.InstallmentID]
		if !ok {
			continue
		}
		pricing, ok := pricingsByID[inst.PricingID]
		if !ok {
			continue
		}
		row, ok := byFeeType[pricing.FeeTypeID]
		if !ok {
			row = newSummaryRow(pricing)
			byFeeType[pricing.FeeTypeID] = row
		}
		row.Paid = row.Paid.Add(p.Amount)
	}

	for _, pricing := range pricings {
		if !pricing.Matches(cohort) {
			continue
		}
		if _, ok := byFeeType[pricing.FeeTypeID]; !ok {
			byFeeType[pricing.FeeTypeID] = newSummaryRow(pricing)
		}
	}

	summary := make([]domain.FeeTypeSummary, 0, len(byFeeType))
	for _, row := range byFeeType {
		summary = append(summary, *row)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].FeeTypeID < summary[j].FeeTypeID
	})
	return summary
}

func newSummaryRow(p domain.Pricing) *domain.FeeTypeSummary {
	return &domain.FeeTypeSummary{
		FeeTypeID: p.FeeTypeID,
		Label:     p.Label,
		Total:     p.Amount,
		Paid:      decimal.Zero,
		PricingID: p.ID,
	}
}

// TotalPaymentAmounts reduces a summary. RemainingAmount is not clamped and
// goes negative when the student overpaid.
func TotalPaymentAmounts(summary []domain.FeeTypeSummary) domain.PaymentTotals {
	totals := domain.PaymentTotals{
		TotalAmount: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}
	for _, row := range summary {
		totals.TotalAmount = totals.TotalAmount.Add(row.Total)
		totals.TotalPaid = totals.TotalPaid.Add(row.Paid)
	}
	totals.RemainingAmount = totals.TotalAmount.Sub(totals.TotalPaid)
	return totals
}

// TotalDue is the sum of the installments of pricing, or the pricing amount
// when it has no installments.
func TotalDue(pricing domain.Pricing, installments []domain.Installment) decimal.Decimal {
	total := decimal.Zero
	found := false
	for _, inst := range installments {
		if inst.PricingID == pricing.ID {
			total = total.Add(inst.AmountDue)
			found = true
		}
	}
	if !found {
		return pricing.Amount
	}
	return total
}

// PricingBalance is what the student still owes on pricing, counting every
// payment made against any of its installments.
func PricingBalance(studentID uint, pricing domain.Pricing, installments []domain.Installment, payments []domain.Payment) decimal.Decimal {
	ofPricing := make(map[uint]bool)
	for _, inst := range installments {
		if inst.PricingID == pricing.ID {
			ofPricing[inst.ID] = true
		}
	}
	paid := decimal.Zero
	for _, p := range payments {
		if p.StudentID == studentID && ofPricing[p.InstallmentID] {
			paid = paid.Add(p.Amount)
		}
	}
	return TotalDue(pricing, installments).Sub(paid)
}

func indexInstallments(installments []domain.Installment) map[uint]domain.Installment {
	m := make(map[uint]domain.Installment, len(installments))
	for _, inst := range installments {
		m[inst.ID] = inst
	}
	return m
}

func indexPricings(pricings []domain.Pricing) map[uint]domain.Pricing {
	m := make(map[uint]domain.Pricing, len(pricings))
	for _, p := range pricings {
		m[p.ID] = p
	}
	return m
}
