package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashdesk/internal/domain"
)

var (
	t0     = time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	cohort = domain.Cohort{AcademicYearID: 1, LevelID: 2, AssignmentTypeID: 3}
)

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertAmount(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, got.Equal(amt(want)), "want %d, got %s %v", want, got.String(), msgAndArgs)
}

// fixture: tuition 100000 in two installments, canteen 20000 in one.
func fixture() Ledger {
	return Ledger{
		Pricings: []domain.Pricing{
			{ID: 1, FeeTypeID: 10, Label: "Scolarité", Amount: amt(100000), AcademicYearID: 1, LevelID: 2, AssignmentTypeID: 3},
			{ID: 2, FeeTypeID: 20, Label: "Cantine", Amount: amt(20000), AcademicYearID: 1, LevelID: 2, AssignmentTypeID: 3},
			{ID: 3, FeeTypeID: 30, Label: "Transport", Amount: amt(15000), AcademicYearID: 1, LevelID: 9, AssignmentTypeID: 3},
		},
		Installments: []domain.Installment{
			{ID: 11, PricingID: 1, AmountDue: amt(50000)},
			{ID: 12, PricingID: 1, AmountDue: amt(50000)},
			{ID: 21, PricingID: 2, AmountDue: amt(20000)},
		},
		AcademicYears: []domain.AcademicYear{{ID: 1, Label: "2025-2026"}},
		Students:      []domain.Student{{ID: 7, FirstName: "Awa", LastName: "Diallo"}},
	}
}

func pay(id, student, installment uint, amount int64, at time.Time) domain.Payment {
	return domain.Payment{ID: id, StudentID: student, InstallmentID: installment, Amount: amt(amount), CreatedAt: at}
}

func TestPaymentSummary(t *testing.T) {
	l := fixture()
	payments := []domain.Payment{
		pay(1, 7, 11, 30000, t0),
		pay(2, 8, 11, 50000, t0),
	}

	summary := PaymentSummary(7, payments, l.Pricings[:1], l.Installments, cohort)

	require.Len(t, summary, 1)
	assert.Equal(t, uint(10), summary[0].FeeTypeID)
	assert.Equal(t, uint(1), summary[0].PricingID)
	assert.Equal(t, "Scolarité", summary[0].Label)
	assertAmount(t, 100000, summary[0].Total)
	assertAmount(t, 30000, summary[0].Paid)

	totals := TotalPaymentAmounts(summary)
	assertAmount(t, 100000, totals.TotalAmount)
	assertAmount(t, 30000, totals.TotalPaid)
	assertAmount(t, 70000, totals.RemainingAmount)
}

func TestPaymentSummary_PreSeedsUnpaidCohortPricings(t *testing.T) {
	l := fixture()
	payments := []domain.Payment{
		pay(1, 7, 11, 30000, t0),
		pay(2, 7, 12, 20000, t0.Add(time.Hour)),
	}

	summary := PaymentSummary(7, payments, l.Pricings, l.Installments, cohort)

	require.Len(t, summary, 2, "transport belongs to another level")
	assert.Equal(t, uint(10), summary[0].FeeTypeID)
	assertAmount(t, 50000, summary[0].Paid)
	assert.Equal(t, uint(20), summary[1].FeeTypeID)
	assertAmount(t, 0, summary[1].Paid)
	assertAmount(t, 20000, summary[1].Total)
}

func TestPaymentSummary_SkipsDanglingReferences(t *testing.T) {
	l := fixture()
	payments := []domain.Payment{pay(1, 7, 999, 30000, t0)}

	summary := PaymentSummary(7, payments, l.Pricings, l.Installments, domain.Cohort{})
	assert.Empty(t, summary)
}

func TestPaymentSummary_OrderIndependent(t *testing.T) {
	l := fixture()
	a := []domain.Payment{pay(1, 7, 11, 30000, t0), pay(2, 7, 21, 5000, t0), pay(3, 7, 12, 1000, t0)}
	b := []domain.Payment{a[2], a[0], a[1]}

	sa := PaymentSummary(7, a, l.Pricings, l.Installments, cohort)
	sb := PaymentSummary(7, b, l.Pricings, l.Installments, cohort)
	require.Len(t, sb, len(sa))
	for i := range sa {
		assert.Equal(t, sa[i].FeeTypeID, sb[i].FeeTypeID)
		assert.True(t, sa[i].Paid.Equal(sb[i].Paid))
	}
}

func TestTotalPaymentAmounts_OverpaidIsNegative(t *testing.T) {
	totals := TotalPaymentAmounts([]domain.FeeTypeSummary{
		{Total: amt(20000), Paid: amt(25000)},
	})
	assertAmount(t, -5000, totals.RemainingAmount)
}

func TestTotalPaymentAmounts_Empty(t *testing.T) {
	totals := TotalPaymentAmounts(nil)
	assertAmount(t, 0, totals.TotalAmount)
	assertAmount(t, 0, totals.RemainingAmount)
}

func TestTotalDueAndPricingBalance(t *testing.T) {
	l := fixture()
	assertAmount(t, 100000, TotalDue(l.Pricings[0], l.Installments))
	assertAmount(t, 15000, TotalDue(l.Pricings[2], l.Installments), "no installments falls back to amount")

	payments := []domain.Payment{
		pay(1, 7, 11, 30000, t0),
		pay(2, 7, 12, 10000, t0),
		pay(3, 8, 12, 10000, t0),
		pay(4, 7, 21, 10000, t0),
	}
	assertAmount(t, 60000, PricingBalance(7, l.Pricings[0], l.Installments, payments))
}

func TestInstallmentStatuses(t *testing.T) {
	l := fixture()
	payments := []domain.Payment{
		pay(1, 7, 11, 50000, t0),
		pay(2, 7, 12, 10000, t0),
		pay(3, 8, 21, 20000, t0),
	}

	got := InstallmentStatuses(7, l.Installments, payments)

	assert.Equal(t, map[uint]domain.InstallmentStatus{
		11: domain.InstallmentPaid,
		12: domain.InstallmentPartial,
		21: domain.InstallmentPending,
	}, got)
}
