package billing

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashdesk/internal/domain"
)

func TestPaymentDetails(t *testing.T) {
	l := fixture()
	l.Payments = []domain.Payment{
		pay(1, 7, 11, 30000, t0),
		pay(2, 7, 11, 15000, t0.Add(24*time.Hour)),
		pay(3, 8, 11, 50000, t0.Add(time.Hour)),
	}

	got := PaymentDetails(2, l)

	require.NotNil(t, got)
	require.NotNil(t, got.Student)
	assert.Equal(t, "Awa Diallo", got.Student.FullName())
	assert.Equal(t, "2025-2026", got.AcademicYear.Label)
	assert.Equal(t, "Scolarité", got.FeeTypeLabel)
	assertAmount(t, 15000, got.AmountPaid)
	assertAmount(t, 70000, got.BalanceBefore)
	assertAmount(t, 55000, got.BalanceAfter)
}

func TestPaymentDetails_FirstPaymentStartsFromWholePricing(t *testing.T) {
	l := fixture()
	l.Payments = []domain.Payment{pay(1, 7, 12, 20000, t0)}

	got := PaymentDetails(1, l)

	require.NotNil(t, got)
	assertAmount(t, 100000, got.BalanceBefore, "balance is against both installments")
	assertAmount(t, 80000, got.BalanceAfter)
}

func TestPaymentDetails_NotFound(t *testing.T) {
	base := func() Ledger {
		l := fixture()
		l.Payments = []domain.Payment{pay(1, 7, 11, 30000, t0)}
		return l
	}

	tests := []struct {
		name   string
		mutate func(*Ledger)
		id     uint
	}{
		{"unknown payment", func(*Ledger) {}, 99},
		{"missing installment", func(l *Ledger) { l.Installments = nil }, 1},
		{"missing pricing", func(l *Ledger) { l.Pricings = nil }, 1},
		{"missing academic year", func(l *Ledger) { l.AcademicYears = nil }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := base()
			tt.mutate(&l)
			assert.Nil(t, PaymentDetails(tt.id, l))
		})
	}
}

func TestPaymentDetails_MissingStudentStillResolves(t *testing.T) {
	l := fixture()
	l.Students = nil
	l.Payments = []domain.Payment{pay(1, 7, 11, 30000, t0)}

	got := PaymentDetails(1, l)
	require.NotNil(t, got)
	assert.Nil(t, got.Student)
}

func TestPaymentDetails_BalanceChainsAcrossPayments(t *testing.T) {
	l := fixture()
	// Shuffled input, two of them share a timestamp.
	l.Payments = []domain.Payment{
		pay(4, 7, 11, 5000, t0.Add(3*time.Hour)),
		pay(2, 7, 11, 10000, t0.Add(time.Hour)),
		pay(1, 7, 11, 20000, t0),
		pay(3, 7, 11, 7000, t0.Add(time.Hour)),
	}

	ordered := append([]domain.Payment(nil), l.Payments...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	var prev *domain.PaymentDetails
	for _, p := range ordered {
		d := PaymentDetails(p.ID, l)
		require.NotNil(t, d)
		if prev != nil {
			assert.True(t, prev.BalanceAfter.Equal(d.BalanceBefore),
				"payment %d: before %s, previous after %s", p.ID, d.BalanceBefore, prev.BalanceAfter)
		}
		prev = d
	}
	assertAmount(t, 100000-20000-10000-7000-5000, prev.BalanceAfter)
}
