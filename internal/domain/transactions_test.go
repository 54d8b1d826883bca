package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayment_CheckSplit(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		splits  []int64
		wantErr bool
	}{
		{"single method", 8000, []int64{8000}, false},
		{"two methods", 8000, []int64{5000, 3000}, false},
		{"short by one unit", 8000, []int64{5000, 2999}, true},
		{"no methods", 8000, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{Amount: decimal.NewFromInt(tt.amount)}
			for i, s := range tt.splits {
				p.PaymentMethods = append(p.PaymentMethods, MethodSplit{PaymentMethodID: uint(i + 1), Amount: decimal.NewFromInt(s)})
			}
			err := p.CheckSplit()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInconsistentSplit))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayment_CheckSplitIsExact(t *testing.T) {
	p := Payment{
		Amount: decimal.RequireFromString("100.10"),
		PaymentMethods: []MethodSplit{
			{PaymentMethodID: 1, Amount: decimal.RequireFromString("0.1")},
			{PaymentMethodID: 2, Amount: decimal.RequireFromString("100.00")},
		},
	}
	assert.NoError(t, p.CheckSplit())
}

func TestPayment_Before(t *testing.T) {
	t0 := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	a := Payment{ID: 2, CreatedAt: t0}
	b := Payment{ID: 1, CreatedAt: t0.Add(time.Millisecond)}
	c := Payment{ID: 3, CreatedAt: t0}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, a.Before(c), "same instant falls back to id order")
	assert.False(t, c.Before(a))
	assert.False(t, a.Before(a))
}

func TestDataset_Validate(t *testing.T) {
	t0 := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	valid := func() *Dataset {
		return &Dataset{
			Pricings:     []Pricing{{ID: 1, FeeTypeID: 1, Label: "Scolarité", Amount: decimal.NewFromInt(100000), AcademicYearID: 1}},
			Installments: []Installment{{ID: 1, PricingID: 1, AmountDue: decimal.NewFromInt(100000)}},
			Sessions:     []CashRegisterSession{{ID: 1, CashRegisterID: 1, Status: SessionOpen}},
			Transactions: []Transaction{{ID: 1, CashRegisterSessionID: 1, TotalAmount: decimal.NewFromInt(5000), Type: TransactionTypeIncome, CreatedAt: t0}},
			Payments: []Payment{{
				ID: 1, StudentID: 1, InstallmentID: 1, TransactionID: 1,
				Amount:         decimal.NewFromInt(5000),
				PaymentMethods: []MethodSplit{{PaymentMethodID: 1, Amount: decimal.NewFromInt(5000)}},
				CreatedAt:      t0,
			}},
		}
	}

	assert.NoError(t, valid().Validate())

	broken := valid()
	broken.Payments[0].PaymentMethods[0].Amount = decimal.NewFromInt(4000)
	broken.Installments[0].PricingID = 9
	err := broken.Validate()
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "payments[0].payment_methods: INCONSISTENT_SPLIT")
	assert.Contains(t, err.Error(), "installments[0].pricing_id: NOT_FOUND")
}
