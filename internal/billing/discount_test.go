package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cashdesk/internal/domain"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name         string
		reg          *domain.Registration
		wantDiscount int64
		wantPct      int64
		wantAfter    int64
		wantConflict bool
	}{
		{
			name:      "no registration",
			reg:       nil,
			wantAfter: 100000,
		},
		{
			name:      "no discount fields",
			reg:       &domain.Registration{StudentID: 7},
			wantAfter: 100000,
		},
		{
			name:         "percentage",
			reg:          &domain.Registration{StudentID: 7, DiscountPercentage: "20.00"},
			wantDiscount: 20000,
			wantPct:      20,
			wantAfter:    80000,
		},
		{
			name:         "fixed amount",
			reg:          &domain.Registration{StudentID: 7, DiscountAmount: "15 000"},
			wantDiscount: 15000,
			wantAfter:    85000,
		},
		{
			name:         "both present keeps amount and flags conflict",
			reg:          &domain.Registration{StudentID: 7, DiscountAmount: "5000", DiscountPercentage: "20"},
			wantDiscount: 5000,
			wantPct:      20,
			wantAfter:    95000,
			wantConflict: true,
		},
		{
			name:      "malformed percentage fails soft",
			reg:       &domain.Registration{StudentID: 7, DiscountPercentage: "vingt"},
			wantAfter: 100000,
		},
		{
			name:      "negative percentage ignored",
			reg:       &domain.Registration{StudentID: 7, DiscountPercentage: "-10"},
			wantAfter: 100000,
		},
		{
			name:      "percentage above 100 ignored",
			reg:       &domain.Registration{StudentID: 7, DiscountPercentage: "150"},
			wantAfter: 100000,
		},
		{
			name:         "zero amount defers to percentage",
			reg:          &domain.Registration{StudentID: 7, DiscountAmount: "0.00", DiscountPercentage: "10"},
			wantDiscount: 10000,
			wantPct:      10,
			wantAfter:    90000,
		},
		{
			name:      "zero amount alone",
			reg:       &domain.Registration{StudentID: 7, DiscountAmount: "0"},
			wantAfter: 100000,
		},
		{
			name:         "malformed amount falls back to percentage",
			reg:          &domain.Registration{StudentID: 7, DiscountAmount: "n/a", DiscountPercentage: "10"},
			wantDiscount: 10000,
			wantPct:      10,
			wantAfter:    90000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(amt(100000), tt.reg)

			assertAmount(t, tt.wantDiscount, got.DiscountAmount)
			assertAmount(t, tt.wantPct, got.DiscountPercentage)
			assertAmount(t, tt.wantAfter, got.TotalAfterDiscount)
			assert.Equal(t, tt.wantConflict, got.Conflict)
		})
	}
}

func TestApplyDiscount_Idempotent(t *testing.T) {
	reg := &domain.Registration{StudentID: 7, DiscountPercentage: "12.5"}

	first := ApplyDiscount(amt(80000), reg)
	second := ApplyDiscount(amt(80000), reg)

	assert.True(t, first.TotalAfterDiscount.Equal(second.TotalAfterDiscount))
	assertAmount(t, 70000, first.TotalAfterDiscount)
	assert.Equal(t, "12.5", reg.DiscountPercentage, "input is not mutated")
}
