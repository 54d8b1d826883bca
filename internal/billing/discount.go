package billing

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
	"cashdesk/internal/money"
)

var hundred = decimal.NewFromInt(100)

// ApplyDiscount applies the registration discount to total.
//
// A fixed discount amount wins over a percentage. When both are present the
// percentage is only carried for display and the result is flagged with
// Conflict. A zero amount counts as no amount, since registrations store
// "0.00" for an unset fixed discount. Malformed values are logged and ignored; a nil registration
// means no discount.
func ApplyDiscount(total decimal.Decimal, reg *domain.Registration) domain.DiscountResult {
	res := domain.DiscountResult{
		DiscountAmount:     decimal.Zero,
		DiscountPercentage: decimal.Zero,
		TotalAfterDiscount: total,
	}
	if reg == nil {
		return res
	}

	pct, hasPct := discountField(reg, "discount_percentage", reg.DiscountPercentage)
	if hasPct && pct.GreaterThan(hundred) {
		slog.Warn("discount percentage above 100 ignored",
			"student_id", reg.StudentID, "discount_percentage", reg.DiscountPercentage)
		hasPct = false
	}
	amount, hasAmount := discountField(reg, "discount_amount", reg.DiscountAmount)
	if hasAmount && amount.IsZero() {
		hasAmount = false
	}

	switch {
	case hasAmount:
		res.DiscountAmount = amount
		if hasPct {
			res.DiscountPercentage = pct
			res.Conflict = true
			slog.Warn("registration has both discount amount and percentage, applying the amount",
				"student_id", reg.StudentID,
				"discount_amount", amount.String(),
				"discount_percentage", pct.String())
		}
	case hasPct:
		res.DiscountPercentage = pct
		res.DiscountAmount = total.Mul(pct).Div(hundred)
	}
	res.TotalAfterDiscount = total.Sub(res.DiscountAmount)
	return res
}

func discountField(reg *domain.Registration, field, raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := money.ParseNonNegative(raw)
	if err != nil {
		slog.Warn("ignoring malformed registration discount",
			"student_id", reg.StudentID, "field", field, "value", raw, "error", err)
		return decimal.Zero, false
	}
	return d, true
}
