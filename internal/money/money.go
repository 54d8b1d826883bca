// Package money parses and formats currency amounts.
//
// Parsing accepts the forms cashiers actually type or the backend sends:
// "12 345,67", "12345.67", "1.234.567", "10 000 FCFA". Parse and Of are total:
// anything they cannot read becomes zero. ParseStrict is for user entry where
// garbage must be rejected instead.
package money

import (
	"encoding/json"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
)

// Parse converts raw to an amount, returning zero when raw is not a number.
func Parse(raw string) decimal.Decimal {
	d, ok := parse(raw, false)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseStrict converts user-entered raw to an amount. Besides digits,
// separators, spaces and a leading sign it only accepts a trailing currency
// suffix (FCFA, CFA, XOF or F). It fails with INVALID_AMOUNT otherwise; the
// sign is not checked.
func ParseStrict(raw string) (decimal.Decimal, error) {
	d, ok := parse(raw, true)
	if !ok {
		return decimal.Zero, domain.NewError(domain.CodeInvalidAmount, "not a number: "+strings.TrimSpace(raw))
	}
	return d, nil
}

// ParseNonNegative is ParseStrict that also rejects negative amounts.
func ParseNonNegative(raw string) (decimal.Decimal, error) {
	d, err := ParseStrict(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewError(domain.CodeInvalidAmount, "negative amount: "+d.String())
	}
	return d, nil
}

// Of converts a loosely typed value (string, number, nil) to an amount.
func Of(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		return Parse(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return Parse(*x)
	case json.Number:
		return Parse(x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		return Of(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case int32:
		return decimal.NewFromInt(int64(x))
	case uint:
		return decimal.NewFromInt(int64(x))
	case uint64:
		return decimal.NewFromUint64(x)
	}
	return decimal.Zero
}

// currencySuffixes are the units a strict amount may end with, longest first.
var currencySuffixes = []string{"FCFA", "CFA", "XOF", "F"}

func trimCurrency(raw string) string {
	s := strings.TrimRightFunc(raw, unicode.IsSpace)
	for _, suffix := range currencySuffixes {
		if n := len(s) - len(suffix); n >= 0 && strings.EqualFold(s[n:], suffix) {
			return s[:n]
		}
	}
	return s
}

// parse reads raw. In strict mode any rune other than a digit, a separator,
// a space or a leading sign makes it fail; otherwise such runes are dropped.
func parse(raw string, strict bool) (decimal.Decimal, bool) {
	if strict {
		raw = trimCurrency(raw)
	}
	var b strings.Builder
	negative := false
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
		case r >= '0' && r <= '9', r == ',', r == '.':
			b.WriteRune(r)
		case r == '-' || r == '+':
			if b.Len() > 0 {
				return decimal.Zero, false
			}
			negative = negative || r == '-'
		case strict:
			return decimal.Zero, false
		}
	}

	s := b.String()
	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	switch {
	case commas > 0 && dots > 0:
		// The separator that comes last is the decimal one.
		dec, group := ",", "."
		if strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			dec, group = ".", ","
		}
		if strings.Count(s, dec) > 1 {
			return decimal.Zero, false
		}
		s = strings.ReplaceAll(s, group, "")
		s = strings.Replace(s, dec, ".", 1)
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	if !strings.ContainsAny(s, "0123456789") {
		return decimal.Zero, false
	}
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
