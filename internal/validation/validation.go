// Package validation collects field-level violations for data entering the
// system, either from an imported dataset or from an API request.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Violation codes.
const (
	CodeRequired    = "required"
	CodePositive    = "must_be_positive"
	CodeNonNegative = "must_not_be_negative"
	CodeOneOf       = "not_allowed"
)

// Violations maps a field name to a violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Merge copies other into v, prefixing each field with prefix.
func (v Violations) Merge(prefix string, other Violations) {
	for field, code := range other {
		v[prefix+field] = code
	}
}

// Error renders violations in a stable order, e.g. "amount: must_be_positive; id: required".
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return strings.Join(parts, "; ")
}

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = CodeRequired
	}
}

func RequiredID(field string, id uint, v Violations) {
	if id == 0 {
		v[field] = CodeRequired
	}
}

func Positive(field string, val decimal.Decimal, v Violations) {
	if !val.IsPositive() {
		v[field] = CodePositive
	}
}

func NonNegative(field string, val decimal.Decimal, v Violations) {
	if val.IsNegative() {
		v[field] = CodeNonNegative
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = CodeOneOf
}
