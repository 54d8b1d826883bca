package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as whole currency units with the thousands
// separator of its locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// NewFormatterFor builds a formatter from a BCP 47 locale string, falling back
// to French when locale cannot be parsed.
func NewFormatterFor(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return NewFormatter(tag)
}

// Format rounds d half away from zero to zero decimals.
func (f *Formatter) Format(d decimal.Decimal) string {
	return f.printer.Sprintf("%d", d.Round(0).IntPart())
}

// FormatAny formats a loosely typed value; unreadable input renders as "0".
func (f *Formatter) FormatAny(v any) string {
	return f.Format(Of(v))
}

var defaultFormatter = NewFormatter(language.French)

// Format renders d with French grouping, e.g. "12 346".
func Format(d decimal.Decimal) string {
	return defaultFormatter.Format(d)
}
