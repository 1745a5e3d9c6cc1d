// Package money renders minor-unit amounts for people.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter prints integer minor-unit amounts with locale grouping and a
// fixed number of fraction digits.
type Formatter struct {
	printer *message.Printer
	scale   int
}

func NewFormatter(locale string, scale int) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}

	return &Formatter{printer: message.NewPrinter(tag), scale: scale}, nil
}

func (f *Formatter) Format(amount int64) string {
	major := decimal.New(amount, -int32(f.scale)).InexactFloat64()
	return f.printer.Sprint(number.Decimal(major, number.Scale(f.scale)))
}
