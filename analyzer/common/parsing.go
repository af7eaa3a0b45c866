package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-first layout used on HDFC statement lines.
const DateLayout = "02/01/2006"

// TabularDateLayouts are tried in order when coercing tabular date cells.
var TabularDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2 Jan 2006",
}

var amountCleaner = strings.NewReplacer(",", "", "₹", "", " ", "")

// ParseAmount coerces an amount field into a decimal, tolerating grouping
// commas, a currency symbol and surrounding whitespace. A leading minus sign
// is preserved.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount field")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", text)
	}
	return amount, nil
}

// ParseDate tries each layout in order and returns the first that fits.
func ParseDate(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
