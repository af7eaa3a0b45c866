package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate is a raw transaction tuple produced by an ingestion path before
// validation. Fields are untrusted strings; the normalizer decides whether a
// candidate becomes a Transaction.
type Candidate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// Transaction is a single validated statement entry. Amount is positive for
// debits (spend) and negative for credits (refunds).
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// MonthLayout renders a year-month key, e.g. "2024-02".
const MonthLayout = "2006-01"

// Month returns the year-month key derived from Date. It is computed, never
// stored, so it cannot disagree with the transaction date.
func (t Transaction) Month() string {
	return t.Date.Format(MonthLayout)
}
