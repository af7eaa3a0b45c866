package common

import "fmt"

// RowError records why a candidate row was excluded from the final set.
type RowError struct {
	Index  int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: bad %s: %s", e.Index, e.Field, e.Reason)
}

// Normalize validates candidates into transactions. Date and amount are
// coerced against the supplied layouts; rows failing either are returned as
// RowErrors and never retained with placeholder values.
func Normalize(candidates []Candidate, layouts []string) ([]Transaction, []RowError) {
	transactions := make([]Transaction, 0, len(candidates))
	var dropped []RowError

	for i, candidate := range candidates {
		date, err := ParseDate(candidate.Date, layouts)
		if err != nil {
			dropped = append(dropped, RowError{Index: i, Field: "date", Reason: err.Error()})
			continue
		}

		amount, err := ParseAmount(candidate.Amount)
		if err != nil {
			dropped = append(dropped, RowError{Index: i, Field: "amount", Reason: err.Error()})
			continue
		}

		transactions = append(transactions, Transaction{
			Date:        date,
			Description: candidate.Description,
			Amount:      amount,
		})
	}

	return transactions, dropped
}
