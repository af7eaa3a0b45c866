// Package export serializes the categorized transaction set to a flat CSV
// byte stream. Exporting the same snapshot twice produces identical bytes.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
)

// Header is the fixed column order of the exported CSV.
var Header = []string{"date", "description", "amount", "category", "month"}

const dateLayout = "2006-01-02"

// Write serializes every transaction in sequence order, header row first.
// No row is omitted or reordered relative to the input.
func Write(writer io.Writer, transactions []common.Transaction) error {
	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range transactions {
		record := []string{
			tx.Date.Format(dateLayout),
			tx.Description,
			tx.Amount.StringFixed(2),
			tx.Category,
			tx.Month(),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// Bytes renders the export in memory, for HTTP responses and downloads.
func Bytes(transactions []common.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, transactions); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
