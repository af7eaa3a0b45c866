// Package tabular loads already-structured statement exports (CSV and XLSX)
// into candidate transactions. Both loaders share the same header contract:
// column names are matched case-insensitively with surrounding whitespace
// stripped, the logical fields date/description/amount are required, and any
// extra columns are ignored.
package tabular

import (
	"fmt"
	"strings"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
)

// MissingColumnError reports a structurally absent required column. It fails
// the whole input; there is no per-row recovery for a missing column.
type MissingColumnError struct {
	Column string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("input is missing required column %q", e.Column)
}

var requiredColumns = []string{"date", "description", "amount"}

// columnIndex maps the required logical fields to their positions in the
// header row. The first occurrence of a duplicated column name wins.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, MissingColumnError{Column: column}
		}
	}
	return index, nil
}

// candidateFromRecord builds a candidate from one data row. Rows too short
// to carry every required field are skipped at row level.
func candidateFromRecord(record []string, index map[string]int) (common.Candidate, bool) {
	for _, column := range requiredColumns {
		if index[column] >= len(record) {
			return common.Candidate{}, false
		}
	}
	return common.Candidate{
		Date:        strings.TrimSpace(record[index["date"]]),
		Description: strings.TrimSpace(record[index["description"]]),
		Amount:      strings.TrimSpace(record[index["amount"]]),
	}, true
}
