package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
)

// ExtractCSV reads a header-bearing CSV export and emits one candidate per
// data row. Unreadable or short rows are skipped with a warning; a missing
// required column fails the whole input.
func ExtractCSV(reader io.Reader) ([]common.Candidate, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("input has no header row")
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	candidates := []common.Candidate{}
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("WARN skipping unreadable CSV row: %v", err)
			continue
		}
		if candidate, ok := candidateFromRecord(record, index); ok {
			candidates = append(candidates, candidate)
		} else {
			log.Printf("WARN skipping CSV row with %d columns", len(record))
		}
	}

	return candidates, nil
}
