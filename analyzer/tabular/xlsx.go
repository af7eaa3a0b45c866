package tabular

import (
	"fmt"
	"io"
	"log"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/xuri/excelize/v2"
)

// ExtractXLSX reads the first sheet of a spreadsheet export. The header
// contract is the same as for CSV.
func ExtractXLSX(reader io.Reader) ([]common.Candidate, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	candidates := []common.Candidate{}
	for _, record := range rows[1:] {
		if candidate, ok := candidateFromRecord(record, index); ok {
			candidates = append(candidates, candidate)
		} else {
			log.Printf("WARN skipping spreadsheet row with %d columns", len(record))
		}
	}

	return candidates, nil
}
