package tabular

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := workbook.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("setting row %d: %v", i+1, err)
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestExtractXLSX_ReadsFirstSheet(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{" Date ", "Description", "Amount", "Extra"},
		{"2024-03-10", "NETFLIX", "649", "ignored"},
		{"2024-03-12", "SWIGGY BANGALORE", "450.00", "ignored"},
	})

	candidates, err := ExtractXLSX(reader)
	if err != nil {
		t.Fatalf("ExtractXLSX failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[1].Description != "SWIGGY BANGALORE" {
		t.Errorf("Expected description 'SWIGGY BANGALORE', got '%s'", candidates[1].Description)
	}
	if candidates[0].Amount != "649" {
		t.Errorf("Expected amount '649', got '%s'", candidates[0].Amount)
	}
}

func TestExtractXLSX_MissingColumn(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"date", "description"},
		{"2024-03-10", "NETFLIX"},
	})

	_, err := ExtractXLSX(reader)

	var missing MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingColumnError, got %v", err)
	}
	if missing.Column != "amount" {
		t.Errorf("Expected missing column 'amount', got '%s'", missing.Column)
	}
}

func TestExtractXLSX_NotASpreadsheet(t *testing.T) {
	_, err := ExtractXLSX(bytes.NewReader([]byte("this is not a workbook")))
	if err == nil {
		t.Error("Expected error for invalid workbook bytes, got nil")
	}
}
