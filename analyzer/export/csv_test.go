package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/tabular"
	"github.com/shopspring/decimal"
)

func sampleTransactions() []common.Transaction {
	return []common.Transaction{
		{
			Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Description: "SWIGGY BANGALORE",
			Amount:      decimal.NewFromFloat(450),
			Category:    "food",
		},
		{
			Date:        time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			Description: "REFUND AMAZON",
			Amount:      decimal.NewFromFloat(-1200),
			Category:    "shopping",
		},
	}
}

func TestWrite_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleTransactions()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "date,description,amount,category,month" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "2024-02-01,SWIGGY BANGALORE,450.00,food,2024-02" {
		t.Errorf("Unexpected first row: %q", lines[1])
	}
	if lines[2] != "2024-02-05,REFUND AMAZON,-1200.00,shopping,2024-02" {
		t.Errorf("Unexpected second row: %q", lines[2])
	}
}

func TestWrite_EmptySetStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "date,description,amount,category,month" {
		t.Errorf("Expected bare header, got %q", buf.String())
	}
}

func TestBytes_Deterministic(t *testing.T) {
	first, err := Bytes(sampleTransactions())
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	second, err := Bytes(sampleTransactions())
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Expected identical bytes across repeated exports")
	}
}

// Exported CSV must re-import through the tabular loader with date,
// description and amount intact.
func TestExport_RoundTripsThroughTabularLoader(t *testing.T) {
	original := sampleTransactions()

	exported, err := Bytes(original)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	candidates, err := tabular.ExtractCSV(bytes.NewReader(exported))
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}

	reimported, dropped := common.Normalize(candidates, common.TabularDateLayouts)
	if len(dropped) != 0 {
		t.Fatalf("Expected no dropped rows on round trip, got %d", len(dropped))
	}
	if len(reimported) != len(original) {
		t.Fatalf("Expected %d transactions, got %d", len(original), len(reimported))
	}

	for i := range original {
		if !reimported[i].Date.Equal(original[i].Date) {
			t.Errorf("Row %d date mismatch: %s vs %s", i, reimported[i].Date, original[i].Date)
		}
		if reimported[i].Description != original[i].Description {
			t.Errorf("Row %d description mismatch: %q vs %q", i, reimported[i].Description, original[i].Description)
		}
		if !reimported[i].Amount.Equal(original[i].Amount) {
			t.Errorf("Row %d amount mismatch: %s vs %s", i, reimported[i].Amount, original[i].Amount)
		}
	}
}
