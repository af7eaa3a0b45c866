package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/shopspring/decimal"
)

func makeTx(date string, description string, amount float64, category string) common.Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return common.Transaction{
		Date:        parsed,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
	}
}

func testTransactions() []common.Transaction {
	return []common.Transaction{
		makeTx("2024-02-01", "SWIGGY BANGALORE", 450, "food"),
		makeTx("2024-01-15", "AMAZON PAY INDIA", 2350, "shopping"),
		makeTx("2024-02-05", "REFUND AMAZON", -1200, "shopping"),
		makeTx("2024-02-07", "SWIGGY BANGALORE", 550, "food"),
		makeTx("2024-03-01", "SPOTIFY", 119, "subscriptions"),
	}
}

func TestMonthlySpend_OrderedAscending(t *testing.T) {
	monthly := MonthlySpend(testTransactions())

	if len(monthly) != 3 {
		t.Fatalf("Expected 3 months, got %d", len(monthly))
	}

	wantMonths := []string{"2024-01", "2024-02", "2024-03"}
	for i, want := range wantMonths {
		if monthly[i].Month != want {
			t.Errorf("Expected month %s at position %d, got %s", want, i, monthly[i].Month)
		}
	}

	// 450 - 1200 + 550 = -200
	if !monthly[1].Total.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("Expected 2024-02 total -200, got %s", monthly[1].Total.String())
	}
}

func TestCategorySpend_SumsMatchGrandTotal(t *testing.T) {
	transactions := testTransactions()
	categories := CategorySpend(transactions)

	grand := decimal.Zero
	for _, tx := range transactions {
		grand = grand.Add(tx.Amount)
	}

	total := decimal.Zero
	for _, entry := range categories {
		total = total.Add(entry.Total)
	}

	if !total.Equal(grand) {
		t.Errorf("Category totals %s do not match grand total %s", total.String(), grand.String())
	}
}

func TestTopVendors_DescendingWithGrouping(t *testing.T) {
	vendors := TopVendors(testTransactions())

	if len(vendors) != 4 {
		t.Fatalf("Expected 4 vendors, got %d", len(vendors))
	}
	if vendors[0].Description != "AMAZON PAY INDIA" {
		t.Errorf("Expected 'AMAZON PAY INDIA' first, got '%s'", vendors[0].Description)
	}
	// Two SWIGGY rows grouped: 450 + 550 = 1000
	if vendors[1].Description != "SWIGGY BANGALORE" || !vendors[1].Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected grouped SWIGGY total 1000 second, got %s=%s", vendors[1].Description, vendors[1].Total.String())
	}
}

func TestTopVendors_TiesKeepFirstSeenOrder(t *testing.T) {
	transactions := []common.Transaction{
		makeTx("2024-02-01", "VENDOR B", 100, "others"),
		makeTx("2024-02-02", "VENDOR A", 100, "others"),
	}

	vendors := TopVendors(transactions)

	if vendors[0].Description != "VENDOR B" {
		t.Errorf("Expected first-seen 'VENDOR B' to win the tie, got '%s'", vendors[0].Description)
	}
}

func TestTopVendors_TruncatesToLimit(t *testing.T) {
	var transactions []common.Transaction
	for i := 0; i < 15; i++ {
		transactions = append(transactions,
			makeTx("2024-02-01", fmt.Sprintf("VENDOR %02d", i), float64(100+i), "others"))
	}

	vendors := TopVendors(transactions)

	if len(vendors) != TopVendorLimit {
		t.Fatalf("Expected %d vendors, got %d", TopVendorLimit, len(vendors))
	}
	if vendors[0].Description != "VENDOR 14" {
		t.Errorf("Expected highest spender first, got '%s'", vendors[0].Description)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	transactions := testTransactions()

	first := Summarize(transactions)
	second := Summarize(transactions)

	if len(first.Monthly) != len(second.Monthly) ||
		len(first.Categories) != len(second.Categories) ||
		len(first.TopVendors) != len(second.TopVendors) {
		t.Fatal("Expected identical view sizes on recomputation")
	}
	for i := range first.Monthly {
		if first.Monthly[i] != second.Monthly[i] && !first.Monthly[i].Total.Equal(second.Monthly[i].Total) {
			t.Errorf("Monthly view differs at %d", i)
		}
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize(nil)

	if len(summary.Monthly) != 0 || len(summary.Categories) != 0 || len(summary.TopVendors) != 0 {
		t.Error("Expected empty views for empty input")
	}
}
