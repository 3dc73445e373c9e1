package export

import (
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"spendwise/internal/domain/transaction"
)

func TestSummarize(t *testing.T) {
	xs := []*transaction.Transaction{
		{Type: transaction.TypeIncome, Amount: 100},
		{Type: transaction.TypeExpense, Amount: 30},
		{Type: transaction.TypeExpense, Amount: 20},
	}

	s := Summarize(xs)
	if s.TotalIncome != 100 {
		t.Errorf("TotalIncome = %v, want 100", s.TotalIncome)
	}
	if s.TotalExpenses != 50 {
		t.Errorf("TotalExpenses = %v, want 50", s.TotalExpenses)
	}
	if s.Balance != 50 {
		t.Errorf("Balance = %v, want 50", s.Balance)
	}
}

func TestSummarizeBalanceConsistency(t *testing.T) {
	// Amounts chosen to drift under naive float64 accumulation.
	xs := []*transaction.Transaction{
		{Type: transaction.TypeIncome, Amount: 0.1},
		{Type: transaction.TypeIncome, Amount: 0.2},
		{Type: transaction.TypeExpense, Amount: 0.3},
	}

	s := Summarize(xs)
	if s.Balance != s.TotalIncome-s.TotalExpenses {
		t.Errorf("Balance = %v, income-expenses = %v", s.Balance, s.TotalIncome-s.TotalExpenses)
	}
	if s.Balance != 0 {
		t.Errorf("Balance = %v, want 0", s.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.Balance != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestBuildHTMLReport(t *testing.T) {
	xs := []*transaction.Transaction{
		{Type: transaction.TypeIncome, Amount: 100, Category: "salary", Description: "Pay",
			Date: civil.Date{Year: 2024, Month: 2, Day: 1}},
		{Type: transaction.TypeExpense, Amount: 30, Category: "food", Description: "Lunch",
			Date: civil.Date{Year: 2024, Month: 2, Day: 2}},
		{Type: transaction.TypeExpense, Amount: 20, Category: "food", Description: "Snacks",
			Date: civil.Date{Year: 2024, Month: 2, Day: 3}},
	}

	t.Run("summary block", func(t *testing.T) {
		html := BuildHTMLReport(xs, ReportOptions{Title: "February", Currency: "INR"})

		for _, want := range []string{"February", "₹100.00", "₹50.00", "Total Income", "Total Expenses", "Balance"} {
			if !strings.Contains(html, want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("flat table lists in input order", func(t *testing.T) {
		html := BuildHTMLReport(xs, ReportOptions{Currency: "INR"})

		iPay := strings.Index(html, "Pay")
		iLunch := strings.Index(html, "Lunch")
		iSnacks := strings.Index(html, "Snacks")
		if iPay < 0 || iLunch < 0 || iSnacks < 0 || !(iPay < iLunch && iLunch < iSnacks) {
			t.Errorf("rows out of order: Pay=%d Lunch=%d Snacks=%d", iPay, iLunch, iSnacks)
		}
		if !strings.Contains(html, "Food &amp; Dining") {
			t.Error("category id should resolve to its display name")
		}
	})

	t.Run("grouped buckets in first-encounter order with signed subtotals", func(t *testing.T) {
		html := BuildHTMLReport(xs, ReportOptions{GroupByCategory: true, Currency: "INR"})

		iSalary := strings.Index(html, "Salary")
		iFood := strings.Index(html, "Food &amp; Dining")
		if iSalary < 0 || iFood < 0 || iSalary > iFood {
			t.Errorf("groups out of first-encounter order: Salary=%d Food=%d", iSalary, iFood)
		}
		// Stored amounts are positive, so the expense bucket's subtotal
		// renders positive too.
		if !strings.Contains(html, "₹50.00") {
			t.Error("food subtotal should be the signed sum ₹50.00")
		}
	})

	t.Run("missing category becomes Uncategorized", func(t *testing.T) {
		html := BuildHTMLReport([]*transaction.Transaction{
			{Type: transaction.TypeExpense, Amount: 5, Description: "Mystery"},
		}, ReportOptions{GroupByCategory: true, Currency: "INR"})

		if !strings.Contains(html, "Uncategorized") {
			t.Error("missing category should bucket as Uncategorized")
		}
	})

	t.Run("default subtitle", func(t *testing.T) {
		html := BuildHTMLReport(nil, ReportOptions{Currency: "INR"})
		if !strings.Contains(html, "Generated on ") {
			t.Error("default subtitle missing")
		}
	})

	t.Run("amount colors", func(t *testing.T) {
		html := BuildHTMLReport(xs, ReportOptions{Currency: "INR"})
		if !strings.Contains(html, colorPositive) {
			t.Error("positive amounts should carry the green hint")
		}
	})
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			"afternoon",
			time.Date(2024, 2, 14, 14, 30, 0, 0, time.UTC),
			"transactions_20240214_1430.csv",
		},
		{
			// Legacy: no zero padding on hour or minute.
			"morning single digits",
			time.Date(2024, 2, 14, 9, 5, 0, 0, time.UTC),
			"transactions_20240214_95.csv",
		},
		{
			"midnight",
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			"transactions_20241201_00.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename("transactions", "csv", tt.now)
			if got != tt.want {
				t.Errorf("Filename = %q, want %q", got, tt.want)
			}
		})
	}
}
