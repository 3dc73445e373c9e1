package export

import (
	"encoding/json"
	"strings"
	"testing"

	"cloud.google.com/go/civil"

	"spendwise/internal/domain/transaction"
)

func sampleTransactions() []*transaction.Transaction {
	return []*transaction.Transaction{
		{
			ID:          "txn_1",
			UserID:      "alice",
			Amount:      3.5,
			Type:        transaction.TypeExpense,
			Category:    "food",
			Date:        civil.Date{Year: 2024, Month: 2, Day: 14},
			Description: "Coffee",
			Note:        "Coffee",
		},
		{
			ID:          "txn_2",
			UserID:      "alice",
			Amount:      1200,
			Type:        transaction.TypeIncome,
			Category:    "salary",
			Date:        civil.Date{Year: 2024, Month: 2, Day: 1},
			Description: "February pay",
			Note:        "February pay",
		},
	}
}

func TestTransactionsToCSV(t *testing.T) {
	out := TransactionsToCSV(sampleTransactions())
	lines := strings.Split(out, "\n")

	if lines[0] != "Date,Description,Category,Type,Amount,Notes" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2024-02-14,Coffee,food,expense,3.5,Coffee" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2024-02-01,February pay,salary,income,1200,February pay" {
		t.Errorf("row 2 = %q", lines[2])
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output must end with a newline")
	}
}

func TestTransactionsToCSVEmpty(t *testing.T) {
	if got := TransactionsToCSV(nil); got != "No transactions found" {
		t.Errorf("empty input = %q, want sentinel", got)
	}
	if got := TransactionsToCSV([]*transaction.Transaction{}); got != "No transactions found" {
		t.Errorf("empty slice = %q, want sentinel", got)
	}
}

func TestTransactionsToCSVEscaping(t *testing.T) {
	xs := []*transaction.Transaction{{
		Amount:      1,
		Type:        transaction.TypeExpense,
		Category:    "other_expense",
		Date:        civil.Date{Year: 2024, Month: 1, Day: 1},
		Description: "A, \"B\" and\nC",
	}}

	out := TransactionsToCSV(xs)
	want := `"A, ""B"" and` + "\nC\""
	if !strings.Contains(out, want) {
		t.Errorf("escaped field %q not found in:\n%s", want, out)
	}
}

func TestTransactionsToCSVTypeDefault(t *testing.T) {
	xs := []*transaction.Transaction{{
		Amount:      1,
		Category:    "food",
		Date:        civil.Date{Year: 2024, Month: 1, Day: 1},
		Description: "x",
	}}

	out := TransactionsToCSV(xs)
	if !strings.Contains(out, ",expense,") {
		t.Errorf("missing type should default to expense:\n%s", out)
	}
}

func TestCSVEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"with, comma",
		`with "quotes"`,
		"line\nbreak",
		"cr\rhere",
		`all, of "it"` + "\r\n",
		"",
		`""`,
	}

	for _, in := range inputs {
		if got := unescapeCSV(escapeCSV(in)); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

// unescapeCSV reverses escapeCSV for the round-trip law.
func unescapeCSV(s string) string {
	if !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) || len(s) < 2 {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
}

func TestTransactionsToJSON(t *testing.T) {
	out := TransactionsToJSON(sampleTransactions())

	var parsed struct {
		Transactions []*transaction.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Transactions) != 2 {
		t.Fatalf("parsed %d transactions, want 2", len(parsed.Transactions))
	}

	got, want := parsed.Transactions[0], sampleTransactions()[0]
	if got.Amount != want.Amount || got.Type != want.Type || got.Category != want.Category ||
		got.Date != want.Date || got.Description != want.Description {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}

	if !strings.Contains(out, "\n  ") {
		t.Error("output should be pretty-printed with 2-space indent")
	}
}

func TestTransactionsToJSONEmpty(t *testing.T) {
	out := TransactionsToJSON(nil)

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if string(parsed["transactions"]) != "[]" {
		t.Errorf("transactions = %s, want []", parsed["transactions"])
	}
}
