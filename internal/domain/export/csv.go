package export

import (
	"strconv"
	"strings"

	"spendwise/internal/domain/transaction"
	"spendwise/internal/shared/format"
)

// csvHeader is the fixed, case-sensitive column order.
const csvHeader = "Date,Description,Category,Type,Amount,Notes"

// EmptyCSVSentinel is returned for an empty input instead of a header-only
// file. Long-standing contract; consumers match on the literal string.
const EmptyCSVSentinel = "No transactions found"

// TransactionsToCSV serializes transactions row by row. Dates render as
// YYYY-MM-DD (empty when unparseable), string fields are CSV-escaped, the
// amount is emitted verbatim without symbols or grouping, and a missing
// type defaults to "expense".
func TransactionsToCSV(xs []*transaction.Transaction) string {
	if len(xs) == 0 {
		return EmptyCSVSentinel
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, t := range xs {
		txType := t.Type
		if txType == "" {
			txType = transaction.TypeExpense
		}

		row := []string{
			format.FormatCSVDate(t.Date),
			escapeCSV(t.Description),
			escapeCSV(t.Category),
			escapeCSV(txType),
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			escapeCSV(t.Note),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

// escapeCSV wraps a field in double quotes when it contains a comma,
// quote, CR, or LF, doubling any embedded quotes.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
