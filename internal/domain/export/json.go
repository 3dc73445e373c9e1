package export

import (
	"encoding/json"

	"spendwise/internal/domain/transaction"
)

type jsonEnvelope struct {
	Transactions []*transaction.Transaction `json:"transactions"`
}

// TransactionsToJSON serializes transactions as a pretty-printed envelope
// with two-space indentation. Empty input yields an empty array rather
// than null.
func TransactionsToJSON(xs []*transaction.Transaction) string {
	if xs == nil {
		xs = []*transaction.Transaction{}
	}

	out, err := json.MarshalIndent(jsonEnvelope{Transactions: xs}, "", "  ")
	if err != nil {
		// Transactions hold only marshalable fields; degrade rather
		// than propagate.
		return `{"transactions": []}`
	}
	return string(out)
}
