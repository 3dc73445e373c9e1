package transaction

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"spendwise/internal/domain/policy"
)

// Transaction types. Direction is carried here; Amount is always positive.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single monetary movement owned by one user.
type Transaction struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Amount      float64    `json:"amount"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Date        civil.Date `json:"date"`
	Description string     `json:"description"`
	Note        string     `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CreateParams carries the raw entry-form values for a new transaction.
// AmountText is the amount as typed; it is parsed during assembly.
type CreateParams struct {
	AmountText  string
	Type        string
	Category    string
	Date        civil.Date
	Description string
	Note        string
}

// ValidationError maps failing field names to user-facing messages.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid transaction fields: %s", strings.Join(fields, ", "))
}

// Repository persists transactions on behalf of a principal. The
// implementation enforces the authorization policy at the boundary.
type Repository interface {
	Create(ctx context.Context, as *policy.Principal, t *Transaction) error
	Get(ctx context.Context, as *policy.Principal, id string) (*Transaction, error)
	Update(ctx context.Context, as *policy.Principal, t *Transaction) error
	Delete(ctx context.Context, as *policy.Principal, id string) error
	ListByUser(ctx context.Context, as *policy.Principal, userID string) ([]*Transaction, error)
}

// ParseAmount parses an amount typed as text. It returns false for
// unparseable input; range checks belong to Validate.
func ParseAmount(text string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}
