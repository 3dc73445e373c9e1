package transaction

import (
	"context"
	"regexp"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"spendwise/internal/domain/policy"
)

func validParams() CreateParams {
	return CreateParams{
		AmountText:  "3.50",
		Type:        TypeExpense,
		Category:    "food",
		Date:        civil.Date{Year: 2024, Month: 2, Day: 14},
		Description: "Coffee",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*CreateParams)
		wantFields []string
	}{
		{"valid", func(p *CreateParams) {}, nil},
		{"zero amount", func(p *CreateParams) { p.AmountText = "0" }, []string{"amount"}},
		{"garbage amount", func(p *CreateParams) { p.AmountText = "abc" }, []string{"amount"}},
		{"negative amount", func(p *CreateParams) { p.AmountText = "-5" }, []string{"amount"}},
		{"amount at threshold", func(p *CreateParams) { p.AmountText = "0.01" }, []string{"amount"}},
		{"missing category", func(p *CreateParams) { p.Category = "" }, []string{"category"}},
		{"bad type", func(p *CreateParams) { p.Type = "transfer" }, []string{"type"}},
		{"missing description", func(p *CreateParams) { p.Description = "" }, []string{"description"}},
		{"everything wrong", func(p *CreateParams) {
			*p = CreateParams{}
		}, []string{"amount", "category", "type", "description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			errs := Validate(p)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() = %v, want fields %v", errs, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if errs[f] == "" {
					t.Errorf("missing error for field %q in %v", f, errs)
				}
			}
		})
	}
}

func TestValidateAmountMessage(t *testing.T) {
	p := validParams()
	p.AmountText = "0"
	errs := Validate(p)
	want := "Please enter a valid amount greater than zero"
	if errs["amount"] != want {
		t.Errorf("amount message = %q, want %q", errs["amount"], want)
	}
}

var idPattern = regexp.MustCompile(`^txn_\d+_([0-9a-f]{8}_)?\d{1,5}$`)

func TestNewID(t *testing.T) {
	t.Run("with principal", func(t *testing.T) {
		id := NewID("abcdef0123456789")
		if !idPattern.MatchString(id) {
			t.Errorf("NewID = %q does not match pattern", id)
		}
	})

	t.Run("without principal", func(t *testing.T) {
		id := NewID("")
		if !idPattern.MatchString(id) {
			t.Errorf("NewID = %q does not match pattern", id)
		}
	})

	t.Run("short uid kept whole", func(t *testing.T) {
		id := NewID("ab12")
		if want := regexp.MustCompile(`^txn_\d+_ab12_\d{1,4}$`); !want.MatchString(id) {
			t.Errorf("NewID(short uid) = %q", id)
		}
	})

	t.Run("low collision rate", func(t *testing.T) {
		const n = 200
		seen := make(map[string]bool, n)
		for range n {
			seen[NewID("abcdef0123456789")] = true
		}
		// Random tails plus advancing clock keep duplicates rare.
		if len(seen) < n-5 {
			t.Errorf("generated %d unique ids out of %d", len(seen), n)
		}
	})
}

func TestNewWideID(t *testing.T) {
	id := NewWideID("abcdef0123456789")
	if want := regexp.MustCompile(`^txn_\d+_abcdef01_[0-9a-f-]{36}$`); !want.MatchString(id) {
		t.Errorf("NewWideID = %q", id)
	}
}

func TestAssemble(t *testing.T) {
	now := time.Date(2024, 2, 14, 10, 30, 0, 0, time.UTC)

	t.Run("valid expense", func(t *testing.T) {
		tx, errs := Assemble(validParams(), "abcdef0123456789", now)
		if len(errs) > 0 {
			t.Fatalf("Assemble() errors: %v", errs)
		}
		if tx.Amount != 3.5 {
			t.Errorf("Amount = %v, want 3.5", tx.Amount)
		}
		if !idPattern.MatchString(tx.ID) {
			t.Errorf("ID = %q does not match pattern", tx.ID)
		}
		if tx.UserID != "abcdef0123456789" {
			t.Errorf("UserID = %q", tx.UserID)
		}
		if !tx.CreatedAt.Equal(now) {
			t.Errorf("CreatedAt = %v, want %v", tx.CreatedAt, now)
		}
		if tx.Note != "Coffee" {
			t.Errorf("Note = %q, want aliased description", tx.Note)
		}
	})

	t.Run("invalid params", func(t *testing.T) {
		p := validParams()
		p.AmountText = "0"
		tx, errs := Assemble(p, "user", now)
		if tx != nil {
			t.Errorf("Assemble should not return a record, got %+v", tx)
		}
		if errs["amount"] == "" {
			t.Error("expected amount error")
		}
	})
}

// mockRepo implements Repository with function fields.
type mockRepo struct {
	CreateFunc     func(ctx context.Context, as *policy.Principal, t *Transaction) error
	GetFunc        func(ctx context.Context, as *policy.Principal, id string) (*Transaction, error)
	UpdateFunc     func(ctx context.Context, as *policy.Principal, t *Transaction) error
	DeleteFunc     func(ctx context.Context, as *policy.Principal, id string) error
	ListByUserFunc func(ctx context.Context, as *policy.Principal, userID string) ([]*Transaction, error)
}

func (m *mockRepo) Create(ctx context.Context, as *policy.Principal, t *Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, as, t)
	}
	return nil
}

func (m *mockRepo) Get(ctx context.Context, as *policy.Principal, id string) (*Transaction, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, as, id)
	}
	return nil, nil
}

func (m *mockRepo) Update(ctx context.Context, as *policy.Principal, t *Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, as, t)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, as *policy.Principal, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, as, id)
	}
	return nil
}

func (m *mockRepo) ListByUser(ctx context.Context, as *policy.Principal, userID string) ([]*Transaction, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, as, userID)
	}
	return nil, nil
}

func TestServiceSave(t *testing.T) {
	alice := &policy.Principal{UID: "alice-uid-12345", Email: "alice@example.com"}

	t.Run("persists assembled record", func(t *testing.T) {
		var created *Transaction
		svc := NewService(&mockRepo{
			CreateFunc: func(ctx context.Context, as *policy.Principal, tx *Transaction) error {
				created = tx
				return nil
			},
		})

		tx, err := svc.Save(context.Background(), alice, validParams())
		if err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		if created == nil || created.ID != tx.ID {
			t.Error("repository did not receive the assembled record")
		}
		if created.UserID != alice.UID {
			t.Errorf("UserID = %q, want principal uid", created.UserID)
		}
	})

	t.Run("validation failure skips repository", func(t *testing.T) {
		repoCalled := false
		svc := NewService(&mockRepo{
			CreateFunc: func(context.Context, *policy.Principal, *Transaction) error {
				repoCalled = true
				return nil
			},
		})

		p := validParams()
		p.Description = ""
		_, err := svc.Save(context.Background(), alice, p)

		var verr ValidationError
		if !asValidationError(err, &verr) {
			t.Fatalf("Save() error = %v, want ValidationError", err)
		}
		if repoCalled {
			t.Error("repository should not be called for invalid params")
		}
	})

	t.Run("unauthenticated denied", func(t *testing.T) {
		svc := NewService(&mockRepo{})
		if _, err := svc.Save(context.Background(), nil, validParams()); err != policy.ErrDenied {
			t.Errorf("Save(nil principal) error = %v, want ErrDenied", err)
		}
	})
}

func TestServiceUpdate(t *testing.T) {
	alice := &policy.Principal{UID: "alice", Email: "alice@example.com"}
	existing := &Transaction{
		ID:        "txn_1",
		UserID:    "alice",
		Amount:    10,
		Type:      TypeExpense,
		Category:  "food",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	svc := NewService(&mockRepo{
		GetFunc: func(ctx context.Context, as *policy.Principal, id string) (*Transaction, error) {
			return existing, nil
		},
	})

	p := validParams()
	p.AmountText = "99.90"
	updated, err := svc.Update(context.Background(), alice, "txn_1", p)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Amount != 99.9 {
		t.Errorf("Amount = %v, want 99.9", updated.Amount)
	}
	if updated.ID != existing.ID || updated.UserID != existing.UserID {
		t.Error("Update must preserve id and owner")
	}
	if !updated.CreatedAt.Equal(existing.CreatedAt) {
		t.Error("Update must preserve creation instant")
	}
}

func asValidationError(err error, target *ValidationError) bool {
	v, ok := err.(ValidationError)
	if ok {
		*target = v
	}
	return ok
}
