package transaction

import (
	"context"
	"fmt"
	"time"

	"spendwise/internal/domain/policy"
)

// Service assembles and persists transactions for a principal. Validation
// runs before every write; the repository enforces authorization.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Assemble turns validated entry-form values into a persistable record:
// the amount is parsed from text, a fresh id is minted for the owner, and
// the creation instant is stamped. Note is overwritten with the
// description to stay compatible with older persisted records.
func Assemble(p CreateParams, ownerUID string, now time.Time) (*Transaction, ValidationError) {
	if errs := Validate(p); len(errs) > 0 {
		return nil, errs
	}

	amount, _ := ParseAmount(p.AmountText)
	return &Transaction{
		ID:          NewID(ownerUID),
		UserID:      ownerUID,
		Amount:      amount,
		Type:        p.Type,
		Category:    p.Category,
		Date:        p.Date,
		Description: p.Description,
		Note:        p.Description,
		CreatedAt:   now.UTC(),
	}, nil
}

// Save validates, assembles, and persists a new transaction owned by the
// principal.
func (s *Service) Save(ctx context.Context, as *policy.Principal, p CreateParams) (*Transaction, error) {
	if as == nil {
		return nil, policy.ErrDenied
	}

	t, errs := Assemble(p, as.UID, time.Now())
	if len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Create(ctx, as, t); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}
	return t, nil
}

// Update validates new field values for an existing transaction and
// persists them. The id, owner, and creation instant are preserved.
func (s *Service) Update(ctx context.Context, as *policy.Principal, id string, p CreateParams) (*Transaction, error) {
	existing, err := s.repo.Get(ctx, as, id)
	if err != nil {
		return nil, fmt.Errorf("loading transaction %s: %w", id, err)
	}
	if existing == nil {
		return nil, nil
	}

	if errs := Validate(p); len(errs) > 0 {
		return nil, errs
	}

	amount, _ := ParseAmount(p.AmountText)
	updated := *existing
	updated.Amount = amount
	updated.Type = p.Type
	updated.Category = p.Category
	updated.Date = p.Date
	updated.Description = p.Description
	updated.Note = p.Description

	if err := s.repo.Update(ctx, as, &updated); err != nil {
		return nil, fmt.Errorf("updating transaction %s: %w", id, err)
	}
	return &updated, nil
}

// Get loads a single transaction. Returns nil without error when the
// record does not exist.
func (s *Service) Get(ctx context.Context, as *policy.Principal, id string) (*Transaction, error) {
	return s.repo.Get(ctx, as, id)
}

// Delete removes a transaction.
func (s *Service) Delete(ctx context.Context, as *policy.Principal, id string) error {
	return s.repo.Delete(ctx, as, id)
}

// List returns the principal's own transactions.
func (s *Service) List(ctx context.Context, as *policy.Principal) ([]*Transaction, error) {
	if as == nil {
		return nil, policy.ErrDenied
	}
	return s.repo.ListByUser(ctx, as, as.UID)
}
