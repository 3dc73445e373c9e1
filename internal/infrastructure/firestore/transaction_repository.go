package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"spendwise/internal/domain/policy"
	"spendwise/internal/domain/transaction"
)

// TransactionRepository stores transactions under transactions/{txId} and
// checks the authorization policy before touching any document.
type TransactionRepository struct {
	store  *Store
	engine *policy.Engine
}

func NewTransactionRepository(store *Store, engine *policy.Engine) *TransactionRepository {
	return &TransactionRepository{store: store, engine: engine}
}

func (r *TransactionRepository) Create(ctx context.Context, as *policy.Principal, t *transaction.Transaction) error {
	doc := docFromTransaction(t)
	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpCreate,
		Path:      transactionsCollection + "/" + t.ID,
		Incoming:  doc,
	}) {
		return policy.ErrDenied
	}

	if _, err := r.store.client.Collection(transactionsCollection).Doc(t.ID).Create(ctx, doc); err != nil {
		return &PersistenceError{Op: "create transaction", Err: err}
	}
	return nil
}

func (r *TransactionRepository) Get(ctx context.Context, as *policy.Principal, id string) (*transaction.Transaction, error) {
	existing, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpRead,
		Path:      transactionsCollection + "/" + id,
		Existing:  existing,
	}) {
		return nil, policy.ErrDenied
	}
	if existing == nil {
		return nil, nil
	}

	t, err := transactionFromDoc(id, existing)
	if err != nil {
		return nil, &PersistenceError{Op: "get transaction", Err: err}
	}
	return t, nil
}

func (r *TransactionRepository) Update(ctx context.Context, as *policy.Principal, t *transaction.Transaction) error {
	existing, err := r.fetch(ctx, t.ID)
	if err != nil {
		return err
	}

	doc := docFromTransaction(t)
	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpUpdate,
		Path:      transactionsCollection + "/" + t.ID,
		Existing:  existing,
		Incoming:  doc,
	}) {
		return policy.ErrDenied
	}

	if _, err := r.store.client.Collection(transactionsCollection).Doc(t.ID).Set(ctx, doc); err != nil {
		return &PersistenceError{Op: "update transaction", Err: err}
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, as *policy.Principal, id string) error {
	existing, err := r.fetch(ctx, id)
	if err != nil {
		return err
	}

	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpDelete,
		Path:      transactionsCollection + "/" + id,
		Existing:  existing,
	}) {
		return policy.ErrDenied
	}

	if _, err := r.store.client.Collection(transactionsCollection).Doc(id).Delete(ctx); err != nil {
		return &PersistenceError{Op: "delete transaction", Err: err}
	}
	return nil
}

// ListByUser returns the user's transactions newest-date-first. The query is
// scoped to one owner, so a single representative policy check covers the
// result set.
func (r *TransactionRepository) ListByUser(ctx context.Context, as *policy.Principal, userID string) ([]*transaction.Transaction, error) {
	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpRead,
		Path:      transactionsCollection + "/-",
		Existing:  map[string]any{"userId": userID},
	}) {
		return nil, policy.ErrDenied
	}

	iter := r.store.client.Collection(transactionsCollection).
		Where("userId", "==", userID).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []*transaction.Transaction
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &PersistenceError{Op: "list transactions", Err: err}
		}
		t, err := transactionFromDoc(snap.Ref.ID, snap.Data())
		if err != nil {
			return nil, &PersistenceError{Op: "list transactions", Err: err}
		}
		out = append(out, t)
	}
	return out, nil
}

// fetch loads a document's raw data, mapping not-found to a nil map so the
// policy can evaluate absence.
func (r *TransactionRepository) fetch(ctx context.Context, id string) (map[string]any, error) {
	snap, err := r.store.client.Collection(transactionsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: fmt.Sprintf("fetch transaction %s", id), Err: err}
	}
	return snap.Data(), nil
}
