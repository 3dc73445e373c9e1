package firestore

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"spendwise/internal/domain/policy"
	"spendwise/internal/domain/user"
)

// UserRepository stores profiles under users/{uid}, one document per
// authenticated user.
type UserRepository struct {
	store  *Store
	engine *policy.Engine
}

func NewUserRepository(store *Store, engine *policy.Engine) *UserRepository {
	return &UserRepository{store: store, engine: engine}
}

func (r *UserRepository) Get(ctx context.Context, as *policy.Principal, uid string) (*user.Profile, error) {
	snap, err := r.store.client.Collection(usersCollection).Doc(uid).Get(ctx)
	notFound := status.Code(err) == codes.NotFound
	if err != nil && !notFound {
		return nil, &PersistenceError{Op: fmt.Sprintf("fetch profile %s", uid), Err: err}
	}

	var existing map[string]any
	if !notFound {
		existing = snap.Data()
	}
	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpRead,
		Path:      usersCollection + "/" + uid,
		Existing:  existing,
	}) {
		return nil, policy.ErrDenied
	}
	if notFound {
		return nil, user.ErrNotFound
	}

	return profileFromDoc(uid, existing), nil
}

func (r *UserRepository) Save(ctx context.Context, as *policy.Principal, profile *user.Profile) error {
	doc := docFromProfile(profile)
	if !r.engine.Allows(&policy.Request{
		Principal: as,
		Operation: policy.OpUpdate,
		Path:      usersCollection + "/" + profile.UID,
		Incoming:  doc,
	}) {
		return policy.ErrDenied
	}

	if _, err := r.store.client.Collection(usersCollection).Doc(profile.UID).Set(ctx, doc); err != nil {
		return &PersistenceError{Op: "save profile", Err: err}
	}
	return nil
}
