package user

import (
	"context"

	"spendwise/internal/domain/policy"
)

// Repository persists user profiles on behalf of a principal. The
// implementation enforces the authorization policy at the boundary.
type Repository interface {
	Get(ctx context.Context, as *policy.Principal, uid string) (*Profile, error)
	Save(ctx context.Context, as *policy.Principal, profile *Profile) error
}
