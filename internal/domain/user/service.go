package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spendwise/internal/domain/policy"
)

// ErrNotFound is returned when a profile document does not exist.
var ErrNotFound = errors.New("profile not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get loads the principal's profile.
func (s *Service) Get(ctx context.Context, as *policy.Principal, uid string) (*Profile, error) {
	if as == nil {
		return nil, policy.ErrDenied
	}
	return s.repo.Get(ctx, as, uid)
}

// EnsureProfile creates the profile document on first sign-in. An existing
// profile is returned unchanged.
func (s *Service) EnsureProfile(ctx context.Context, as *policy.Principal, now time.Time) (*Profile, error) {
	if as == nil {
		return nil, policy.ErrDenied
	}
	existing, err := s.repo.Get(ctx, as, as.UID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	profile := &Profile{
		UID:       as.UID,
		Email:     as.Email,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := s.repo.Save(ctx, as, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return profile, nil
}

// Update applies the given changes to the principal's profile.
func (s *Service) Update(ctx context.Context, as *policy.Principal, uid string, params UpdateParams, now time.Time) (*Profile, error) {
	if as == nil {
		return nil, policy.ErrDenied
	}
	profile, err := s.repo.Get(ctx, as, uid)
	if err != nil {
		return nil, err
	}
	params.Apply(profile, now)
	if err := s.repo.Save(ctx, as, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}
