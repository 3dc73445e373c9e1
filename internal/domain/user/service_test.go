package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendwise/internal/domain/policy"
)

type mockRepo struct {
	getFunc  func(ctx context.Context, as *policy.Principal, uid string) (*Profile, error)
	saveFunc func(ctx context.Context, as *policy.Principal, profile *Profile) error
}

func (m *mockRepo) Get(ctx context.Context, as *policy.Principal, uid string) (*Profile, error) {
	return m.getFunc(ctx, as, uid)
}

func (m *mockRepo) Save(ctx context.Context, as *policy.Principal, profile *Profile) error {
	return m.saveFunc(ctx, as, profile)
}

func TestEnsureProfileCreatesOnFirstSignIn(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	principal := &policy.Principal{UID: "user-1", Email: "user@example.com"}

	var saved *Profile
	repo := &mockRepo{
		getFunc: func(_ context.Context, _ *policy.Principal, _ string) (*Profile, error) {
			return nil, ErrNotFound
		},
		saveFunc: func(_ context.Context, _ *policy.Principal, p *Profile) error {
			saved = p
			return nil
		},
	}

	profile, err := NewService(repo).EnsureProfile(context.Background(), principal, now)
	if err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}
	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if profile.UID != "user-1" || profile.Email != "user@example.com" {
		t.Errorf("profile = %+v", profile)
	}
	if !profile.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", profile.CreatedAt, now)
	}
}

func TestEnsureProfileReturnsExisting(t *testing.T) {
	principal := &policy.Principal{UID: "user-1", Email: "user@example.com"}
	existing := &Profile{UID: "user-1", Email: "user@example.com", DisplayName: "Asha"}

	repo := &mockRepo{
		getFunc: func(_ context.Context, _ *policy.Principal, _ string) (*Profile, error) {
			return existing, nil
		},
		saveFunc: func(_ context.Context, _ *policy.Principal, _ *Profile) error {
			t.Fatal("Save should not be called for an existing profile")
			return nil
		},
	}

	profile, err := NewService(repo).EnsureProfile(context.Background(), principal, time.Now())
	if err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}
	if profile != existing {
		t.Error("expected existing profile to be returned")
	}
}

func TestUpdateAppliesChanges(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	principal := &policy.Principal{UID: "user-1", Email: "user@example.com"}
	name := "Asha"
	currency := "INR"

	repo := &mockRepo{
		getFunc: func(_ context.Context, _ *policy.Principal, _ string) (*Profile, error) {
			return &Profile{UID: "user-1", Email: "user@example.com"}, nil
		},
		saveFunc: func(_ context.Context, _ *policy.Principal, _ *Profile) error {
			return nil
		},
	}

	profile, err := NewService(repo).Update(context.Background(), principal, "user-1", UpdateParams{
		DisplayName: &name,
		Currency:    &currency,
	}, now)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if profile.DisplayName != "Asha" || profile.Currency != "INR" {
		t.Errorf("profile = %+v", profile)
	}
	if !profile.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", profile.UpdatedAt, now)
	}
}

func TestServiceNilPrincipal(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.Get(context.Background(), nil, "user-1"); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("Get() error = %v, want ErrDenied", err)
	}
	if _, err := svc.Update(context.Background(), nil, "user-1", UpdateParams{}, time.Now()); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("Update() error = %v, want ErrDenied", err)
	}
}
