package auth

import (
	"context"
	"errors"
	"fmt"
)

const appLockKey = "applock.passcode"

// ErrNoPasscode is returned when unlocking is attempted before a passcode
// has been set.
var ErrNoPasscode = errors.New("no app lock passcode configured")

// ErrWrongPasscode is returned when the supplied passcode does not match.
var ErrWrongPasscode = errors.New("incorrect passcode")

// CredentialStore is the key-value persistence the app lock stores its
// passcode hash in. A miss returns an empty value and a nil error.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// AppLock gates local access to the app with a bcrypt-hashed passcode.
// Only the hash is ever persisted.
type AppLock struct {
	store CredentialStore
}

func NewAppLock(store CredentialStore) *AppLock {
	return &AppLock{store: store}
}

// Enabled reports whether a passcode has been set.
func (l *AppLock) Enabled(ctx context.Context) (bool, error) {
	hash, err := l.store.Get(ctx, appLockKey)
	if err != nil {
		return false, fmt.Errorf("reading app lock state: %w", err)
	}
	return hash != "", nil
}

// SetPasscode hashes and stores a new passcode, replacing any previous one.
func (l *AppLock) SetPasscode(ctx context.Context, passcode string) error {
	hash, err := HashPasscode(passcode)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, appLockKey, hash); err != nil {
		return fmt.Errorf("storing app lock passcode: %w", err)
	}
	return nil
}

// Unlock verifies the passcode against the stored hash.
func (l *AppLock) Unlock(ctx context.Context, passcode string) error {
	hash, err := l.store.Get(ctx, appLockKey)
	if err != nil {
		return fmt.Errorf("reading app lock passcode: %w", err)
	}
	if hash == "" {
		return ErrNoPasscode
	}
	if !VerifyPasscode(hash, passcode) {
		return ErrWrongPasscode
	}
	return nil
}

// Disable removes the passcode. The caller must verify the current passcode
// first via Unlock.
func (l *AppLock) Disable(ctx context.Context) error {
	if err := l.store.Delete(ctx, appLockKey); err != nil {
		return fmt.Errorf("clearing app lock passcode: %w", err)
	}
	return nil
}
