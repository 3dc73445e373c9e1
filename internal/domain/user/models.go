package user

import (
	"time"
)

// Profile is the per-user document stored at users/{uid}. The document ID is
// the authentication UID.
type Profile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UpdateParams carries the profile fields a user may change. Nil pointers
// leave the stored value untouched.
type UpdateParams struct {
	DisplayName *string
	Currency    *string
}

// Apply copies the set fields onto the profile and stamps UpdatedAt.
func (p UpdateParams) Apply(profile *Profile, now time.Time) {
	if p.DisplayName != nil {
		profile.DisplayName = *p.DisplayName
	}
	if p.Currency != nil {
		profile.Currency = *p.Currency
	}
	profile.UpdatedAt = now.UTC()
}
