package transaction

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// NewID mints an opaque transaction id scoped to a user:
// "txn_<millis>_<uid[:8]>_<n>" with n drawn uniformly from [0, 10000).
// Without a uid the principal segment is omitted. Callers must not parse
// the result; per-user uniqueness is enforced by the persistence layer,
// the random tail only makes same-millisecond collisions unlikely.
func NewID(uid string) string {
	millis := time.Now().UnixMilli()
	n := rand.IntN(10000)
	if uid == "" {
		return fmt.Sprintf("txn_%d_%d", millis, n)
	}
	return fmt.Sprintf("txn_%d_%s_%d", millis, shortUID(uid), n)
}

// NewWideID is the wide-range variant for high-frequency inserts: same
// "txn_" prefix contract, UUID tail instead of the small random range.
func NewWideID(uid string) string {
	millis := time.Now().UnixMilli()
	if uid == "" {
		return fmt.Sprintf("txn_%d_%s", millis, uuid.NewString())
	}
	return fmt.Sprintf("txn_%d_%s_%s", millis, shortUID(uid), uuid.NewString())
}

func shortUID(uid string) string {
	if len(uid) > 8 {
		return uid[:8]
	}
	return uid
}
