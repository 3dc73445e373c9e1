package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hashing cost against interactive unlock latency on
// low-end devices.
const bcryptCost = 10

// HashPasscode hashes a plaintext app lock passcode with bcrypt.
func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", fmt.Errorf("passcode must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing passcode: %w", err)
	}
	return string(hash), nil
}

// VerifyPasscode reports whether the plaintext passcode matches the stored
// bcrypt hash.
func VerifyPasscode(hash, passcode string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
