package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// BcryptHasher implements the PasscodeHasher interface using bcrypt.
// Passcodes are ten digits, well under the 72-byte bcrypt input cap.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Costs below the
// bcrypt minimum fall back to the library default.
func NewBcryptHasher(cost int) core.PasscodeHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a storable digest from a plaintext passcode
func (h *BcryptHasher) Hash(passcode string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(passcode), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether the plaintext passcode matches the digest
func (h *BcryptHasher) Compare(hash, passcode string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
