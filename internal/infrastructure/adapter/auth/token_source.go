package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// tokenBytes gives 64 hex characters per token
const tokenBytes = 32

// RandomTokenSource implements the TokenGenerator interface with
// crypto/rand-backed tokens
type RandomTokenSource struct{}

// NewRandomTokenSource creates a new token source
func NewRandomTokenSource() core.TokenGenerator {
	return &RandomTokenSource{}
}

// Generate returns a new unpredictable token
func (s *RandomTokenSource) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
