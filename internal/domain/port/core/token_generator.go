package core

// TokenGenerator produces opaque session tokens
type TokenGenerator interface {
	// Generate returns a new unpredictable token
	Generate() (string, error)
}
