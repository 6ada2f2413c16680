package core

// PasscodeHasher abstracts one-way passcode hashing so the domain never
// depends on a concrete algorithm
type PasscodeHasher interface {
	// Hash derives a storable digest from a plaintext passcode
	Hash(passcode string) (string, error)
	// Compare reports whether the plaintext passcode matches the digest
	Compare(hash, passcode string) bool
}
