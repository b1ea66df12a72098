// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't naturally fit within a single
// entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the
// domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt and
	// work factor are embedded in the returned encoding.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant
	// time. It returns false, never an error, for any mismatch including a
	// malformed stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not meet the
	// configured strength requirements.
	ValidatePasswordStrength(password string) error
}
