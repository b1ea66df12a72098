// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"kunstcollectie/config"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/service"
)

const (
	fallbackMinLength = 8
	fallbackMaxLength = 128
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt. The cost factor is fixed at construction and read-only
// afterwards.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return &bcryptHasher{
		cost:     cfg.BcryptCost(),
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt generates the salt and embeds it, together with the cost factor,
// in the returned encoding.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash. bcrypt's compare is
// constant time over the digest; any failure, including a malformed stored
// hash, reports a plain mismatch.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength rejects passwords below the configured
// requirements. bcrypt only reads the first 72 bytes, so overly long
// passwords are rejected as well.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength, maxLength := fallbackMinLength, fallbackMaxLength
	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLength = h.strength.MinLength
		}
		if h.strength.MaxLength > 0 {
			maxLength = h.strength.MaxLength
		}
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too short")
	}
	if len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too long")
	}

	if h.strength == nil {
		return nil
	}

	var hasUpper, hasLower, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a digit")
	}

	return nil
}
