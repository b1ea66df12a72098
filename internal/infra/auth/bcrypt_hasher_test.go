package auth

import (
	"testing"

	"kunstcollectie/config"
	domainerrors "kunstcollectie/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	// Low cost keeps the test suite fast; the encoding embeds it either way.
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "geheim123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password verifies.
	assert.True(t, hasher.Check(password, hash))

	// Incorrect, empty and near-miss passwords do not.
	assert.False(t, hasher.Check("geheim124", hash))
	assert.False(t, hasher.Check("", hash))

	// A malformed stored hash is a mismatch, not an error.
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	password := "geheim123"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Fresh salt per call: encodings differ, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_CostEmbedded(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("geheim123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	assert.NoError(t, hasher.ValidatePasswordStrength("geheim123"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Wachtw0ord!"))

	testCases := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "kort1"},
		{name: "no lowercase", password: "GEHEIM12345"},
		{name: "no digits", password: "geheimwoord"},
		{name: "too long", password: string(make([]byte, 200))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		})
	}
}

func TestBcryptHasher_DefaultsWithoutStrengthConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	})

	// Only the length bounds apply without a strength section.
	assert.NoError(t, hasher.ValidatePasswordStrength("whatever-goes"))
	assert.Error(t, hasher.ValidatePasswordStrength("kort"))
}
