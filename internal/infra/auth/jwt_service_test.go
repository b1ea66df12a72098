package auth

import (
	"strings"
	"testing"
	"time"

	"kunstcollectie/config"
	"kunstcollectie/internal/domain/entity"
	"kunstcollectie/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "a@x.com",
		Name:  "A",
		Role:  entity.RoleUser,
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTokenConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	user := testUser()
	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Compact three-segment encoding.
	assert.Len(t, strings.Split(token, "."), 3)

	// Round-trip: the decoded claim set matches the user at issuance.
	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, entity.RoleUser, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_DefaultTTLIsSevenDays(t *testing.T) {
	svc, err := NewJWTService(newTokenConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.AccessTokenDuration())
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTokenConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTokenConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTokenConfig("different_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTokenConfig(secret, time.Hour))
	require.NoError(t, err)

	// Sign an already expired token with the correct secret.
	now := time.Now()
	expired := &service.Claims{
		UserID: uuid.New(),
		Email:  "a@x.com",
		Role:   entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongSigningMethod(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTokenConfig(secret, time.Hour))
	require.NoError(t, err)

	// "none" algorithm tokens must never pass.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTokenConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
