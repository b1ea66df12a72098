package service

import (
	"time"

	"kunstcollectie/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the verified identity carried by an access token. It reflects
// the user's state at issuance time; no store lookup happens at verification.
type Claims struct {
	UserID uuid.UUID   `json:"id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// Tokens are stateless: validity is purely a function of signature and expiry.
type TokenService interface {
	// Issue builds the claim set from the user record and signs it with the
	// service's symmetric secret, embedding issued-at and expiry timestamps.
	Issue(user *entity.User) (string, error)

	// Validate parses and verifies a compact token. It returns the decoded
	// claims, or an error on signature mismatch, malformed structure or
	// expiry. Callers translate any failure into a single invalid-token
	// category.
	Validate(token string) (*Claims, error)

	// AccessTokenDuration returns the configured validity window.
	AccessTokenDuration() time.Duration
}
