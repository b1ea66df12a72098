// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kunstcollectie/config"
	"kunstcollectie/internal/domain/entity"
	"kunstcollectie/internal/domain/service"
	"kunstcollectie/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs. The signing secret is fixed at construction; rotating it
// implicitly invalidates every outstanding token.
type jwtService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.SecretKey.Access),
		tokenTTL: cfg.TokenTTL(),
	}, nil
}

// Issue builds the claim set from the user record and signs it. Issuance is a
// pure function of (user, current time, secret); nothing is persisted.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate parses the compact token, verifies the HMAC signature and expiry,
// and returns the decoded claims. The signing method check prevents algorithm
// confusion; jwt/v5 rejects expired tokens during parsing.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured validity window.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.tokenTTL
}
