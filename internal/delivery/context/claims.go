package context

import (
	"context"

	"kunstcollectie/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// GetClaims extracts the verified identity claims from echo.Context.
// Returns nil when the request was not authenticated.
func GetClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(string(KeyClaims)).(*service.Claims); ok {
		return claims
	}

	return nil
}

// SetClaims stores the verified identity claims on echo.Context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaimsFromContext extracts the identity claims from standard context.Context.
func GetClaimsFromContext(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(KeyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}

// WithClaims returns a new context carrying the identity claims.
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}
