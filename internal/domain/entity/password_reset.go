package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a single-use credential-recovery token. Only the SHA-256
// digest of the token is stored; the plaintext is handed to the notifier once
// and never persisted.
type PasswordReset struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TokenHash  string // hex-encoded SHA-256 of the plaintext token.
	ExpiresAt  time.Time
	ConsumedAt *time.Time // Set when the token has been redeemed.
	CreatedAt  time.Time
}

// Usable reports whether the token can still redeem a password reset.
func (p *PasswordReset) Usable(now time.Time) bool {
	return p.ConsumedAt == nil && now.Before(p.ExpiresAt)
}
