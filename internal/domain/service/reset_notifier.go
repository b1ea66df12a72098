package service

import "context"

// ResetNotifier delivers a plaintext password-reset token to the account's
// email address. The token is handed over exactly once and never stored in
// plaintext.
type ResetNotifier interface {
	SendResetToken(ctx context.Context, email, token string) error
}
