// Package notify contains delivery channels for password-reset tokens.
package notify

import (
	"context"
	"log/slog"

	"kunstcollectie/internal/domain/service"
)

// logNotifier writes the reset token to the service log instead of sending
// mail. Intended for local and test environments; a mail-backed notifier can
// replace it behind the same interface.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier is the constructor for logNotifier.
func NewLogNotifier(logger *slog.Logger) service.ResetNotifier {
	return &logNotifier{logger: logger}
}

// SendResetToken logs the token for the operator to relay.
func (n *logNotifier) SendResetToken(ctx context.Context, email, token string) error {
	n.logger.InfoContext(ctx, "Password reset token issued",
		slog.String("email", email),
		slog.String("token", token),
	)

	return nil
}
