// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"kunstcollectie/config"
	deliverycontext "kunstcollectie/internal/delivery/context"
	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	"kunstcollectie/internal/domain/service"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	resetRepo     repository.PasswordResetRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	notifier      service.ResetNotifier
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ResetRepo    repository.PasswordResetRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.ResetNotifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	resetTokenTTL := defaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTokenTTL = params.Config.Auth.ResetTokenTTL
	}

	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		resetRepo:     params.ResetRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		notifier:      params.Notifier,
		resetTokenTTL: resetTokenTTL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates account registration: duplicate check, password
// strength validation, hashing and persistence. The check-then-create race is
// backstopped by the store's uniqueness constraint, which maps to the same
// duplicate-identity error. Email is stored exactly as entered (surrounding
// whitespace aside) and uniqueness is case-sensitive.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	role := entity.RoleUser
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
		}
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		srv.log(ctx).Warn("Registration rejected, email in use", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to persist new account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: usecase.NewUserOutput(newUser)}, nil
}

// Login verifies the credential and issues a stateless access token. An
// unknown email and a wrong password produce the identical error so the
// response never reveals whether the account exists.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	// bcrypt comparison is CPU-bound and deliberately slow.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        usecase.NewUserOutput(user),
	}, nil
}

// GetProfile returns the caller's own account record.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return usecase.NewUserOutput(user), nil
}

// ListUsers returns all accounts; reachable through the admin gate only.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}

// UpdateRole changes the authorization level of an account. Outstanding
// access tokens keep their issuance-time role until they expire; that is the
// stateless trust model's contract.
func (srv *userService) UpdateRole(ctx context.Context, userID uuid.UUID, input *usecase.UpdateRoleInput) (*usecase.UserOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	if err := srv.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "role update failed")
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("Role updated", slog.Any("userID", userID), slog.Any("role", role))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload account after role update")
	}

	return usecase.NewUserOutput(user), nil
}

// RequestPasswordReset issues a single-use reset token when the account
// exists. The caller always receives success so responses cannot be used to
// enumerate accounts; only the token digest is persisted.
func (srv *userService) RequestPasswordReset(ctx context.Context, input *usecase.RequestPasswordResetInput) error {
	email := strings.TrimSpace(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to load account")
	}

	// Opportunistic purge of stale tokens. Best effort only, a failing
	// cleanup must not block the reset request.
	if purged, err := srv.resetRepo.DeleteExpired(ctx, time.Now()); err != nil {
		srv.log(ctx).Warn("Failed to purge expired reset tokens", slog.Any("error", err))
	} else if purged > 0 {
		srv.log(ctx).Debug("Purged expired reset tokens", slog.Int64("count", purged))
	}

	token, tokenHash, err := newResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	reset := &entity.PasswordReset{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(srv.resetTokenTTL),
	}
	if err := srv.resetRepo.Create(ctx, reset); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.notifier.SendResetToken(ctx, user.Email, token); err != nil {
		return errors.Wrap(err, "failed to deliver reset token")
	}

	srv.log(ctx).Info("Password reset token created", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword redeems a reset token. Lookup is by digest; unknown, expired
// and already-consumed tokens yield one generic error. Consumption and the
// credential update happen in a single transaction so a token can never be
// redeemed twice.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	tokenHash := hashResetToken(input.Token)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.PasswordResetRepo()
		userRepo := repoFactory.UserRepo()

		reset, err := resetRepo.FindByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset failed")
			}

			return errors.Wrap(err, "failed to load reset token")
		}

		if !reset.Usable(time.Now()) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset failed")
		}

		if err := resetRepo.Consume(ctx, reset.ID, time.Now()); err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				// Lost the race against a concurrent redemption.
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset failed")
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		if err := userRepo.UpdatePasswordHash(ctx, reset.UserID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// newResetToken generates a random reset token and its storable digest.
func newResetToken() (token, tokenHash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "entropy source failure")
	}

	token = hex.EncodeToString(buf)

	return token, hashResetToken(token), nil
}

// hashResetToken digests a plaintext reset token for storage and lookup.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
