package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"
	"time"

	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	mockRepo "kunstcollectie/internal/mocks/repository"
	mockSvc "kunstcollectie/internal/mocks/service"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	resetRepo    *mockRepo.MockPasswordResetRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	notifier     *mockSvc.MockResetNotifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	notifier := mockSvc.NewMockResetNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		ResetRepo:    resetRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Notifier:     notifier,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		resetRepo:    resetRepo,
		hasher:       hasher,
		tokenService: tokenService,
		notifier:     notifier,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Jan Vermeer",
		Email:    "Jan@Example.com",
		Password: "Password123",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "Jan@Example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Jan@Example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser.String(), output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_EmailCaseSensitive(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Jan Vermeer",
		Email:    "JAN@example.com",
		Password: "Password123",
	}

	// "jan@example.com" may already exist; the lookup and the stored value
	// use the address exactly as entered.
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "JAN@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "JAN@example.com", user.Email)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "JAN@example.com", output.User.Email)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Jan Vermeer",
		Email:    "jan@example.com",
		Password: "Password123",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Jan Vermeer",
		Email:    "jan@example.com",
		Password: "Password123",
		Role:     "superuser",
	}

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Jan Vermeer",
		Email:    "jan@example.com",
		Password: "short",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.Wrap(domainerrors.ErrPasswordStrength, "too short"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jan@example.com",
		Name:         "Jan Vermeer",
		PasswordHash: "stored_hash",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)
}

// A wrong password and an unknown email must be indistinguishable to the
// caller.
func TestUserService_Login_MergedFailureCategory(t *testing.T) {
	ctx := context.Background()

	fx := createTestUserService(t)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, errUnknown := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123",
	})

	fx2 := createTestUserService(t)
	user := &entity.User{ID: uuid.New(), Email: "jan@example.com", PasswordHash: "stored_hash"}
	fx2.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx2.hasher.EXPECT().Check("WrongPassword1", user.PasswordHash).Return(false)

	_, errWrongPassword := fx2.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "WrongPassword1",
	})

	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrongPassword, domainerrors.ErrInvalidCredentials))
}

func TestUserService_UpdateRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateRole(ctx, userID, entity.RoleAdmin).Return(nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "jan@example.com", Role: entity.RoleAdmin}, nil)

	output, err := fx.service.UpdateRole(ctx, userID, &usecase.UpdateRoleInput{Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin.String(), output.Role)
}

func TestUserService_UpdateRole_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleAdmin).
		Return(repository.ErrUserNotFound)

	output, err := fx.service.UpdateRole(ctx, userID, &usecase.UpdateRoleInput{Role: "admin"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	// Silent success: the response must not reveal whether the account exists.
	err := fx.service.RequestPasswordReset(ctx, &usecase.RequestPasswordResetInput{
		Email: "ghost@example.com",
	})

	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_StoresDigestOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jan@example.com"}

	var storedHash string
	var sentToken string

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.resetRepo.EXPECT().
		DeleteExpired(ctx, mock.AnythingOfType("time.Time")).
		Return(0, nil)
	fx.resetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordReset")).
		Run(func(ctx context.Context, reset *entity.PasswordReset) {
			storedHash = reset.TokenHash
			assert.Equal(t, user.ID, reset.UserID)
			assert.True(t, reset.ExpiresAt.After(time.Now()))
		}).
		Return(nil)
	fx.notifier.EXPECT().
		SendResetToken(ctx, user.Email, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, email, token string) {
			sentToken = token
		}).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, &usecase.RequestPasswordResetInput{
		Email: user.Email,
	})

	require.NoError(t, err)
	require.NotEmpty(t, sentToken)
	assert.NotEqual(t, sentToken, storedHash)

	sum := sha256.Sum256([]byte(sentToken))
	assert.Equal(t, hex.EncodeToString(sum[:]), storedHash)
}

func TestUserService_RequestPasswordReset_PurgeFailureDoesNotBlock(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jan@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.resetRepo.EXPECT().
		DeleteExpired(ctx, mock.AnythingOfType("time.Time")).
		Return(0, errors.New("connection reset"))
	fx.resetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordReset")).
		Return(nil)
	fx.notifier.EXPECT().
		SendResetToken(ctx, user.Email, mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, &usecase.RequestPasswordResetInput{
		Email: user.Email,
	})

	require.NoError(t, err)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	token := "plaintext-reset-token"
	sum := sha256.Sum256([]byte(token))
	tokenHash := hex.EncodeToString(sum[:])

	reset := &entity.PasswordReset{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockResetRepo := mockRepo.NewMockPasswordResetRepository(t)

			mockFactory.EXPECT().PasswordResetRepo().Return(mockResetRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockResetRepo.EXPECT().FindByTokenHash(ctx, tokenHash).Return(reset, nil)
			mockResetRepo.EXPECT().
				Consume(ctx, reset.ID, mock.AnythingOfType("time.Time")).
				Return(nil)
			mockUserRepo.EXPECT().
				UpdatePasswordHash(ctx, reset.UserID, "new_hash").
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       token,
		NewPassword: "NewPassword123",
	})

	require.NoError(t, err)
}

func TestUserService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	token := "plaintext-reset-token"
	sum := sha256.Sum256([]byte(token))
	tokenHash := hex.EncodeToString(sum[:])

	reset := &entity.PasswordReset{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetRepository(t)

			mockFactory.EXPECT().PasswordResetRepo().Return(mockResetRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockResetRepo.EXPECT().FindByTokenHash(ctx, tokenHash).Return(reset, nil)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       token,
		NewPassword: "NewPassword123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestUserService_ResetPassword_AlreadyConsumed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	token := "plaintext-reset-token"
	sum := sha256.Sum256([]byte(token))
	tokenHash := hex.EncodeToString(sum[:])

	consumedAt := time.Now().Add(-time.Minute)
	reset := &entity.PasswordReset{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		TokenHash:  tokenHash,
		ExpiresAt:  time.Now().Add(time.Hour),
		ConsumedAt: &consumedAt,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetRepository(t)

			mockFactory.EXPECT().PasswordResetRepo().Return(mockResetRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockResetRepo.EXPECT().FindByTokenHash(ctx, tokenHash).Return(reset, nil)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       token,
		NewPassword: "NewPassword123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestUserService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetRepository(t)

			mockFactory.EXPECT().PasswordResetRepo().Return(mockResetRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockResetRepo.EXPECT().
				FindByTokenHash(ctx, mock.AnythingOfType("string")).
				Return(nil, repository.ErrPasswordResetNotFound)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "no-such-token",
		NewPassword: "NewPassword123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}
