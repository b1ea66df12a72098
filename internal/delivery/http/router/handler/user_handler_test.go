package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kunstcollectie/config"
	"kunstcollectie/internal/delivery/http/middleware"
	"kunstcollectie/internal/delivery/http/validator"
	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/infra/auth"
	mockUC "kunstcollectie/internal/mocks/usecase"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the same validator and error
// handling the real server uses.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func newTestTokenService(t *testing.T) *middleware.AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return middleware.NewAuthMiddleware(tokenSvc)
}

func authHeaderFor(t *testing.T, user *entity.User) string {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.Issue(user)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestUserHandler_RegisterUser_Created(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/auth/register", h.RegisterUser)

	userID := uuid.New()
	uc.EXPECT().
		RegisterUser(mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "jan@example.com", input.Email)

			return &usecase.RegisterOutput{User: &usecase.UserOutput{
				ID:    userID,
				Email: input.Email,
				Name:  input.Name,
				Role:  "user",
			}}, nil
		})

	body := `{"name":"Jan Vermeer","email":"jan@example.com","password":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	// The credential digest must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUserHandler_RegisterUser_InvalidBody(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/auth/register", h.RegisterUser)

	// Missing required email.
	body := `{"name":"Jan Vermeer","password":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_RegisterUser_Duplicate(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/auth/register", h.RegisterUser)

	uc.EXPECT().
		RegisterUser(mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed"))

	body := `{"name":"Jan Vermeer","email":"jan@example.com","password":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestUserHandler_Login_ReturnsToken(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/auth/login", h.Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken: "signed_token",
			User:        &usecase.UserOutput{ID: uuid.New(), Email: "jan@example.com", Role: "user"},
		}, nil)

	body := `{"email":"jan@example.com","password":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "signed_token", envelope.Data.AccessToken)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/auth/login", h.Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	body := `{"email":"jan@example.com","password":"WrongPassword1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_GetProfile_UsesTokenIdentity(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.GET("/api/users/me", h.GetProfile, authMw.Authenticate)

	user := &entity.User{ID: uuid.New(), Email: "jan@example.com", Name: "Jan Vermeer", Role: entity.RoleUser}

	uc.EXPECT().
		GetProfile(mock.Anything, user.ID).
		Return(&usecase.UserOutput{ID: user.ID, Email: user.Email, Name: user.Name, Role: "user"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", authHeaderFor(t, user))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
}

func TestUserHandler_UpdateUserRole_BadID(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.PUT("/api/admin/users/:id/role", h.UpdateUserRole)

	body := `{"role":"admin"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/not-a-uuid/role", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_ResetPassword_InvalidToken(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/auth/password-reset/confirm", h.ResetPassword)

	uc.EXPECT().
		ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).
		Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset failed"))

	body := `{"token":"stale-token","newPassword":"NewPassword123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password-reset/confirm", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESET_TOKEN_INVALID")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
