// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kunstcollectie/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
// Role is optional; it defaults to the regular user role and must be a valid
// enum value when supplied.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RequestPasswordResetInput carries the email a reset is requested for.
type RequestPasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput redeems a reset token for a new credential.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateRoleInput changes the authorization level of an account.
type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// --- Output DTOs ---

// UserOutput is the serializable projection of a user. The credential digest
// is stripped here and never reaches a response body.
type UserOutput struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// NewUserOutput strips the credential digest from a user entity.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role.String(),
	}
}

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *UserOutput `json:"user"`
}

// LoginOutput returns the access token alongside the account after a
// successful login.
type LoginOutput struct {
	AccessToken string      `json:"accessToken"`
	User        *UserOutput `json:"user"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserOutput, error)
	ListUsers(ctx context.Context) ([]*UserOutput, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, input *UpdateRoleInput) (*UserOutput, error)
	RequestPasswordReset(ctx context.Context, input *RequestPasswordResetInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
