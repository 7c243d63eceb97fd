// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,min=6,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,min=6,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// UserUsecase defines the identity operations consumed by the delivery layer.
type UserUsecase interface {
	// Register creates a user account and returns the new user ID.
	Register(ctx context.Context, input *RegisterInput) (string, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
