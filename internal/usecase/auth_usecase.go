// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cofoundr/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new founder.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	CompanyName string
	Industry    string
}

// LoginInput defines the data required for a founder to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created founder and a fresh access token,
// so a successful registration doubles as a login.
type RegisterOutput struct {
	Founder     *entity.Founder
	AccessToken string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout is stateless: the server holds no session state, so the only
	// contract is that it never fails. Clients discard the token.
	Logout(ctx context.Context) error
}
