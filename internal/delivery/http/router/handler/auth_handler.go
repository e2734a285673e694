// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cofoundr/internal/delivery/http/middleware"
	"cofoundr/internal/delivery/http/response"
	"cofoundr/internal/domain/entity"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/usecase"
)

// TokenType is the scheme clients put in the Authorization header.
const TokenType = "bearer"

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	CompanyName string `json:"company_name" validate:"omitempty"`
	Industry    string `json:"industry" validate:"omitempty"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FounderResponse is the public view of a founder. It never carries the
// password hash.
type FounderResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CompanyName string    `json:"company_name,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterResponse is the body for a successful registration.
type RegisterResponse struct {
	Founder     FounderResponse `json:"founder"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
}

// LoginResponse is the body for a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

func toFounderResponse(founder *entity.Founder) FounderResponse {
	return FounderResponse{
		ID:          founder.ID,
		Email:       founder.Email,
		FirstName:   founder.FirstName,
		LastName:    founder.LastName,
		CompanyName: founder.CompanyName,
		Industry:    founder.Industry,
		IsActive:    founder.IsActive,
		CreatedAt:   founder.CreatedAt,
	}
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:    authUC,
		profileUC: profileUC,
		logger:    logger,
	}
}

// Register handles the founder registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		Founder:     toFounderResponse(output.Founder),
		AccessToken: output.AccessToken,
		TokenType:   TokenType,
	}, "Founder registered successfully")
}

// Login handles the founder login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   TokenType,
		ExpiresIn:   int64(output.ExpiresIn.Seconds()),
	}, "Login successful")
}

// Me returns the profile of the founder behind the access token.
func (h *AuthHandler) Me(c echo.Context) error {
	founderID, ok := middleware.FounderIDFromEchoContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	founder, err := h.profileUC.GetProfile(c.Request().Context(), founderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFounderResponse(founder), "")
}

// Logout handles the founder logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
