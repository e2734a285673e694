// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "cofoundr/internal/delivery/context"
	"cofoundr/internal/domain/entity"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/domain/repository"
	"cofoundr/internal/domain/service"
	"cofoundr/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	founderRepo  repository.FounderRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	FounderRepo  repository.FounderRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		founderRepo:  params.FounderRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete founder registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email, err := validateRegisterInput(input)
	if err != nil {
		srv.log(ctx).Warn("Registration input validation failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Starting founder registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		// Hashing failures never downgrade to a weaker scheme; the request fails.
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newFounder := &entity.Founder{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		CompanyName:  strings.TrimSpace(input.CompanyName),
		Industry:     strings.TrimSpace(input.Industry),
	}

	// A single atomic insert; the store's unique constraint closes the
	// duplicate-email race, so a DuplicateEmail from a concurrent
	// registration propagates unchanged.
	if err := srv.founderRepo.Create(ctx, newFounder); err != nil {
		srv.log(ctx).Warn("Failed to create founder during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create founder during registration")
	}

	// The original flow logs the founder straight in after registration.
	accessToken, err := srv.tokenService.IssueToken(newFounder.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Int64("founderID", newFounder.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Founder registered successfully", slog.Int64("founderID", newFounder.ID))

	return &usecase.RegisterOutput{
		Founder:     newFounder,
		AccessToken: accessToken,
	}, nil
}

// Login orchestrates the founder login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting founder login", slog.String("email", email))

	founder, err := srv.founderRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrFounderNotFound) {
			// Same error as a wrong password, to prevent account enumeration.
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load founder during login", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find founder by email")
	}

	if !founder.IsActive {
		srv.log(ctx).Warn("Login attempt on deactivated account", slog.Int64("founderID", founder.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "login failed")
	}

	// bcrypt comparison is CPU-bound; nothing else holds a shared resource here.
	if !srv.hasher.Check(input.Password, founder.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueToken(founder.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Int64("founderID", founder.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Founder logged in successfully", slog.Int64("founderID", founder.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresIn:   srv.tokenService.GetAccessTokenDuration(),
	}, nil
}

// Logout is a stateless no-op: tokens remain valid until their encoded expiry
// and the client simply discards its copy.
func (srv *authService) Logout(ctx context.Context) error {
	srv.log(ctx).Info("Founder logged out")

	return nil
}

// validateRegisterInput checks required fields and email shape, returning the
// normalized email on success.
func validateRegisterInput(input *usecase.RegisterInput) (string, error) {
	email := normalizeEmail(input.Email)

	switch {
	case email == "":
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	case input.Password == "":
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "password is required")
	case strings.TrimSpace(input.FirstName) == "":
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "first name is required")
	case strings.TrimSpace(input.LastName) == "":
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "last name is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "email is not well-formed")
	}

	return email, nil
}

// normalizeEmail lower-cases and trims an email so uniqueness checks are
// case-insensitive and consistent between registration and login.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
