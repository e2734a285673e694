// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "cofoundr/internal/delivery/context"
	"cofoundr/internal/domain/entity"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/domain/repository"
	"cofoundr/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	founderRepo repository.FounderRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	FounderRepo repository.FounderRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		founderRepo: params.FounderRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the founder behind an already-verified token subject.
func (srv *profileService) GetProfile(ctx context.Context, founderID int64) (*entity.Founder, error) {
	srv.log(ctx).Debug("Getting founder profile", slog.Int64("founderID", founderID))

	founder, err := srv.founderRepo.FindByID(ctx, founderID)
	if err != nil {
		if errors.Is(err, repository.ErrFounderNotFound) {
			// A valid token whose subject no longer exists reads as
			// Unauthorized, not as a distinguishable not-found.
			srv.log(ctx).Warn("Token subject no longer exists", slog.Int64("founderID", founderID))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "founder not found")
		}

		srv.log(ctx).Error("Failed to load founder profile", slog.Int64("founderID", founderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find founder")
	}

	return founder, nil
}
