// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cofoundr/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile loads the founder identified by an already-verified token
	// subject. A missing founder surfaces as ErrUnauthorized, never as a
	// distinguishable not-found.
	GetProfile(ctx context.Context, founderID int64) (*entity.Founder, error)
}
