// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"cofoundr/internal/domain/entity"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/domain/repository"
	"cofoundr/internal/infra/persistence/model"
)

// founderRepository implements the repository.FounderRepository interface using GORM.
type founderRepository struct {
	db *gorm.DB
}

// NewFounderRepository is the constructor for founderRepository.
// It returns the repository as a repository.FounderRepository interface, adhering to dependency inversion.
func NewFounderRepository(db *gorm.DB) repository.FounderRepository {
	return &founderRepository{db: db}
}

// Create persists a new founder. The INSERT is a single atomic statement;
// the unique index on email closes the duplicate-registration race.
func (repo *founderRepository) Create(ctx context.Context, founder *entity.Founder) error {
	founderM := fromFounderDomain(founder)
	// New accounts always start active.
	founderM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(founderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrFounderCreationFailed.WrapMessage("missing required founder information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create founder")
	}

	// Update the entity with the generated ID and timestamps.
	founder.ID = founderM.ID
	founder.IsActive = founderM.IsActive
	founder.CreatedAt = founderM.CreatedAt
	founder.UpdatedAt = founderM.UpdatedAt

	return nil
}

// FindByEmail retrieves a single founder by their email address.
func (repo *founderRepository) FindByEmail(ctx context.Context, email string) (*entity.Founder, error) {
	var founderM model.FounderModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&founderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFounderNotFound
		}

		return nil, errors.Wrap(err, "failed to find founder by email")
	}

	return toFounderDomain(&founderM), nil
}

// FindByID retrieves a single founder by their unique ID.
func (repo *founderRepository) FindByID(ctx context.Context, id int64) (*entity.Founder, error) {
	var founderM model.FounderModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&founderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFounderNotFound
		}

		return nil, errors.Wrap(err, "failed to find founder by id")
	}

	return toFounderDomain(&founderM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toFounderDomain converts a GORM FounderModel to a domain Founder entity.
func toFounderDomain(data *model.FounderModel) *entity.Founder {
	if data == nil {
		return nil
	}

	return &entity.Founder{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		CompanyName:  data.CompanyName,
		Industry:     data.Industry,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromFounderDomain converts a domain Founder entity to a GORM FounderModel for persistence.
func fromFounderDomain(data *entity.Founder) *model.FounderModel {
	if data == nil {
		return nil
	}

	return &model.FounderModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		CompanyName:  data.CompanyName,
		Industry:     data.Industry,
		IsActive:     data.IsActive,
	}
}
