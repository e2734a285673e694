// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cofoundr/internal/domain/entity"
)

// ErrFounderNotFound is a domain-specific error returned when a founder is not found.
var ErrFounderNotFound = errors.New("founder not found")

// FounderRepository defines the standard operations for founder persistence.
// The application layer will depend on this interface, not the concrete implementation.
type FounderRepository interface {
	// Create persists a new founder. The insert is a single atomic statement;
	// email uniqueness is enforced by the database constraint, so a concurrent
	// duplicate registration surfaces as ErrEmailAlreadyRegistered from the
	// implementation rather than a race in the caller.
	Create(ctx context.Context, founder *entity.Founder) error

	// FindByEmail retrieves a single founder by their lower-cased email address.
	FindByEmail(ctx context.Context, email string) (*entity.Founder, error)

	// FindByID retrieves a single founder by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Founder, error)
}
