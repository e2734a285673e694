// Package repository contains hand-written testify doubles for the
// persistence contracts.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cofoundr/internal/domain/entity"
)

// MockFounderRepository is a testify mock for repository.FounderRepository.
type MockFounderRepository struct {
	mock.Mock
}

func (m *MockFounderRepository) Create(ctx context.Context, founder *entity.Founder) error {
	args := m.Called(ctx, founder)

	return args.Error(0)
}

func (m *MockFounderRepository) FindByEmail(ctx context.Context, email string) (*entity.Founder, error) {
	args := m.Called(ctx, email)

	if founder, ok := args.Get(0).(*entity.Founder); ok {
		return founder, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFounderRepository) FindByID(ctx context.Context, id int64) (*entity.Founder, error) {
	args := m.Called(ctx, id)

	if founder, ok := args.Get(0).(*entity.Founder); ok {
		return founder, args.Error(1)
	}

	return nil, args.Error(1)
}
