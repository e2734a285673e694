// Package usecase contains hand-written testify doubles for the usecase
// contracts.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cofoundr/internal/domain/entity"
	"cofoundr/internal/usecase"
)

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)

	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)

	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

// MockProfileUsecase is a testify mock for usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, founderID int64) (*entity.Founder, error) {
	args := m.Called(ctx, founderID)

	if founder, ok := args.Get(0).(*entity.Founder); ok {
		return founder, args.Error(1)
	}

	return nil, args.Error(1)
}
