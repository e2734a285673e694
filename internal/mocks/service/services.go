// Package service contains hand-written testify doubles for the domain
// service contracts.
package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"cofoundr/internal/domain/service"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(founderID int64) (string, error) {
	args := m.Called(founderID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) GetAccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
