package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "cofoundr/internal/mocks/repository"
	mockSvc "cofoundr/internal/mocks/service"
	"cofoundr/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	founderRepo *mockRepo.MockFounderRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenSvc    *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	founderRepo := new(mockRepo.MockFounderRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	tokenSvc := new(mockSvc.MockTokenService)

	service := NewAuthService(AuthServiceParams{
		FounderRepo:  founderRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	t.Cleanup(func() {
		founderRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	return authServiceFixtures{
		service:     service,
		founderRepo: founderRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}
