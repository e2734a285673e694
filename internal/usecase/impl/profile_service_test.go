package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofoundr/internal/domain/entity"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/domain/repository"
	mockRepo "cofoundr/internal/mocks/repository"
)

func createTestProfileService(t *testing.T) (*mockRepo.MockFounderRepository, *profileService) {
	t.Helper()

	founderRepo := new(mockRepo.MockFounderRepository)
	t.Cleanup(func() { founderRepo.AssertExpectations(t) })

	svc := NewProfileService(ProfileServiceParams{
		FounderRepo: founderRepo,
		Logger:      newDiscardLogger(),
	})

	return founderRepo, svc.(*profileService)
}

func TestProfileService_GetProfile_Found(t *testing.T) {
	founderRepo, svc := createTestProfileService(t)
	ctx := context.Background()

	founder := &entity.Founder{
		ID:        1,
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		IsActive:  true,
	}
	founderRepo.On("FindByID", ctx, int64(1)).Return(founder, nil)

	got, err := svc.GetProfile(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, founder, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	founderRepo, svc := createTestProfileService(t)
	ctx := context.Background()

	founderRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrFounderNotFound)

	got, err := svc.GetProfile(ctx, 42)

	assert.Nil(t, got)
	// A valid token for a vanished founder reads the same as no token at all.
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestProfileService_GetProfile_RepositoryError(t *testing.T) {
	founderRepo, svc := createTestProfileService(t)
	ctx := context.Background()

	founderRepo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("connection reset"))

	got, err := svc.GetProfile(ctx, 1)

	assert.Nil(t, got)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
