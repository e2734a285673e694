package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cofoundr/internal/domain/entity"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/domain/repository"
	"cofoundr/internal/usecase"
)

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:     "a@b.com",
		Password:  "secret123",
		FirstName: "A",
		LastName:  "B",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.CompanyName = "Acme"
	input.Industry = "Fintech"

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.founderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Founder")).
		Run(func(args mock.Arguments) {
			founder := args.Get(1).(*entity.Founder)
			founder.ID = 1
			founder.IsActive = true
		}).
		Return(nil)
	fx.tokenSvc.On("IssueToken", int64(1)).Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(1), output.Founder.ID)
	assert.Equal(t, "a@b.com", output.Founder.Email)
	assert.Equal(t, "hashed_password", output.Founder.PasswordHash)
	assert.Equal(t, "Acme", output.Founder.CompanyName)
	assert.True(t, output.Founder.IsActive)
	assert.Equal(t, "signed_token", output.AccessToken)
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.Email = "  A@B.Com "

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.founderRepo.On("Create", ctx, mock.MatchedBy(func(f *entity.Founder) bool {
		return f.Email == "a@b.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Founder).ID = 1
	}).Return(nil)
	fx.tokenSvc.On("IssueToken", int64(1)).Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", output.Founder.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.founderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Founder")).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{"missing email", func(in *usecase.RegisterInput) { in.Email = "" }},
		{"missing password", func(in *usecase.RegisterInput) { in.Password = "" }},
		{"missing first name", func(in *usecase.RegisterInput) { in.FirstName = "  " }},
		{"missing last name", func(in *usecase.RegisterInput) { in.LastName = "" }},
		{"malformed email", func(in *usecase.RegisterInput) { in.Email = "not-an-email" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := validRegisterInput()
			tc.mutate(input)

			output, err := fx.service.Register(context.Background(), input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			// No domain logic may run on invalid input.
			fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
			fx.founderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Register_HashFailureIsFatal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("", errors.New("resource exhausted"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.founderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func activeFounder() *entity.Founder {
	return &entity.Founder{
		ID:           1,
		Email:        "a@b.com",
		PasswordHash: "hashed_password",
		FirstName:    "A",
		LastName:     "B",
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	founder := activeFounder()

	fx.founderRepo.On("FindByEmail", ctx, "a@b.com").Return(founder, nil)
	fx.hasher.On("Check", "secret123", founder.PasswordHash).Return(true)
	fx.tokenSvc.On("IssueToken", founder.ID).Return("signed_token", nil)
	fx.tokenSvc.On("GetAccessTokenDuration").Return(30 * time.Minute)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "A@B.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.AccessToken)
	assert.Equal(t, 30*time.Minute, output.ExpiresIn)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.founderRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrFounderNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "secret123"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	founder := activeFounder()

	fx.founderRepo.On("FindByEmail", ctx, "a@b.com").Return(founder, nil)
	fx.hasher.On("Check", "wrong", founder.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	// Account enumeration guard: both failure modes resolve to the exact
	// same domain error.
	unknown := createTestAuthService(t)
	unknown.founderRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, repository.ErrFounderNotFound)
	_, errUnknown := unknown.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com", Password: "x"})

	wrong := createTestAuthService(t)
	founder := activeFounder()
	wrong.founderRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(founder, nil)
	wrong.hasher.On("Check", "x", founder.PasswordHash).Return(false)
	_, errWrong := wrong.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com", Password: "x"})

	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, errors.Cause(errUnknown), errors.Cause(errWrong))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	founder := activeFounder()
	founder.IsActive = false

	fx.founderRepo.On("FindByEmail", ctx, "a@b.com").Return(founder, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "secret123"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
	// The password is not even checked for a deactivated account.
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_Logout_NeverFails(t *testing.T) {
	fx := createTestAuthService(t)

	assert.NoError(t, fx.service.Logout(context.Background()))
}
