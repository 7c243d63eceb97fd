package impl

import (
	"context"
	"testing"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"
	mockRepo "nutrifit/internal/mocks/repository"
	"nutrifit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	service := NewProfileService(userRepo, newDiscardLogger())

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func updateProfileInput() *usecase.UpdateProfileInput {
	age := 30
	weight := 70.0
	height := 175.0
	isMale := true

	return &usecase.UpdateProfileInput{
		UserID:        "user-1",
		Age:           &age,
		WeightKg:      &weight,
		HeightCm:      &height,
		IsMale:        &isMale,
		ActivityLevel: string(entity.ActivityActive),
		Objective:     string(entity.ObjectiveWeightGain),
	}
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := updateProfileInput()

	fx.userRepo.On("UpdateProfile", ctx, "user-1", mock.MatchedBy(func(p *entity.Profile) bool {
		return p.Age == 30 && p.WeightKg == 70 && p.HeightCm == 175 && p.IsMale &&
			p.ActivityLevel == entity.ActivityActive && p.Objective == entity.ObjectiveWeightGain
	})).Return(nil)
	fx.userRepo.On("SetDailyCalorieTarget", ctx, "user-1", mock.AnythingOfType("float64")).Return(nil)

	output, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 2755.5625, output.DailyCalorieTarget, 1e-9)
	fx.userRepo.AssertExpectations(t)
}

func TestProfileService_UpdateProfile_UnknownActivityLevel(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	input := updateProfileInput()
	input.ActivityLevel = "LAZY"

	_, err := fx.service.UpdateProfile(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "SetDailyCalorieTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := updateProfileInput()

	fx.userRepo.On("UpdateProfile", ctx, "user-1", mock.Anything).
		Return(repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.userRepo.AssertNotCalled(t, "SetDailyCalorieTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_ComputeAndStore_NoWriteOnComputeFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	_, err := fx.service.ComputeAndStoreDailyCalorieTarget(ctx,
		"user-1", 70, 175, 30, true, entity.ActivityLevel("COUCH"), entity.ObjectiveWeightGain)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.userRepo.AssertNotCalled(t, "SetDailyCalorieTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expected := &entity.User{
		ID:    "user-1",
		Name:  "Jordan Example",
		Email: "jordan@example.com",
		Profile: &entity.Profile{
			Age:           30,
			WeightKg:      70,
			ActivityLevel: entity.ActivityActive,
			Objective:     entity.ObjectiveWeightGain,
		},
	}

	fx.userRepo.On("FindByID", ctx, "user-1").Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
