package impl

import (
	"context"
	"testing"
	"time"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"
	mockRepo "nutrifit/internal/mocks/repository"
	"nutrifit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dailyEntryServiceFixtures holds all test dependencies for daily entry
// service tests.
type dailyEntryServiceFixtures struct {
	service   usecase.DailyEntryUsecase
	entryRepo *mockRepo.MockDailyEntryRepository
	now       time.Time
}

func createTestDailyEntryService(t *testing.T) dailyEntryServiceFixtures {
	t.Helper()

	entryRepo := &mockRepo.MockDailyEntryRepository{}
	service := NewDailyEntryService(entryRepo, newDiscardLogger())

	now := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	service.(*dailyEntryService).now = func() time.Time { return now }

	return dailyEntryServiceFixtures{
		service:   service,
		entryRepo: entryRepo,
		now:       now,
	}
}

func TestDailyEntryService_CreateDailyEntry_Success(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("Create", ctx, "user-1", "2024-05-17", mock.MatchedBy(func(e *entity.DailyEntry) bool {
		return e.Calories == 1800 && e.Steps == 4000 && e.CreatedAt.Equal(fx.now)
	})).Return(nil)

	err := fx.service.CreateDailyEntry(ctx, "user-1", "2024-05-17", &usecase.CreateDailyEntryInput{
		Calories: 1800,
		Steps:    4000,
	})

	require.NoError(t, err)
	fx.entryRepo.AssertExpectations(t)
}

func TestDailyEntryService_CreateDailyEntry_Duplicate(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("Create", ctx, "user-1", "2024-05-17", mock.Anything).
		Return(repository.ErrDailyEntryExists)

	err := fx.service.CreateDailyEntry(ctx, "user-1", "2024-05-17", &usecase.CreateDailyEntryInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDailyEntryExists)
}

func TestDailyEntryService_CreateDailyEntry_BadDate(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	err := fx.service.CreateDailyEntry(ctx, "user-1", "17/05/2024", &usecase.CreateDailyEntryInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.entryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyEntryService_GetDailyEntry_Existing(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	stored := &entity.DailyEntry{Calories: 1500, Steps: 8000, CaloriesBurned: 300}
	meals := []entity.Meal{{ID: "meal-1", Name: "Oatmeal", Calories: 350}}

	fx.entryRepo.On("Get", ctx, "user-1", "2024-05-17").Return(stored, nil)
	fx.entryRepo.On("ListMeals", ctx, "user-1", "2024-05-17").Return(meals, nil)

	entry, err := fx.service.GetDailyEntry(ctx, "user-1", "2024-05-17")

	require.NoError(t, err)
	assert.Equal(t, "2024-05-17", entry.Date)
	assert.Equal(t, meals, entry.Meals)
	assert.InDelta(t, 1500, entry.Calories, 1e-9)
}

func TestDailyEntryService_GetDailyEntry_LazilyCreatesAbsentEntry(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("Get", ctx, "user-1", "2024-05-17").
		Return(nil, repository.ErrDailyEntryNotFound)
	fx.entryRepo.On("Create", ctx, "user-1", "2024-05-17", mock.MatchedBy(func(e *entity.DailyEntry) bool {
		return e.Calories == 0 && e.Steps == 0 && e.CaloriesBurned == 0
	})).Return(nil)

	entry, err := fx.service.GetDailyEntry(ctx, "user-1", "2024-05-17")

	require.NoError(t, err)
	assert.Equal(t, "2024-05-17", entry.Date)
	assert.Zero(t, entry.Calories)
	assert.NotNil(t, entry.Meals)
	assert.Empty(t, entry.Meals)
	fx.entryRepo.AssertExpectations(t)
}

func TestDailyEntryService_GetDailyEntry_LostCreateRaceIsFine(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("Get", ctx, "user-1", "2024-05-17").
		Return(nil, repository.ErrDailyEntryNotFound)
	fx.entryRepo.On("Create", ctx, "user-1", "2024-05-17", mock.Anything).
		Return(repository.ErrDailyEntryExists)

	entry, err := fx.service.GetDailyEntry(ctx, "user-1", "2024-05-17")

	require.NoError(t, err)
	assert.Equal(t, "2024-05-17", entry.Date)
}

func TestDailyEntryService_UpdateDailyEntry_NeverCreates(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	calories := 2100.0
	fx.entryRepo.On("Update", ctx, "user-1", "2024-05-17", mock.MatchedBy(func(u *repository.DailyEntryUpdate) bool {
		return u.Calories != nil && *u.Calories == 2100 && u.Steps == nil
	})).Return(repository.ErrDailyEntryNotFound)

	err := fx.service.UpdateDailyEntry(ctx, "user-1", "2024-05-17", &usecase.UpdateDailyEntryInput{
		Calories: &calories,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDailyEntryNotFound)
	fx.entryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyEntryService_AddCaloriesBurn_DelegatesAtomicIncrement(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("AddCaloriesBurned", ctx, "user-1", "2024-05-17", 250.0).Return(nil)

	err := fx.service.AddCaloriesBurn(ctx, "user-1", "2024-05-17", 250)

	require.NoError(t, err)
	fx.entryRepo.AssertExpectations(t)
}

func TestDailyEntryService_AddCaloriesBurn_AbsentEntry(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("AddCaloriesBurned", ctx, "user-1", "2024-05-17", 250.0).
		Return(repository.ErrDailyEntryNotFound)

	err := fx.service.AddCaloriesBurn(ctx, "user-1", "2024-05-17", 250)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDailyEntryNotFound)
}

func TestDailyEntryService_AddMeal_ServerStampsCreatedAt(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("AddMeal", ctx, "user-1", "2024-05-17", mock.MatchedBy(func(m *entity.Meal) bool {
		return m.Name == "Salad" && m.CreatedAt.Equal(fx.now)
	})).Return("meal-1", nil)

	err := fx.service.AddMeal(ctx, "user-1", "2024-05-17", &usecase.AddMealInput{
		Name:     "Salad",
		Calories: 220,
		Quantity: 300,
	})

	require.NoError(t, err)
	fx.entryRepo.AssertExpectations(t)
}

func TestDailyEntryService_DeleteMeal(t *testing.T) {
	fx := createTestDailyEntryService(t)
	ctx := context.Background()

	fx.entryRepo.On("DeleteMeal", ctx, "user-1", "2024-05-17", "meal-1").Return(nil)

	err := fx.service.DeleteMeal(ctx, "user-1", "2024-05-17", "meal-1")

	require.NoError(t, err)
}
