package repository

import (
	"context"

	"nutrifit/internal/domain/entity"
	"nutrifit/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockDailyEntryRepository mocks repository.DailyEntryRepository.
type MockDailyEntryRepository struct {
	mock.Mock
}

func (m *MockDailyEntryRepository) Create(ctx context.Context, userID, date string, entry *entity.DailyEntry) error {
	args := m.Called(ctx, userID, date, entry)

	return args.Error(0)
}

func (m *MockDailyEntryRepository) Get(ctx context.Context, userID, date string) (*entity.DailyEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.DailyEntry), args.Error(1)
}

func (m *MockDailyEntryRepository) List(ctx context.Context, userID string) ([]*entity.DailyEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.DailyEntry), args.Error(1)
}

func (m *MockDailyEntryRepository) Update(ctx context.Context, userID, date string, update *repository.DailyEntryUpdate) error {
	args := m.Called(ctx, userID, date, update)

	return args.Error(0)
}

func (m *MockDailyEntryRepository) Delete(ctx context.Context, userID, date string) error {
	args := m.Called(ctx, userID, date)

	return args.Error(0)
}

func (m *MockDailyEntryRepository) AddCaloriesBurned(ctx context.Context, userID, date string, amount float64) error {
	args := m.Called(ctx, userID, date, amount)

	return args.Error(0)
}

func (m *MockDailyEntryRepository) AddMeal(ctx context.Context, userID, date string, meal *entity.Meal) (string, error) {
	args := m.Called(ctx, userID, date, meal)

	return args.String(0), args.Error(1)
}

func (m *MockDailyEntryRepository) ListMeals(ctx context.Context, userID, date string) ([]entity.Meal, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Meal), args.Error(1)
}

func (m *MockDailyEntryRepository) DeleteMeal(ctx context.Context, userID, date, mealID string) error {
	args := m.Called(ctx, userID, date, mealID)

	return args.Error(0)
}
