// Package service contains hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"context"

	"nutrifit/internal/domain/entity"
	"nutrifit/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hashed string) bool {
	args := m.Called(password, hashed)

	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(userID, userName string) (string, error) {
	args := m.Called(userID, userName)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

// MockFoodCatalog mocks service.FoodCatalog.
type MockFoodCatalog struct {
	mock.Mock
}

func (m *MockFoodCatalog) FetchProduct(ctx context.Context, productID string) (*entity.ProductData, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ProductData), args.Error(1)
}

// MockMealAgent mocks service.MealAgent.
type MockMealAgent struct {
	mock.Mock
}

func (m *MockMealAgent) SuggestDish(ctx context.Context, ingredients []string) (*entity.DishInfo, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.DishInfo), args.Error(1)
}

func (m *MockMealAgent) EstimateCalories(ctx context.Context, food string, quantity float64) (*entity.CaloriesInfo, error) {
	args := m.Called(ctx, food, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CaloriesInfo), args.Error(1)
}
