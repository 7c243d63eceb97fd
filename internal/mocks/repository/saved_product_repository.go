package repository

import (
	"context"

	"nutrifit/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSavedProductRepository mocks repository.SavedProductRepository.
type MockSavedProductRepository struct {
	mock.Mock
}

func (m *MockSavedProductRepository) Add(ctx context.Context, userID string, product *entity.ProductData) (string, error) {
	args := m.Called(ctx, userID, product)

	return args.String(0), args.Error(1)
}

func (m *MockSavedProductRepository) List(ctx context.Context, userID string) ([]*entity.ProductData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ProductData), args.Error(1)
}

func (m *MockSavedProductRepository) Delete(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)

	return args.Error(0)
}
