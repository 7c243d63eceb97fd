package repository

import (
	"context"

	"nutrifit/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTrainingRepository mocks repository.TrainingRepository.
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) Add(ctx context.Context, training *entity.Training) (string, error) {
	args := m.Called(ctx, training)

	return args.String(0), args.Error(1)
}

func (m *MockTrainingRepository) List(ctx context.Context) ([]*entity.Training, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Training), args.Error(1)
}

func (m *MockTrainingRepository) ListByType(ctx context.Context, trainingType entity.Objective) ([]*entity.Training, error) {
	args := m.Called(ctx, trainingType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Training), args.Error(1)
}

func (m *MockTrainingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
