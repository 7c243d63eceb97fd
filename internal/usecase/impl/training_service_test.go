package impl

import (
	"context"
	"testing"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	mockRepo "nutrifit/internal/mocks/repository"
	"nutrifit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTrainingService(t *testing.T) (usecase.TrainingUsecase, *mockRepo.MockTrainingRepository) {
	t.Helper()

	trainingRepo := &mockRepo.MockTrainingRepository{}

	return NewTrainingService(trainingRepo, newDiscardLogger()), trainingRepo
}

func addTrainingInput() *usecase.AddTrainingInput {
	return &usecase.AddTrainingInput{
		Name:        "Upper body",
		Description: "Push focused session",
		Type:        string(entity.ObjectiveWeightGain),
		Exercises: []usecase.AddExerciseInput{
			{Name: "Bench press", Description: "Barbell", Muscles: []string{"chest"}, Series: 4, Repetitions: 8, Calories: 120},
			{Name: "Overhead press", Description: "Dumbbell", Muscles: []string{"shoulders"}, Series: 3, Repetitions: 10, Calories: 90},
		},
	}
}

func TestTrainingService_AddTraining_Success(t *testing.T) {
	service, trainingRepo := createTestTrainingService(t)
	ctx := context.Background()

	trainingRepo.On("Add", ctx, mock.MatchedBy(func(tr *entity.Training) bool {
		// The derived total is not set on the way in.
		return tr.Name == "Upper body" && tr.TotalCalories == 0 && len(tr.Exercises) == 2
	})).Return("training-1", nil)

	output, err := service.AddTraining(ctx, addTrainingInput())

	require.NoError(t, err)
	assert.Equal(t, "training-1", output.ID)
	assert.InDelta(t, 210, output.Training.TotalCalories, 1e-9)
}

func TestTrainingService_AddTraining_UnknownType(t *testing.T) {
	service, trainingRepo := createTestTrainingService(t)
	ctx := context.Background()

	input := addTrainingInput()
	input.Type = "ENDURANCE"

	_, err := service.AddTraining(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	trainingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestTrainingService_ListTrainings_RecomputesTotals(t *testing.T) {
	service, trainingRepo := createTestTrainingService(t)
	ctx := context.Background()

	stored := []*entity.Training{
		{
			ID:   "training-1",
			Name: "Legs",
			Type: entity.ObjectiveWeightLoss,
			Exercises: []entity.Exercise{
				{Name: "Squat", Calories: 150},
				{Name: "Lunges", Calories: 100},
			},
		},
	}

	trainingRepo.On("List", ctx).Return(stored, nil)

	trainings, err := service.ListTrainings(ctx)

	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.InDelta(t, 250, trainings[0].TotalCalories, 1e-9)
}

func TestTrainingService_ListTrainingsByType(t *testing.T) {
	service, trainingRepo := createTestTrainingService(t)
	ctx := context.Background()

	trainingRepo.On("ListByType", ctx, entity.ObjectiveWeightLoss).
		Return([]*entity.Training{}, nil)

	trainings, err := service.ListTrainingsByType(ctx, "WEIGHTLOSS")

	require.NoError(t, err)
	assert.Empty(t, trainings)
}

func TestTrainingService_ListTrainingsByType_UnknownType(t *testing.T) {
	service, trainingRepo := createTestTrainingService(t)
	ctx := context.Background()

	_, err := service.ListTrainingsByType(ctx, "CARDIO")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	trainingRepo.AssertNotCalled(t, "ListByType", mock.Anything, mock.Anything)
}

func TestTrainingService_DeleteTraining(t *testing.T) {
	service, trainingRepo := createTestTrainingService(t)
	ctx := context.Background()

	trainingRepo.On("Delete", ctx, "training-1").Return(nil)

	require.NoError(t, service.DeleteTraining(ctx, "training-1"))
}
