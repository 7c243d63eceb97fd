package usecase

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// AddTrainingInput defines a training with its exercises. Every exercise
// must carry all six fields for the training to be accepted.
type AddTrainingInput struct {
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Type        string               `json:"type" validate:"required,oneof=WEIGHTLOSS WEIGHTGAIN"`
	Exercises   []AddExerciseInput   `json:"exercises" validate:"required,min=1,dive"`
}

// AddExerciseInput is one exercise inside a training definition.
type AddExerciseInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Muscles     []string `json:"muscles" validate:"required,min=1"`
	Series      int      `json:"series" validate:"required"`
	Repetitions int      `json:"repetitions" validate:"required"`
	Calories    float64  `json:"calories" validate:"required"`
}

// AddTrainingOutput echoes the stored training with its generated ID.
type AddTrainingOutput struct {
	ID       string           `json:"id"`
	Training *entity.Training `json:"training"`
}

// TrainingUsecase is the workout catalog. The derived totalCalories field
// is recomputed on every read and never persisted.
type TrainingUsecase interface {
	AddTraining(ctx context.Context, input *AddTrainingInput) (*AddTrainingOutput, error)
	ListTrainings(ctx context.Context) ([]*entity.Training, error)
	ListTrainingsByType(ctx context.Context, trainingType string) ([]*entity.Training, error)
	DeleteTraining(ctx context.Context, id string) error
}
