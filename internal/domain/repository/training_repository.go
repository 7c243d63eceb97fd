package repository

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// TrainingRepository manages the global training catalog. The derived
// totalCalories field is recomputed by the usecase layer and must never be
// written to the store.
type TrainingRepository interface {
	// Add persists a new training and returns the generated ID.
	Add(ctx context.Context, training *entity.Training) (string, error)

	// List returns every training in the catalog.
	List(ctx context.Context) ([]*entity.Training, error)

	// ListByType returns trainings filtered by objective type.
	ListByType(ctx context.Context, trainingType entity.Objective) ([]*entity.Training, error)

	// Delete removes a training by ID; idempotent.
	Delete(ctx context.Context, id string) error
}
