package firestore

import (
	"context"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// trainingRepository implements repository.TrainingRepository on Firestore.
// The catalog is global, not scoped to a user.
type trainingRepository struct {
	client *firestore.Client
}

// NewTrainingRepository is the constructor for trainingRepository.
func NewTrainingRepository(client *firestore.Client) repository.TrainingRepository {
	return &trainingRepository{client: client}
}

func (repo *trainingRepository) trainings() *firestore.CollectionRef {
	return repo.client.Collection(trainingsCollection)
}

// Add persists the training without its derived total and returns the
// generated ID.
func (repo *trainingRepository) Add(ctx context.Context, training *entity.Training) (string, error) {
	ref, _, err := repo.trainings().Add(ctx, fromTrainingEntity(training))
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to add training")
	}

	training.ID = ref.ID

	return ref.ID, nil
}

// List returns every training in the catalog.
func (repo *trainingRepository) List(ctx context.Context) ([]*entity.Training, error) {
	return repo.collect(repo.trainings().Documents(ctx))
}

// ListByType returns trainings whose objective type matches.
func (repo *trainingRepository) ListByType(ctx context.Context, trainingType entity.Objective) ([]*entity.Training, error) {
	return repo.collect(repo.trainings().Where("type", "==", string(trainingType)).Documents(ctx))
}

func (repo *trainingRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Training, error) {
	snaps, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainings")
	}

	trainings := make([]*entity.Training, 0, len(snaps))
	for _, snap := range snaps {
		var doc trainingDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode training")
		}
		trainings = append(trainings, toTrainingEntity(snap.Ref.ID, &doc))
	}

	return trainings, nil
}

// Delete removes a training by ID; deleting an absent training succeeds.
func (repo *trainingRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.trainings().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete training")
	}

	return nil
}
