package impl

import (
	"context"
	"log/slog"

	deliverycontext "nutrifit/internal/delivery/context"
	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"
	"nutrifit/internal/usecase"

	"github.com/pkg/errors"
)

// trainingService implements the TrainingUsecase interface.
type trainingService struct {
	trainingRepo repository.TrainingRepository
	logger       *slog.Logger
}

// NewTrainingService is the constructor for trainingService.
func NewTrainingService(trainingRepo repository.TrainingRepository, logger *slog.Logger) usecase.TrainingUsecase {
	return &trainingService{
		trainingRepo: trainingRepo,
		logger:       logger,
	}
}

func (srv *trainingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddTraining validates and persists a training definition.
func (srv *trainingService) AddTraining(ctx context.Context, input *usecase.AddTrainingInput) (*usecase.AddTrainingOutput, error) {
	trainingType := entity.Objective(input.Type)
	if !trainingType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown training type " + input.Type)
	}

	exercises := make([]entity.Exercise, 0, len(input.Exercises))
	for _, ex := range input.Exercises {
		exercises = append(exercises, entity.Exercise{
			Name:        ex.Name,
			Description: ex.Description,
			Muscles:     ex.Muscles,
			Series:      ex.Series,
			Repetitions: ex.Repetitions,
			Calories:    ex.Calories,
		})
	}

	training := &entity.Training{
		Name:        input.Name,
		Description: input.Description,
		Type:        trainingType,
		Exercises:   exercises,
	}

	id, err := srv.trainingRepo.Add(ctx, training)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add training")
	}

	srv.log(ctx).Debug("Training added", slog.String("trainingID", id))

	training.ID = id
	training.TotalCalories = training.ComputeTotalCalories()

	return &usecase.AddTrainingOutput{ID: id, Training: training}, nil
}

// ListTrainings returns the full catalog with derived totals.
func (srv *trainingService) ListTrainings(ctx context.Context) ([]*entity.Training, error) {
	trainings, err := srv.trainingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainings")
	}

	return withDerivedTotals(trainings), nil
}

// ListTrainingsByType returns the catalog filtered by objective type.
func (srv *trainingService) ListTrainingsByType(ctx context.Context, trainingType string) ([]*entity.Training, error) {
	typ := entity.Objective(trainingType)
	if !typ.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown training type " + trainingType)
	}

	trainings, err := srv.trainingRepo.ListByType(ctx, typ)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainings by type")
	}

	return withDerivedTotals(trainings), nil
}

// DeleteTraining removes a training by ID.
func (srv *trainingService) DeleteTraining(ctx context.Context, id string) error {
	if err := srv.trainingRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete training")
	}

	return nil
}

// withDerivedTotals recomputes totalCalories on every read; the value is
// never trusted from the store.
func withDerivedTotals(trainings []*entity.Training) []*entity.Training {
	for _, t := range trainings {
		t.TotalCalories = t.ComputeTotalCalories()
	}

	return trainings
}
