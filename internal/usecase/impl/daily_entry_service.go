package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nutrifit/internal/delivery/context"
	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"
	"nutrifit/internal/usecase"

	"github.com/pkg/errors"
)

// dailyEntryService implements the DailyEntryUsecase interface.
type dailyEntryService struct {
	entryRepo repository.DailyEntryRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewDailyEntryService is the constructor for dailyEntryService.
func NewDailyEntryService(entryRepo repository.DailyEntryRepository, logger *slog.Logger) usecase.DailyEntryUsecase {
	return &dailyEntryService{
		entryRepo: entryRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *dailyEntryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("date must be YYYY-MM-DD")
	}

	return nil
}

// CreateDailyEntry creates the entry at (userID, date). The underlying
// store write is atomic, so a concurrent duplicate surfaces as a conflict
// rather than an overwrite.
func (srv *dailyEntryService) CreateDailyEntry(ctx context.Context, userID, date string, input *usecase.CreateDailyEntryInput) error {
	if err := validateDate(date); err != nil {
		return err
	}

	entry := &entity.DailyEntry{
		Calories:  input.Calories,
		Steps:     input.Steps,
		CreatedAt: srv.now(),
	}

	if err := srv.entryRepo.Create(ctx, userID, date, entry); err != nil {
		if errors.Is(err, repository.ErrDailyEntryExists) {
			return domainerrors.ErrDailyEntryExists.WrapMessage("duplicate entry for " + date)
		}

		return errors.Wrap(err, "failed to create daily entry")
	}

	srv.log(ctx).Debug("Daily entry created",
		slog.String("userID", userID), slog.String("date", date))

	return nil
}

// GetDailyEntry applies the read-or-default-create policy: a missing entry
// is persisted zeroed and a zero-valued entry with an empty meal list is
// returned. This is deliberately not a 404.
func (srv *dailyEntryService) GetDailyEntry(ctx context.Context, userID, date string) (*entity.DailyEntry, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	entry, err := srv.entryRepo.Get(ctx, userID, date)
	if errors.Is(err, repository.ErrDailyEntryNotFound) {
		zeroed := &entity.DailyEntry{Date: date, CreatedAt: srv.now()}
		if err := srv.entryRepo.Create(ctx, userID, date, zeroed); err != nil &&
			!errors.Is(err, repository.ErrDailyEntryExists) {
			return nil, errors.Wrap(err, "failed to lazily create daily entry")
		}

		return &entity.DailyEntry{Date: date, Meals: []entity.Meal{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get daily entry")
	}

	meals, err := srv.entryRepo.ListMeals(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals for entry")
	}

	entry.Date = date
	entry.Meals = meals

	return entry, nil
}

// ListDailyEntries returns all of the user's entries with their meals.
func (srv *dailyEntryService) ListDailyEntries(ctx context.Context, userID string) ([]*entity.DailyEntry, error) {
	entries, err := srv.entryRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily entries")
	}

	return entries, nil
}

// UpdateDailyEntry merges only the supplied fields. Unlike GetDailyEntry
// it never creates: updating an absent entry is a not-found error.
func (srv *dailyEntryService) UpdateDailyEntry(ctx context.Context, userID, date string, input *usecase.UpdateDailyEntryInput) error {
	if err := validateDate(date); err != nil {
		return err
	}

	update := &repository.DailyEntryUpdate{
		Calories: input.Calories,
		Steps:    input.Steps,
	}

	if err := srv.entryRepo.Update(ctx, userID, date, update); err != nil {
		if errors.Is(err, repository.ErrDailyEntryNotFound) {
			return domainerrors.ErrDailyEntryNotFound.WrapMessage("update for absent entry " + date)
		}

		return errors.Wrap(err, "failed to update daily entry")
	}

	return nil
}

// DeleteDailyEntry removes the entry unconditionally.
func (srv *dailyEntryService) DeleteDailyEntry(ctx context.Context, userID, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}

	if err := srv.entryRepo.Delete(ctx, userID, date); err != nil {
		return errors.Wrap(err, "failed to delete daily entry")
	}

	return nil
}

// AddCaloriesBurn accumulates burned calories through the store's atomic
// increment, so concurrent burn reports cannot lose updates.
func (srv *dailyEntryService) AddCaloriesBurn(ctx context.Context, userID, date string, amount float64) error {
	if err := validateDate(date); err != nil {
		return err
	}

	if err := srv.entryRepo.AddCaloriesBurned(ctx, userID, date, amount); err != nil {
		if errors.Is(err, repository.ErrDailyEntryNotFound) {
			return domainerrors.ErrDailyEntryNotFound.WrapMessage("burn report for absent entry " + date)
		}

		return errors.Wrap(err, "failed to add burned calories")
	}

	srv.log(ctx).Debug("Burned calories added",
		slog.String("userID", userID), slog.String("date", date), slog.Float64("amount", amount))

	return nil
}

// AddMeal appends a meal to the entry. CreatedAt is stamped here; any
// client-supplied timestamp never reaches the store.
func (srv *dailyEntryService) AddMeal(ctx context.Context, userID, date string, input *usecase.AddMealInput) error {
	if err := validateDate(date); err != nil {
		return err
	}

	meal := &entity.Meal{
		Name:      input.Name,
		Calories:  input.Calories,
		Quantity:  input.Quantity,
		ImageURL:  input.ImageURL,
		CreatedAt: srv.now(),
	}

	if _, err := srv.entryRepo.AddMeal(ctx, userID, date, meal); err != nil {
		return errors.Wrap(err, "failed to add meal")
	}

	return nil
}

// ListMeals returns every meal logged under the entry.
func (srv *dailyEntryService) ListMeals(ctx context.Context, userID, date string) ([]entity.Meal, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	meals, err := srv.entryRepo.ListMeals(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	return meals, nil
}

// DeleteMeal removes a single meal by ID.
func (srv *dailyEntryService) DeleteMeal(ctx context.Context, userID, date, mealID string) error {
	if err := validateDate(date); err != nil {
		return err
	}

	if err := srv.entryRepo.DeleteMeal(ctx, userID, date, mealID); err != nil {
		return errors.Wrap(err, "failed to delete meal")
	}

	return nil
}
