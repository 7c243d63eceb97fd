package repository

import (
	"context"

	"nutrifit/internal/domain/entity"
	"nutrifit/internal/errors"
)

// Sentinel errors for the daily entry collection.
var (
	// ErrDailyEntryExists is returned by Create when an entry already
	// occupies the (user, date) key.
	ErrDailyEntryExists = errors.New("daily entry already exists")

	// ErrDailyEntryNotFound is returned by Get and Update when the key
	// holds no entry.
	ErrDailyEntryNotFound = errors.New("daily entry not found")
)

// DailyEntryUpdate carries a partial merge for an entry. Nil fields are
// left untouched in the store.
type DailyEntryUpdate struct {
	Calories *float64
	Steps    *float64
}

// DailyEntryRepository manages the per-user, per-date entry documents and
// their nested meal collections.
type DailyEntryRepository interface {
	// Create writes a new entry at (userID, date). The write is atomic:
	// it fails with ErrDailyEntryExists rather than overwriting.
	Create(ctx context.Context, userID, date string, entry *entity.DailyEntry) error

	// Get returns the entry without its meals, or ErrDailyEntryNotFound.
	Get(ctx context.Context, userID, date string) (*entity.DailyEntry, error)

	// List returns all entries for the user, each with meals materialized.
	List(ctx context.Context, userID string) ([]*entity.DailyEntry, error)

	// Update merges only the supplied fields. It never creates.
	Update(ctx context.Context, userID, date string, update *DailyEntryUpdate) error

	// Delete removes the entry unconditionally; deleting an absent entry
	// is not an error.
	Delete(ctx context.Context, userID, date string) error

	// AddCaloriesBurned atomically increments the burned-calories field,
	// so concurrent burn reports never lose updates.
	AddCaloriesBurned(ctx context.Context, userID, date string, amount float64) error

	// AddMeal appends a meal to the entry's meal collection and returns
	// the generated meal ID.
	AddMeal(ctx context.Context, userID, date string, meal *entity.Meal) (string, error)

	// ListMeals returns every meal logged under the entry.
	ListMeals(ctx context.Context, userID, date string) ([]entity.Meal, error)

	// DeleteMeal removes a single meal by ID; idempotent.
	DeleteMeal(ctx context.Context, userID, date, mealID string) error
}
