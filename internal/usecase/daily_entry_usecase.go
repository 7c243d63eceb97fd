package usecase

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// CreateDailyEntryInput seeds a new entry; both counters default to zero.
type CreateDailyEntryInput struct {
	Calories float64 `json:"calories"`
	Steps    float64 `json:"steps"`
}

// UpdateDailyEntryInput is a partial merge; nil fields stay untouched.
type UpdateDailyEntryInput struct {
	Calories *float64 `json:"calories"`
	Steps    *float64 `json:"steps"`
}

// AddMealInput describes a meal to append to an entry. Any client-supplied
// timestamp is ignored; CreatedAt is stamped server-side.
type AddMealInput struct {
	Name     string  `json:"name" validate:"required"`
	Calories float64 `json:"calories"`
	Quantity float64 `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// AddCaloriesBurnInput carries the burn amount to accumulate.
type AddCaloriesBurnInput struct {
	CaloriesBurnToAdd float64 `json:"caloriesBurnToAdd" validate:"required"`
}

// DailyEntryUsecase manages the per-day nutrition/activity ledger.
type DailyEntryUsecase interface {
	// CreateDailyEntry creates the entry at (userID, date); a second
	// creation for the same key fails with a conflict.
	CreateDailyEntry(ctx context.Context, userID, date string, input *CreateDailyEntryInput) error

	// GetDailyEntry applies the read-or-default-create policy: an absent
	// entry is persisted zeroed and returned with an empty meal list.
	GetDailyEntry(ctx context.Context, userID, date string) (*entity.DailyEntry, error)

	// ListDailyEntries returns all entries with materialized meals.
	ListDailyEntries(ctx context.Context, userID string) ([]*entity.DailyEntry, error)

	// UpdateDailyEntry merges the supplied fields; it never creates.
	UpdateDailyEntry(ctx context.Context, userID, date string, input *UpdateDailyEntryInput) error

	// DeleteDailyEntry removes the entry; idempotent.
	DeleteDailyEntry(ctx context.Context, userID, date string) error

	// AddCaloriesBurn accumulates burned calories atomically.
	AddCaloriesBurn(ctx context.Context, userID, date string, amount float64) error

	// AddMeal appends a meal with a server-stamped creation time.
	AddMeal(ctx context.Context, userID, date string, input *AddMealInput) error

	// ListMeals returns the meals logged under the entry.
	ListMeals(ctx context.Context, userID, date string) ([]entity.Meal, error)

	// DeleteMeal removes one meal by ID; idempotent.
	DeleteMeal(ctx context.Context, userID, date, mealID string) error
}
