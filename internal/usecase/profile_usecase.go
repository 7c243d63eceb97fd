package usecase

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// UpdateProfileInput carries the six profile fields plus the user ID.
// Pointer fields distinguish "absent" from zero values so the handler can
// reject incomplete requests.
type UpdateProfileInput struct {
	UserID        string   `json:"id" validate:"required"`
	Age           *int     `json:"age" validate:"required"`
	WeightKg      *float64 `json:"weightKg" validate:"required"`
	HeightCm      *float64 `json:"heightCm" validate:"required"`
	IsMale        *bool    `json:"isMale" validate:"required"`
	ActivityLevel string   `json:"activityLevel" validate:"required"`
	Objective     string   `json:"objective" validate:"required"`
}

// UpdateProfileOutput reports the recomputed daily calorie target.
type UpdateProfileOutput struct {
	DailyCalorieTarget float64 `json:"dailyCalorieTarget"`
}

// ProfileUsecase is the energy-balance engine: it owns the profile fields
// and the BMR-derived daily calorie target.
type ProfileUsecase interface {
	// UpdateProfile overwrites the profile fields and recomputes the
	// calorie target. Both writes must succeed for the operation to
	// report success.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// ComputeAndStoreDailyCalorieTarget evaluates the calorie formula and
	// persists the result as the user's target. The store is not touched
	// when the computation fails.
	ComputeAndStoreDailyCalorieTarget(ctx context.Context, userID string, weightKg, heightCm float64, age int, isMale bool, level entity.ActivityLevel, objective entity.Objective) (float64, error)

	// GetProfile returns the full user record including profile fields.
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}
