package service

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// MealAgent asks an external reasoning agent for structured dish and
// calorie suggestions. Implementations are responsible for strict parsing
// of the agent output; a response that is not valid JSON or is missing
// required fields must surface as a malformed-response error.
type MealAgent interface {
	// SuggestDish proposes a dish using the given ingredients.
	SuggestDish(ctx context.Context, ingredients []string) (*entity.DishInfo, error)

	// EstimateCalories estimates calories for a food name and quantity.
	EstimateCalories(ctx context.Context, food string, quantity float64) (*entity.CaloriesInfo, error)
}
