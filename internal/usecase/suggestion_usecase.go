package usecase

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// RecommendDishInput lists the ingredients available to the user.
type RecommendDishInput struct {
	Ingredients []string `json:"aliments" validate:"required,min=1"`
}

// EstimateCaloriesInput names a food and the consumed quantity in grams.
type EstimateCaloriesInput struct {
	Food     string  `json:"Food" validate:"required"`
	Quantity float64 `json:"Quantity" validate:"required,gt=0"`
}

// SuggestionUsecase exposes the AI-backed dish and calorie suggestions.
type SuggestionUsecase interface {
	// RecommendDish asks the agent for a dish built from the ingredients.
	RecommendDish(ctx context.Context, input *RecommendDishInput) (*entity.DishInfo, error)

	// EstimateCalories asks the agent for a calorie estimate.
	EstimateCalories(ctx context.Context, input *EstimateCaloriesInput) (*entity.CaloriesInfo, error)
}
