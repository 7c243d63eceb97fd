package impl

import (
	"context"
	"log/slog"

	deliverycontext "nutrifit/internal/delivery/context"
	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/service"
	"nutrifit/internal/usecase"
)

// suggestionService implements the SuggestionUsecase interface. The agent
// does the heavy lifting; this layer only maps failures to the opaque
// internal error the API contract requires.
type suggestionService struct {
	agent  service.MealAgent
	logger *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(agent service.MealAgent, logger *slog.Logger) usecase.SuggestionUsecase {
	return &suggestionService{
		agent:  agent,
		logger: logger,
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecommendDish asks the agent for a dish suggestion.
func (srv *suggestionService) RecommendDish(ctx context.Context, input *usecase.RecommendDishInput) (*entity.DishInfo, error) {
	dish, err := srv.agent.SuggestDish(ctx, input.Ingredients)
	if err != nil {
		srv.log(ctx).Error("Dish suggestion failed", slog.Any("error", err))

		return nil, domainerrors.ErrMalformedAgentResponse.WrapMessage("dish suggestion failed")
	}

	return dish, nil
}

// EstimateCalories asks the agent for a calorie estimate.
func (srv *suggestionService) EstimateCalories(ctx context.Context, input *usecase.EstimateCaloriesInput) (*entity.CaloriesInfo, error) {
	info, err := srv.agent.EstimateCalories(ctx, input.Food, input.Quantity)
	if err != nil {
		srv.log(ctx).Error("Calorie estimate failed",
			slog.String("food", input.Food), slog.Any("error", err))

		return nil, domainerrors.ErrMalformedAgentResponse.WrapMessage("calorie estimate failed")
	}

	return info, nil
}
