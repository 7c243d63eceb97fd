package handler

import (
	"log/slog"
	"net/http"

	"nutrifit/internal/delivery/http/response"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuggestionHandler holds dependencies for the AI suggestion handlers.
type SuggestionHandler struct {
	uc     usecase.SuggestionUsecase
	logger *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler, injected by Fx.
func NewSuggestionHandler(uc usecase.SuggestionUsecase, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecommendDish asks the agent for a dish built from the posted ingredients.
func (h *SuggestionHandler) RecommendDish(c echo.Context) error {
	var input *usecase.RecommendDishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredients input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	dish, err := h.uc.RecommendDish(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "Dish recommended successfully")
}

// EstimateCalories asks the agent for a calorie estimate.
func (h *SuggestionHandler) EstimateCalories(c echo.Context) error {
	var input *usecase.EstimateCaloriesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	estimate, err := h.uc.EstimateCalories(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, estimate, "Calories estimated successfully")
}
