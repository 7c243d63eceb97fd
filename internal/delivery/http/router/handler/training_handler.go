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

// TrainingHandler holds dependencies for the workout catalog handlers.
type TrainingHandler struct {
	uc     usecase.TrainingUsecase
	logger *slog.Logger
}

// NewTrainingHandler is the constructor for TrainingHandler, injected by Fx.
func NewTrainingHandler(uc usecase.TrainingUsecase, logger *slog.Logger) *TrainingHandler {
	return &TrainingHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddTraining stores a new training definition.
func (h *TrainingHandler) AddTraining(c echo.Context) error {
	var input *usecase.AddTrainingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid training input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.uc.AddTraining(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Training added successfully")
}

// ListTrainings returns the whole catalog.
func (h *TrainingHandler) ListTrainings(c echo.Context) error {
	trainings, err := h.uc.ListTrainings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainings, "Trainings retrieved successfully")
}

// ListTrainingsByType filters the catalog by objective type.
func (h *TrainingHandler) ListTrainingsByType(c echo.Context) error {
	trainings, err := h.uc.ListTrainingsByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainings, "Trainings retrieved successfully")
}

// DeleteTraining removes a training from the catalog.
func (h *TrainingHandler) DeleteTraining(c echo.Context) error {
	if err := h.uc.DeleteTraining(c.Request().Context(), c.Param("trainingId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Training deleted successfully")
}
