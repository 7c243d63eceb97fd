package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nutrifit/internal/delivery/http/response"
	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DailyEntryHandler holds dependencies for the daily ledger handlers.
type DailyEntryHandler struct {
	uc     usecase.DailyEntryUsecase
	logger *slog.Logger
	now    func() time.Time
}

// NewDailyEntryHandler is the constructor for DailyEntryHandler, injected by Fx.
func NewDailyEntryHandler(uc usecase.DailyEntryUsecase, logger *slog.Logger) *DailyEntryHandler {
	return &DailyEntryHandler{
		uc:     uc,
		logger: logger,
		now:    time.Now,
	}
}

// CreateEntry opens today's entry. The date is chosen server-side so a
// client cannot backfill through this route.
func (h *DailyEntryHandler) CreateEntry(c echo.Context) error {
	var input *usecase.CreateDailyEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	// Both counters default to zero, so a body-less POST is valid; echo's
	// binder leaves the pointer nil for an empty body.
	if input == nil {
		input = &usecase.CreateDailyEntryInput{}
	}

	date := h.now().Format(entity.DateLayout)

	if err := h.uc.CreateDailyEntry(c.Request().Context(), c.Param("userId"), date, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"date": date}, "Daily entry created successfully")
}

// ListEntries returns every entry with its meals.
func (h *DailyEntryHandler) ListEntries(c echo.Context) error {
	entries, err := h.uc.ListDailyEntries(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Daily entries retrieved successfully")
}

// GetEntry reads one entry, creating a zeroed one when the date is vacant.
func (h *DailyEntryHandler) GetEntry(c echo.Context) error {
	entry, err := h.uc.GetDailyEntry(c.Request().Context(), c.Param("userId"), c.Param("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Daily entry retrieved successfully")
}

// UpdateEntry merges the supplied counters into an existing entry.
func (h *DailyEntryHandler) UpdateEntry(c echo.Context) error {
	var input *usecase.UpdateDailyEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	// An empty body merges nothing and degrades to an existence check.
	if input == nil {
		input = &usecase.UpdateDailyEntryInput{}
	}

	if err := h.uc.UpdateDailyEntry(c.Request().Context(), c.Param("userId"), c.Param("date"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Daily entry updated successfully")
}

// DeleteEntry removes the entry for the date.
func (h *DailyEntryHandler) DeleteEntry(c echo.Context) error {
	if err := h.uc.DeleteDailyEntry(c.Request().Context(), c.Param("userId"), c.Param("date")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Daily entry deleted successfully")
}

// AddCaloriesBurn accumulates a burn report onto the entry.
func (h *DailyEntryHandler) AddCaloriesBurn(c echo.Context) error {
	var input *usecase.AddCaloriesBurnInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calories burn input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := h.uc.AddCaloriesBurn(c.Request().Context(), c.Param("userId"), c.Param("date"), input.CaloriesBurnToAdd); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Calories burn added successfully")
}

// AddMeal appends a meal to the entry.
func (h *DailyEntryHandler) AddMeal(c echo.Context) error {
	var input *usecase.AddMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := h.uc.AddMeal(c.Request().Context(), c.Param("userId"), c.Param("date"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Meal added successfully")
}

// ListMeals returns the meals logged under the entry.
func (h *DailyEntryHandler) ListMeals(c echo.Context) error {
	meals, err := h.uc.ListMeals(c.Request().Context(), c.Param("userId"), c.Param("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "Meals retrieved successfully")
}

// DeleteMeal removes one meal from the entry.
func (h *DailyEntryHandler) DeleteMeal(c echo.Context) error {
	if err := h.uc.DeleteMeal(c.Request().Context(), c.Param("userId"), c.Param("date"), c.Param("mealId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal deleted successfully")
}
