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

// UserInfoHandler holds dependencies for the profile handlers.
type UserInfoHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserInfoHandler is the constructor for UserInfoHandler, injected by Fx.
func NewUserInfoHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserInfoHandler {
	return &UserInfoHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateProfile overwrites the profile fields and reports the recomputed
// daily calorie target.
func (h *UserInfoHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// GetProfile returns the full user record for the given ID.
func (h *UserInfoHandler) GetProfile(c echo.Context) error {
	userID := c.Param("userId")

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}
