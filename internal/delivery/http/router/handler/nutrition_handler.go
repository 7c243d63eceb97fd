package handler

import (
	"log/slog"
	"net/http"

	"nutrifit/internal/delivery/http/response"
	"nutrifit/internal/domain/entity"
	"nutrifit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NutritionHandler holds dependencies for the food catalog handlers.
type NutritionHandler struct {
	uc     usecase.NutritionUsecase
	logger *slog.Logger
}

// NewNutritionHandler is the constructor for NutritionHandler, injected by Fx.
func NewNutritionHandler(uc usecase.NutritionUsecase, logger *slog.Logger) *NutritionHandler {
	return &NutritionHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetNutritionalInfo proxies a barcode lookup to the food catalog.
func (h *NutritionHandler) GetNutritionalInfo(c echo.Context) error {
	product, err := h.uc.GetNutritionalInfo(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// SaveProduct attaches a product record to the user.
func (h *NutritionHandler) SaveProduct(c echo.Context) error {
	var product *entity.ProductData
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	// A body-less request binds to nil; there is no product to save.
	if product == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.uc.SaveProduct(c.Request().Context(), c.Param("userId"), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product saved successfully")
}

// ListProducts returns the user's saved products.
func (h *NutritionHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// DeleteProduct removes one saved product.
func (h *NutritionHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("userId"), c.Param("productId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
