package usecase

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// NutritionUsecase proxies the food catalog and manages the products a
// user has saved to their account.
type NutritionUsecase interface {
	// GetNutritionalInfo fetches the normalized record for a barcode.
	// An unknown product maps to a not-found error, not an upstream one.
	GetNutritionalInfo(ctx context.Context, productID string) (*entity.ProductData, error)

	// SaveProduct attaches a product record to the user.
	SaveProduct(ctx context.Context, userID string, product *entity.ProductData) error

	// ListProducts returns the user's saved products; none is a
	// not-found condition per the established client contract.
	ListProducts(ctx context.Context, userID string) ([]*entity.ProductData, error)

	// DeleteProduct removes one saved product.
	DeleteProduct(ctx context.Context, userID, productID string) error
}
