package service

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// FoodCatalog looks up nutrition records in a third-party food database.
type FoodCatalog interface {
	// FetchProduct returns the normalized record for a barcode, or
	// (nil, nil) when the upstream has no such product. An error means
	// the upstream call itself failed.
	FetchProduct(ctx context.Context, productID string) (*entity.ProductData, error)
}
