package repository

import (
	"context"

	"nutrifit/internal/domain/entity"
)

// SavedProductRepository manages the nutrition products a user has attached
// to their account.
type SavedProductRepository interface {
	// Add appends a product record under the user and returns its ID.
	Add(ctx context.Context, userID string, product *entity.ProductData) (string, error)

	// List returns all saved products for the user; empty when none.
	List(ctx context.Context, userID string) ([]*entity.ProductData, error)

	// Delete removes one saved product by ID; idempotent.
	Delete(ctx context.Context, userID, productID string) error
}
