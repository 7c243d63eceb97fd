package firestore

import (
	"context"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// savedProductRepository implements repository.SavedProductRepository on
// Firestore.
type savedProductRepository struct {
	client *firestore.Client
}

// NewSavedProductRepository is the constructor for savedProductRepository.
func NewSavedProductRepository(client *firestore.Client) repository.SavedProductRepository {
	return &savedProductRepository{client: client}
}

func (repo *savedProductRepository) products(userID string) *firestore.CollectionRef {
	return repo.client.Collection(usersCollection).Doc(userID).Collection(productsCollection)
}

// Add appends the product under the user and returns its generated ID.
func (repo *savedProductRepository) Add(ctx context.Context, userID string, product *entity.ProductData) (string, error) {
	ref, _, err := repo.products(userID).Add(ctx, fromProductEntity(product))
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to save product")
	}

	product.ID = ref.ID

	return ref.ID, nil
}

// List returns all saved products for the user.
func (repo *savedProductRepository) List(ctx context.Context, userID string) ([]*entity.ProductData, error) {
	snaps, err := repo.products(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved products")
	}

	products := make([]*entity.ProductData, 0, len(snaps))
	for _, snap := range snaps {
		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode saved product")
		}
		products = append(products, toProductEntity(snap.Ref.ID, &doc))
	}

	return products, nil
}

// Delete removes one saved product; deleting an absent product succeeds.
func (repo *savedProductRepository) Delete(ctx context.Context, userID, productID string) error {
	if _, err := repo.products(userID).Doc(productID).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete saved product")
	}

	return nil
}
