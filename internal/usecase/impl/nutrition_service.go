package impl

import (
	"context"
	"log/slog"

	deliverycontext "nutrifit/internal/delivery/context"
	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"
	"nutrifit/internal/domain/service"
	"nutrifit/internal/usecase"

	"github.com/pkg/errors"
)

// nutritionService implements the NutritionUsecase interface.
type nutritionService struct {
	catalog     service.FoodCatalog
	productRepo repository.SavedProductRepository
	logger      *slog.Logger
}

// NewNutritionService is the constructor for nutritionService.
func NewNutritionService(
	catalog service.FoodCatalog,
	productRepo repository.SavedProductRepository,
	logger *slog.Logger,
) usecase.NutritionUsecase {
	return &nutritionService{
		catalog:     catalog,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *nutritionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetNutritionalInfo fetches a product record from the catalog. The
// catalog's nil result (unknown barcode) maps to a not-found error here so
// the handler never needs to distinguish the two.
func (srv *nutritionService) GetNutritionalInfo(ctx context.Context, productID string) (*entity.ProductData, error) {
	product, err := srv.catalog.FetchProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Food catalog lookup failed",
			slog.String("productID", productID), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("food catalog lookup failed")
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("no record for barcode " + productID)
	}

	return product, nil
}

// SaveProduct attaches a product record to the user.
func (srv *nutritionService) SaveProduct(ctx context.Context, userID string, product *entity.ProductData) error {
	if _, err := srv.productRepo.Add(ctx, userID, product); err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// ListProducts returns the user's saved products. An empty list is
// reported as not-found to match the established client contract.
func (srv *nutritionService) ListProducts(ctx context.Context, userID string) ([]*entity.ProductData, error) {
	products, err := srv.productRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrNoSavedProducts.WrapMessage("no saved products for user " + userID)
	}

	return products, nil
}

// DeleteProduct removes one saved product.
func (srv *nutritionService) DeleteProduct(ctx context.Context, userID, productID string) error {
	if err := srv.productRepo.Delete(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
