package impl

import (
	"context"
	"testing"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	mockRepo "nutrifit/internal/mocks/repository"
	mockSvc "nutrifit/internal/mocks/service"
	"nutrifit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nutritionServiceFixtures holds all test dependencies for nutrition
// service tests.
type nutritionServiceFixtures struct {
	service     usecase.NutritionUsecase
	catalog     *mockSvc.MockFoodCatalog
	productRepo *mockRepo.MockSavedProductRepository
}

func createTestNutritionService(t *testing.T) nutritionServiceFixtures {
	t.Helper()

	catalog := &mockSvc.MockFoodCatalog{}
	productRepo := &mockRepo.MockSavedProductRepository{}
	service := NewNutritionService(catalog, productRepo, newDiscardLogger())

	return nutritionServiceFixtures{
		service:     service,
		catalog:     catalog,
		productRepo: productRepo,
	}
}

func TestNutritionService_GetNutritionalInfo_Success(t *testing.T) {
	fx := createTestNutritionService(t)
	ctx := context.Background()

	expected := &entity.ProductData{
		ProductName: "Dark chocolate",
		Nutriments:  entity.Nutriments{EnergyKcal: 546},
	}

	fx.catalog.On("FetchProduct", ctx, "3017620422003").Return(expected, nil)

	product, err := fx.service.GetNutritionalInfo(ctx, "3017620422003")

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestNutritionService_GetNutritionalInfo_UnknownBarcode(t *testing.T) {
	fx := createTestNutritionService(t)
	ctx := context.Background()

	fx.catalog.On("FetchProduct", ctx, "0000000000000").Return(nil, nil)

	_, err := fx.service.GetNutritionalInfo(ctx, "0000000000000")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestNutritionService_GetNutritionalInfo_UpstreamFailure(t *testing.T) {
	fx := createTestNutritionService(t)
	ctx := context.Background()

	fx.catalog.On("FetchProduct", ctx, "3017620422003").
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.GetNutritionalInfo(ctx, "3017620422003")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}

func TestNutritionService_ListProducts_EmptyIsNotFound(t *testing.T) {
	fx := createTestNutritionService(t)
	ctx := context.Background()

	fx.productRepo.On("List", ctx, "user-1").Return([]*entity.ProductData{}, nil)

	_, err := fx.service.ListProducts(ctx, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoSavedProducts)
}

func TestNutritionService_SaveAndListProducts(t *testing.T) {
	fx := createTestNutritionService(t)
	ctx := context.Background()

	product := &entity.ProductData{ProductName: "Granola"}

	fx.productRepo.On("Add", ctx, "user-1", product).Return("prod-1", nil)
	fx.productRepo.On("List", ctx, "user-1").Return([]*entity.ProductData{product}, nil)

	require.NoError(t, fx.service.SaveProduct(ctx, "user-1", product))

	products, err := fx.service.ListProducts(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
