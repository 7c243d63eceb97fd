// Package openfoodfacts implements the food catalog gateway on the public
// OpenFoodFacts v2 product API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nutrifit/config"
	"nutrifit/internal/domain/entity"
	"nutrifit/internal/domain/service"

	"github.com/pkg/errors"
)

// productResponse is the upstream envelope. Status 0 means the barcode is
// unknown to the catalog.
type productResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Product struct {
		ProductName             string            `json:"product_name"`
		IngredientsText         string            `json:"ingredients_text"`
		Nutriments              entity.Nutriments `json:"nutriments"`
		IngredientsAnalysisTags []string          `json:"ingredients_analysis_tags"`
		NutriscoreGrade         string            `json:"nutriscore_grade"`
		Brands                  string            `json:"brands"`
		Categories              string            `json:"categories"`
		Quantity                string            `json:"quantity"`
		Labels                  string            `json:"labels"`
		AllergensTags           []string          `json:"allergens_tags"`
		ImageURL                string            `json:"image_url"`
	} `json:"product"`
}

// Client calls the OpenFoodFacts HTTP API with a bounded request budget.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the catalog gateway from configuration.
func NewClient(cfg *config.Config) service.FoodCatalog {
	return &Client{
		baseURL: cfg.FoodCatalog.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.FoodCatalog.Timeout,
		},
	}
}

// FetchProduct looks up a barcode. An unknown product is (nil, nil), not an
// error; only transport or decoding failures are errors.
func (c *Client) FetchProduct(ctx context.Context, productID string) (*entity.ProductData, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "product lookup request failed")
	}
	defer resp.Body.Close()

	// The API answers 404 for barcodes it has never seen.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("product lookup returned status %d", resp.StatusCode)
	}

	var payload productResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode product response")
	}

	if payload.Status == 0 {
		return nil, nil
	}

	return &entity.ProductData{
		ProductName:             payload.Product.ProductName,
		IngredientsText:         payload.Product.IngredientsText,
		Nutriments:              payload.Product.Nutriments,
		IngredientsAnalysisTags: payload.Product.IngredientsAnalysisTags,
		NutriscoreGrade:         payload.Product.NutriscoreGrade,
		Brands:                  payload.Product.Brands,
		Categories:              payload.Product.Categories,
		Quantity:                payload.Product.Quantity,
		Labels:                  payload.Product.Labels,
		Allergens:               payload.Product.AllergensTags,
		ImageURL:                payload.Product.ImageURL,
	}, nil
}
