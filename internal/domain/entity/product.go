package entity

// ProductData is the normalized nutrition record returned by the food
// catalog for a barcode. The field names mirror the OpenFoodFacts payload
// so frontends that already consume that API keep working unchanged.
type ProductData struct {
	ID                      string     `json:"_id,omitempty"`
	ProductName             string     `json:"product_name"`
	IngredientsText         string     `json:"ingredients_text"`
	Nutriments              Nutriments `json:"nutriments"`
	IngredientsAnalysisTags []string   `json:"ingredients_analysis_tags"`
	NutriscoreGrade         string     `json:"nutriscore_grade"`
	Brands                  string     `json:"brands"`
	Categories              string     `json:"categories"`
	Quantity                string     `json:"quantity"`
	Labels                  string     `json:"labels"`
	Allergens               []string   `json:"allergens"`
	ImageURL                string     `json:"image_url"`
}

// Nutriments carries the per-100g macro figures of a product.
type Nutriments struct {
	Energy       float64 `json:"energy"`
	EnergyKcal   float64 `json:"energy-kcal"`
	Fat          float64 `json:"fat"`
	SaturatedFat float64 `json:"saturated-fat"`
	Sugars       float64 `json:"sugars"`
	Salt         float64 `json:"salt"`
	Proteins     float64 `json:"proteins"`
}
