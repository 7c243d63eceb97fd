package firestore

import (
	"time"

	"nutrifit/internal/domain/entity"
)

// userDoc is the persistence shape of a user document. The profile fields
// are pointers so an account created at sign-up, before onboarding, stays
// distinguishable from one with a zero-valued profile.
type userDoc struct {
	Name               string    `firestore:"name"`
	Email              string    `firestore:"email"`
	HashedPassword     string    `firestore:"hashedPassword"`
	Age                *int      `firestore:"age,omitempty"`
	WeightKg           *float64  `firestore:"weightKg,omitempty"`
	HeightCm           *float64  `firestore:"heightCm,omitempty"`
	IsMale             *bool     `firestore:"isMale,omitempty"`
	ActivityLevel      string    `firestore:"activityLevel,omitempty"`
	Objective          string    `firestore:"objective,omitempty"`
	DailyCalorieTarget *float64  `firestore:"dailyCalorieTarget,omitempty"`
	CreatedAt          time.Time `firestore:"createdAt,serverTimestamp"`
}

func toUserEntity(id string, doc *userDoc) *entity.User {
	user := &entity.User{
		ID:             id,
		Name:           doc.Name,
		Email:          doc.Email,
		HashedPassword: doc.HashedPassword,
		CreatedAt:      doc.CreatedAt,
	}

	// A stored activity level marks a completed profile.
	if doc.ActivityLevel != "" {
		profile := &entity.Profile{
			ActivityLevel: entity.ActivityLevel(doc.ActivityLevel),
			Objective:     entity.Objective(doc.Objective),
		}
		if doc.Age != nil {
			profile.Age = *doc.Age
		}
		if doc.WeightKg != nil {
			profile.WeightKg = *doc.WeightKg
		}
		if doc.HeightCm != nil {
			profile.HeightCm = *doc.HeightCm
		}
		if doc.IsMale != nil {
			profile.IsMale = *doc.IsMale
		}
		if doc.DailyCalorieTarget != nil {
			profile.DailyCalorieTarget = *doc.DailyCalorieTarget
		}
		user.Profile = profile
	}

	return user
}

// entryDoc is the persistence shape of a daily entry. Meals live in a
// nested collection, not on the document itself.
type entryDoc struct {
	Calories       float64   `firestore:"calories"`
	Steps          float64   `firestore:"steps"`
	CaloriesBurned float64   `firestore:"caloriesBurn"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

func toEntryEntity(date string, doc *entryDoc) *entity.DailyEntry {
	return &entity.DailyEntry{
		Date:           date,
		Calories:       doc.Calories,
		Steps:          doc.Steps,
		CaloriesBurned: doc.CaloriesBurned,
		CreatedAt:      doc.CreatedAt,
	}
}

// mealDoc is the persistence shape of a logged meal.
type mealDoc struct {
	Name      string    `firestore:"name"`
	Calories  float64   `firestore:"calories"`
	Quantity  float64   `firestore:"quantity"`
	ImageURL  string    `firestore:"image_url,omitempty"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func toMealEntity(id string, doc *mealDoc) entity.Meal {
	return entity.Meal{
		ID:        id,
		Name:      doc.Name,
		Calories:  doc.Calories,
		Quantity:  doc.Quantity,
		ImageURL:  doc.ImageURL,
		CreatedAt: doc.CreatedAt,
	}
}

func fromMealEntity(meal *entity.Meal) *mealDoc {
	return &mealDoc{
		Name:      meal.Name,
		Calories:  meal.Calories,
		Quantity:  meal.Quantity,
		ImageURL:  meal.ImageURL,
		CreatedAt: meal.CreatedAt,
	}
}

// productDoc is the persistence shape of a saved nutrition product.
type productDoc struct {
	ProductName             string             `firestore:"product_name"`
	IngredientsText         string             `firestore:"ingredients_text"`
	Nutriments              productNutriments  `firestore:"nutriments"`
	IngredientsAnalysisTags []string           `firestore:"ingredients_analysis_tags"`
	NutriscoreGrade         string             `firestore:"nutriscore_grade"`
	Brands                  string             `firestore:"brands"`
	Categories              string             `firestore:"categories"`
	Quantity                string             `firestore:"quantity"`
	Labels                  string             `firestore:"labels"`
	Allergens               []string           `firestore:"allergens"`
	ImageURL                string             `firestore:"image_url"`
}

type productNutriments struct {
	Energy       float64 `firestore:"energy"`
	EnergyKcal   float64 `firestore:"energyKcal"`
	Fat          float64 `firestore:"fat"`
	SaturatedFat float64 `firestore:"saturatedFat"`
	Sugars       float64 `firestore:"sugars"`
	Salt         float64 `firestore:"salt"`
	Proteins     float64 `firestore:"proteins"`
}

func fromProductEntity(p *entity.ProductData) *productDoc {
	return &productDoc{
		ProductName:             p.ProductName,
		IngredientsText:         p.IngredientsText,
		Nutriments:              productNutriments(p.Nutriments),
		IngredientsAnalysisTags: p.IngredientsAnalysisTags,
		NutriscoreGrade:         p.NutriscoreGrade,
		Brands:                  p.Brands,
		Categories:              p.Categories,
		Quantity:                p.Quantity,
		Labels:                  p.Labels,
		Allergens:               p.Allergens,
		ImageURL:                p.ImageURL,
	}
}

func toProductEntity(id string, doc *productDoc) *entity.ProductData {
	return &entity.ProductData{
		ID:                      id,
		ProductName:             doc.ProductName,
		IngredientsText:         doc.IngredientsText,
		Nutriments:              entity.Nutriments(doc.Nutriments),
		IngredientsAnalysisTags: doc.IngredientsAnalysisTags,
		NutriscoreGrade:         doc.NutriscoreGrade,
		Brands:                  doc.Brands,
		Categories:              doc.Categories,
		Quantity:                doc.Quantity,
		Labels:                  doc.Labels,
		Allergens:               doc.Allergens,
		ImageURL:                doc.ImageURL,
	}
}

// trainingDoc is the persistence shape of a training. The derived
// totalCalories field is intentionally absent.
type trainingDoc struct {
	Name        string        `firestore:"name"`
	Description string        `firestore:"description"`
	Type        string        `firestore:"type"`
	Exercises   []exerciseDoc `firestore:"exercises"`
}

type exerciseDoc struct {
	Name        string   `firestore:"name"`
	Description string   `firestore:"description"`
	Muscles     []string `firestore:"muscles"`
	Series      int      `firestore:"series"`
	Repetitions int      `firestore:"repetitions"`
	Calories    float64  `firestore:"calories"`
}

func fromTrainingEntity(t *entity.Training) *trainingDoc {
	exercises := make([]exerciseDoc, 0, len(t.Exercises))
	for _, ex := range t.Exercises {
		exercises = append(exercises, exerciseDoc(ex))
	}

	return &trainingDoc{
		Name:        t.Name,
		Description: t.Description,
		Type:        string(t.Type),
		Exercises:   exercises,
	}
}

func toTrainingEntity(id string, doc *trainingDoc) *entity.Training {
	exercises := make([]entity.Exercise, 0, len(doc.Exercises))
	for _, ex := range doc.Exercises {
		exercises = append(exercises, entity.Exercise(ex))
	}

	return &entity.Training{
		ID:          id,
		Name:        doc.Name,
		Description: doc.Description,
		Type:        entity.Objective(doc.Type),
		Exercises:   exercises,
	}
}
