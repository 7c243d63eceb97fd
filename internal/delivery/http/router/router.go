// Package router contains routing setup for the HTTP delivery.
package router

import (
	"nutrifit/internal/delivery/http/middleware"
	"nutrifit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserInfoHandler   *handler.UserInfoHandler
	DailyEntryHandler *handler.DailyEntryHandler
	NutritionHandler  *handler.NutritionHandler
	SuggestionHandler *handler.SuggestionHandler
	TrainingHandler   *handler.TrainingHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Auth routes; sign-up and sign-in are the only anonymous operations
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-up", r.params.AuthHandler.SignUp)
		authGroup.POST("/sign-in", r.params.AuthHandler.SignIn)
		authGroup.GET("/get-all-users", r.params.AuthHandler.GetAllUsers, r.params.AuthMiddleware.Authenticate)
	}

	// Profile routes
	userGroup := api.Group("/user-info")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.PUT("", r.params.UserInfoHandler.UpdateProfile)
		userGroup.GET("/:userId", r.params.UserInfoHandler.GetProfile)
	}

	// Food catalog routes
	nutritionGroup := api.Group("/nutrition")
	nutritionGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		nutritionGroup.GET("/get-nutritional-info/:productId", r.params.NutritionHandler.GetNutritionalInfo)
		nutritionGroup.POST("/save-product/:userId", r.params.NutritionHandler.SaveProduct)
		nutritionGroup.GET("/product-list/:userId", r.params.NutritionHandler.ListProducts)
		nutritionGroup.DELETE("/product/:userId/:productId", r.params.NutritionHandler.DeleteProduct)
	}

	// Daily ledger routes
	entriesGroup := api.Group("/daily_entries/:userId/entries")
	entriesGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		entriesGroup.POST("", r.params.DailyEntryHandler.CreateEntry)
		entriesGroup.GET("", r.params.DailyEntryHandler.ListEntries)
		entriesGroup.GET("/:date", r.params.DailyEntryHandler.GetEntry)
		entriesGroup.PUT("/:date", r.params.DailyEntryHandler.UpdateEntry)
		entriesGroup.DELETE("/:date", r.params.DailyEntryHandler.DeleteEntry)
		entriesGroup.POST("/:date/add-calories-burn", r.params.DailyEntryHandler.AddCaloriesBurn)
		entriesGroup.POST("/:date/meals", r.params.DailyEntryHandler.AddMeal)
		entriesGroup.GET("/:date/meals", r.params.DailyEntryHandler.ListMeals)
		entriesGroup.DELETE("/:date/meals/:mealId", r.params.DailyEntryHandler.DeleteMeal)
	}

	// Workout catalog routes
	trainingGroup := api.Group("/trainings")
	trainingGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		trainingGroup.POST("", r.params.TrainingHandler.AddTraining)
		trainingGroup.GET("", r.params.TrainingHandler.ListTrainings)
		trainingGroup.GET("/type/:type", r.params.TrainingHandler.ListTrainingsByType)
		trainingGroup.DELETE("/:trainingId", r.params.TrainingHandler.DeleteTraining)
	}

	// AI suggestion routes
	api.POST("/recommend-dish", r.params.SuggestionHandler.RecommendDish, r.params.AuthMiddleware.Authenticate)
	api.POST("/calories-food", r.params.SuggestionHandler.EstimateCalories, r.params.AuthMiddleware.Authenticate)
}
