package main

import (
	"context"
	"log/slog"
	"os"

	"nutrifit/config"
	"nutrifit/internal/delivery"
	"nutrifit/internal/delivery/http"
	httpmiddleware "nutrifit/internal/delivery/http/middleware"
	"nutrifit/internal/delivery/http/router/handler"
	deliverymiddleware "nutrifit/internal/delivery/middleware"
	"nutrifit/internal/infra/auth"
	logs "nutrifit/internal/infra/log"
	"nutrifit/internal/infra/mistral"
	"nutrifit/internal/infra/openfoodfacts"
	"nutrifit/internal/infra/persistence/firestore"
	"nutrifit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewDailyEntryRepository,
			firestore.NewSavedProductRepository,
			firestore.NewTrainingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			openfoodfacts.NewClient,
			mistral.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDailyEntryService,
			impl.NewNutritionService,
			impl.NewSuggestionService,
			impl.NewTrainingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserInfoHandler,
			handler.NewDailyEntryHandler,
			handler.NewNutritionHandler,
			handler.NewSuggestionHandler,
			handler.NewTrainingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
