// Package firestore contains the concrete implementation of the
// persistence layer on Google Cloud Firestore. Documents are laid out as
// users/{userId}, users/{userId}/nutritionProducts/{id},
// users/{userId}/dailyEntries/{date}/meals/{id} and trainings/{id}.
package firestore

import (
	"context"
	"log/slog"

	"nutrifit/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	usersCollection     = "users"
	entriesCollection   = "dailyEntries"
	mealsCollection     = "meals"
	productsCollection  = "nutritionProducts"
	trainingsCollection = "trainings"
)

// Params defines the parameters required to build the Firestore client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the Firestore client through the Firebase app and ties its
// lifetime to the fx lifecycle. The client is the single store handle the
// repositories share; nothing else in the process talks to Firestore.
func New(ctx context.Context, params Params) (*firestore.Client, error) {
	var opts []option.ClientOption
	if params.Config.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: params.Config.Firestore.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
