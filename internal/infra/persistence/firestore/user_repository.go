package firestore

import (
	"context"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements repository.UserRepository on Firestore.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(usersCollection)
}

// FindByID retrieves a single user by their document ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.users().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user document")
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return toUserEntity(snap.Ref.ID, &doc), nil
}

// FindByEmail retrieves a single user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := repo.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user by email")
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return toUserEntity(snap.Ref.ID, &doc), nil
}

// Create persists a new user and returns the generated document ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	ref := repo.users().NewDoc()

	doc := &userDoc{
		Name:           user.Name,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
	}

	if _, err := ref.Create(ctx, doc); err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	user.ID = ref.ID

	return ref.ID, nil
}

// List returns every user in the store.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	snaps, err := repo.users().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(snaps))
	for _, snap := range snaps {
		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode user document")
		}
		users = append(users, toUserEntity(snap.Ref.ID, &doc))
	}

	return users, nil
}

// UpdateProfile overwrites the six profile fields on the user document.
// Firestore's Update fails on a missing document, which gives the
// NotFoundError semantics the engine requires.
func (repo *userRepository) UpdateProfile(ctx context.Context, id string, profile *entity.Profile) error {
	_, err := repo.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "age", Value: profile.Age},
		{Path: "weightKg", Value: profile.WeightKg},
		{Path: "heightCm", Value: profile.HeightCm},
		{Path: "isMale", Value: profile.IsMale},
		{Path: "activityLevel", Value: string(profile.ActivityLevel)},
		{Path: "objective", Value: string(profile.Objective)},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrUserNotFound
	}
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update profile")
	}

	return nil
}

// SetDailyCalorieTarget writes only the dailyCalorieTarget field.
func (repo *userRepository) SetDailyCalorieTarget(ctx context.Context, id string, target float64) error {
	_, err := repo.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "dailyCalorieTarget", Value: target},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrUserNotFound
	}
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to set daily calorie target")
	}

	return nil
}
