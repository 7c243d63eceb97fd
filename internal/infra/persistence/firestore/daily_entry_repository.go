package firestore

import (
	"context"

	"nutrifit/internal/domain/entity"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// dailyEntryRepository implements repository.DailyEntryRepository on
// Firestore. Entries are keyed by date string under the user document, and
// meals live in a nested collection under each entry.
type dailyEntryRepository struct {
	client *firestore.Client
}

// NewDailyEntryRepository is the constructor for dailyEntryRepository.
func NewDailyEntryRepository(client *firestore.Client) repository.DailyEntryRepository {
	return &dailyEntryRepository{client: client}
}

func (repo *dailyEntryRepository) entries(userID string) *firestore.CollectionRef {
	return repo.client.Collection(usersCollection).Doc(userID).Collection(entriesCollection)
}

func (repo *dailyEntryRepository) meals(userID, date string) *firestore.CollectionRef {
	return repo.entries(userID).Doc(date).Collection(mealsCollection)
}

// Create writes the entry with DocumentRef.Create so two concurrent
// requests for the same date cannot both succeed.
func (repo *dailyEntryRepository) Create(ctx context.Context, userID, date string, entry *entity.DailyEntry) error {
	doc := &entryDoc{
		Calories:       entry.Calories,
		Steps:          entry.Steps,
		CaloriesBurned: entry.CaloriesBurned,
		CreatedAt:      entry.CreatedAt,
	}

	_, err := repo.entries(userID).Doc(date).Create(ctx, doc)
	if status.Code(err) == codes.AlreadyExists {
		return repository.ErrDailyEntryExists
	}
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create daily entry")
	}

	return nil
}

// Get returns the entry document without its meals.
func (repo *dailyEntryRepository) Get(ctx context.Context, userID, date string) (*entity.DailyEntry, error) {
	snap, err := repo.entries(userID).Doc(date).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrDailyEntryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get daily entry")
	}

	var doc entryDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode daily entry")
	}

	return toEntryEntity(snap.Ref.ID, &doc), nil
}

// List returns every entry for the user with meals materialized.
func (repo *dailyEntryRepository) List(ctx context.Context, userID string) ([]*entity.DailyEntry, error) {
	snaps, err := repo.entries(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily entries")
	}

	entries := make([]*entity.DailyEntry, 0, len(snaps))
	for _, snap := range snaps {
		var doc entryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode daily entry")
		}

		entry := toEntryEntity(snap.Ref.ID, &doc)

		meals, err := repo.ListMeals(ctx, userID, snap.Ref.ID)
		if err != nil {
			return nil, err
		}
		entry.Meals = meals

		entries = append(entries, entry)
	}

	return entries, nil
}

// Update merges only the supplied fields and never creates the document.
// With no fields supplied it degrades to an existence check.
func (repo *dailyEntryRepository) Update(ctx context.Context, userID, date string, update *repository.DailyEntryUpdate) error {
	var updates []firestore.Update
	if update.Calories != nil {
		updates = append(updates, firestore.Update{Path: "calories", Value: *update.Calories})
	}
	if update.Steps != nil {
		updates = append(updates, firestore.Update{Path: "steps", Value: *update.Steps})
	}

	if len(updates) == 0 {
		_, err := repo.Get(ctx, userID, date)

		return err
	}

	_, err := repo.entries(userID).Doc(date).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return repository.ErrDailyEntryNotFound
	}
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update daily entry")
	}

	return nil
}

// Delete removes the entry document. Meals under a deleted entry become
// orphaned subcollection documents, which Firestore permits; they are
// unreachable through the API because every meal path goes through the
// entry date.
func (repo *dailyEntryRepository) Delete(ctx context.Context, userID, date string) error {
	if _, err := repo.entries(userID).Doc(date).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete daily entry")
	}

	return nil
}

// AddCaloriesBurned uses a server-side increment so concurrent burn
// reports accumulate instead of overwriting each other.
func (repo *dailyEntryRepository) AddCaloriesBurned(ctx context.Context, userID, date string, amount float64) error {
	_, err := repo.entries(userID).Doc(date).Update(ctx, []firestore.Update{
		{Path: "caloriesBurn", Value: firestore.Increment(amount)},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrDailyEntryNotFound
	}
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to add burned calories")
	}

	return nil
}

// AddMeal appends a meal document and returns its generated ID.
func (repo *dailyEntryRepository) AddMeal(ctx context.Context, userID, date string, meal *entity.Meal) (string, error) {
	ref, _, err := repo.meals(userID, date).Add(ctx, fromMealEntity(meal))
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to add meal")
	}

	meal.ID = ref.ID

	return ref.ID, nil
}

// ListMeals returns every meal under the entry, oldest first.
func (repo *dailyEntryRepository) ListMeals(ctx context.Context, userID, date string) ([]entity.Meal, error) {
	snaps, err := repo.meals(userID, date).OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	meals := make([]entity.Meal, 0, len(snaps))
	for _, snap := range snaps {
		var doc mealDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode meal")
		}
		meals = append(meals, toMealEntity(snap.Ref.ID, &doc))
	}

	return meals, nil
}

// DeleteMeal removes one meal document; deleting an absent meal succeeds.
func (repo *dailyEntryRepository) DeleteMeal(ctx context.Context, userID, date, mealID string) error {
	if _, err := repo.meals(userID, date).Doc(mealID).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete meal")
	}

	return nil
}
