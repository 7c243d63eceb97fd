// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"nutrifit/internal/domain/entity"
	"nutrifit/internal/errors"
)

// ErrUserNotFound is returned when no user document exists for the key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their document ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and returns the generated document ID.
	Create(ctx context.Context, user *entity.User) (string, error)

	// List returns every user in the store.
	List(ctx context.Context) ([]*entity.User, error)

	// UpdateProfile overwrites the six profile fields on the user document.
	// The calorie target is written separately by SetDailyCalorieTarget.
	UpdateProfile(ctx context.Context, id string, profile *entity.Profile) error

	// SetDailyCalorieTarget writes only the dailyCalorieTarget field.
	SetDailyCalorieTarget(ctx context.Context, id string, target float64) error
}
