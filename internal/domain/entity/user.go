// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single account.
// The profile fields are optional until the user completes onboarding;
// they stay absent in the store until the first profile update.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Profile        *Profile  `json:"profile,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Profile holds the body metrics and activity settings the energy-balance
// engine needs. A user without a completed profile has no calorie target.
type Profile struct {
	Age                int           `json:"age"`
	WeightKg           float64       `json:"weightKg"`
	HeightCm           float64       `json:"heightCm"`
	IsMale             bool          `json:"isMale"`
	ActivityLevel      ActivityLevel `json:"activityLevel"`
	Objective          Objective     `json:"objective"`
	DailyCalorieTarget float64       `json:"dailyCalorieTarget"`
}
