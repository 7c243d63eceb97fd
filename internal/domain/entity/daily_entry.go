package entity

import "time"

// DailyEntry aggregates one calendar day of nutrition and activity for a
// user. Entries are keyed by (user, date) with the date in YYYY-MM-DD form,
// so there is at most one entry per user per day.
type DailyEntry struct {
	Date           string    `json:"date"`
	Calories       float64   `json:"calories"`
	Steps          float64   `json:"steps"`
	CaloriesBurned float64   `json:"caloriesBurn"`
	Meals          []Meal    `json:"meals"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Meal is a single logged food item inside a daily entry. CreatedAt is
// always stamped server-side; client-supplied timestamps are discarded.
type Meal struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Quantity  float64   `json:"quantity"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateLayout is the calendar-day key format used for daily entries.
const DateLayout = "2006-01-02"
