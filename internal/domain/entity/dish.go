package entity

import "time"

// DishInfo is a dish suggestion produced by the meal agent. It is transient:
// the backend reshapes the agent response and hands it to the caller without
// persisting anything.
type DishInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"Name"`
	Description     string   `json:"Description"`
	Food            []string `json:"Food"`
	ExtraFood       []string `json:"ExtraFood"`
	PreparationStep []string `json:"PreparationStep"`
	CookTime        string   `json:"CookTime"`
}

// CaloriesInfo is the agent's calorie estimate for a food and quantity,
// shaped like a meal so the client can log it directly.
type CaloriesInfo struct {
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Calories  float64   `json:"calories"`
	CreatedAt time.Time `json:"createdAt"`
}
