package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalCalories(t *testing.T) {
	training := &Training{
		Name: "Full body",
		Type: ObjectiveWeightLoss,
		Exercises: []Exercise{
			{Name: "Squat", Calories: 150},
			{Name: "Bench press", Calories: 120},
			{Name: "Rowing", Calories: 80},
		},
	}

	assert.InDelta(t, 350, training.ComputeTotalCalories(), 1e-9)
}

func TestComputeTotalCalories_NoExercises(t *testing.T) {
	training := &Training{Name: "Empty"}

	assert.Zero(t, training.ComputeTotalCalories())
}
