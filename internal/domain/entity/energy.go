package entity

import "nutrifit/internal/errors"

// ActivityLevel describes how physically active a user is on a normal week.
type ActivityLevel string

// Objective is the direction the user wants their weight to move.
type Objective string

const (
	ActivitySedentary ActivityLevel = "SEDENTARY"
	ActivityActive    ActivityLevel = "ACTIVE"
	ActivitySportive  ActivityLevel = "SPORTIVE"

	ObjectiveWeightGain Objective = "WEIGHTGAIN"
	ObjectiveWeightLoss Objective = "WEIGHTLOSS"
)

// ErrUnknownActivityLevel and ErrUnknownObjective signal that an enum value
// fell outside the accepted set. Callers map them to validation failures.
var (
	ErrUnknownActivityLevel = errors.New("unknown activity level")
	ErrUnknownObjective     = errors.New("unknown objective")
)

// Valid reports whether the activity level is one of the accepted values.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityActive, ActivitySportive:
		return true
	}

	return false
}

// Valid reports whether the objective is one of the accepted values.
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveWeightGain, ObjectiveWeightLoss:
		return true
	}

	return false
}

// DailyCalorieTarget computes the Mifflin-St Jeor based daily calorie target.
// The evaluation order is fixed: base metabolic rate, sex offset, activity
// multiplier, objective adjustment. The result is not rounded.
//
// The function is pure; persisting the result is the caller's concern so the
// arithmetic stays independently testable.
func DailyCalorieTarget(weightKg, heightCm float64, age int, isMale bool, level ActivityLevel, objective Objective) (float64, error) {
	base := weightKg*10 + heightCm*6.25 - float64(age)*5

	if isMale {
		base += 5
	} else {
		base -= 161
	}

	switch level {
	case ActivitySedentary:
		base *= 1.37
	case ActivityActive:
		base *= 1.55
	case ActivitySportive:
		base *= 1.80
	default:
		return 0, errors.Wrapf(ErrUnknownActivityLevel, "%q", level)
	}

	switch objective {
	case ObjectiveWeightGain:
		base += 200
	case ObjectiveWeightLoss:
		base -= 200
	default:
		return 0, errors.Wrapf(ErrUnknownObjective, "%q", objective)
	}

	return base, nil
}
