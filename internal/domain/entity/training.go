package entity

// Training is a workout definition made of one or more exercises.
// TotalCalories is derived and never persisted; it is recomputed on every
// read so edits to the underlying exercises are always reflected.
type Training struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Type          Objective  `json:"type"`
	Exercises     []Exercise `json:"exercises"`
	TotalCalories float64    `json:"totalCalories"`
}

// Exercise is a single movement inside a training.
type Exercise struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Muscles     []string `json:"muscles"`
	Series      int      `json:"series"`
	Repetitions int      `json:"repetitions"`
	Calories    float64  `json:"calories"`
}

// ComputeTotalCalories sums the calories over all exercises.
func (t *Training) ComputeTotalCalories() float64 {
	var total float64
	for _, ex := range t.Exercises {
		total += ex.Calories
	}

	return total
}
