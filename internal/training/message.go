package training

import "fmt"

// InfoMessage is the computed result of one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"mean_speed_kmh"`
	Calories     float64 `json:"calories_kcal"`
}

// Message renders the one-line report.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Workout type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Format is shorthand for m.Message().
func Format(m InfoMessage) string {
	return m.Message()
}
