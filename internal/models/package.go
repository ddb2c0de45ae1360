package models

// Package is one set of sensor readings: a workout code and its positional
// values, as sent by the tracker.
type Package struct {
	WorkoutType string    `json:"workout_type" yaml:"workout_type"`
	Data        []float64 `json:"data" yaml:"data"`
	Line        int       `json:"line,omitempty" yaml:"-"`
}

// SamplePackages is the reference batch processed when no input is given.
var SamplePackages = []Package{
	{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
	{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
}

// ReportRow is a computed workout report returned by the API.
type ReportRow struct {
	ID           string  `json:"id"`
	WorkoutType  string  `json:"workout_type"`
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"mean_speed_kmh"`
	Calories     float64 `json:"calories_kcal"`
	Message      string  `json:"message"`
}

// WorkoutType describes one supported workout code and the positional
// layout of its data.
type WorkoutType struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Arity  int      `json:"arity"`
	Fields []string `json:"fields"`
}
