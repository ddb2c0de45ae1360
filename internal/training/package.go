package training

import (
	"fmt"
	"math"
)

// ReadPackage builds the workout described by a sensor package: a workout
// code and its positional values.
//
// An unknown code or empty data is ErrUnknownWorkoutType. Data that does not
// fit the workout's fields is an *ArgumentError wrapping ErrArgumentMismatch.
func ReadPackage(code string, data []float64) (Training, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q has no data", ErrUnknownWorkoutType, code)
	}
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	if len(data) != kind.Arity() {
		return nil, &ArgumentError{Kind: kind, Want: kind.Arity(), Got: len(data)}
	}

	action, err := count(kind, "action", data[0])
	if err != nil {
		return nil, err
	}

	var cfg any
	switch kind {
	case Running:
		cfg = RunningConfig{Action: action, Duration: data[1], Weight: data[2]}
	case Walking:
		cfg = WalkingConfig{Action: action, Duration: data[1], Weight: data[2], Height: data[3]}
	case Swimming:
		laps, err := count(kind, "count_pool", data[4])
		if err != nil {
			return nil, err
		}
		cfg = SwimmingConfig{Action: action, Duration: data[1], Weight: data[2], LengthPool: data[3], CountPool: laps}
	}
	return New(kind, cfg)
}

// count converts a positional value that must hold a whole number.
func count(k Kind, field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &ArgumentError{Kind: k, Reason: fmt.Sprintf("%s must be a whole number, got %v", field, v)}
	}
	// Converting an out-of-range float to int is implementation-specific.
	if v < math.MinInt || v >= math.MaxInt {
		return 0, &ArgumentError{Kind: k, Reason: fmt.Sprintf("%s is out of range, got %v", field, v)}
	}
	return int(v), nil
}
