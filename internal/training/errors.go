package training

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned for an unrecognized code or an empty package.
	ErrUnknownWorkoutType = errors.New("unknown workout type")

	// ErrArgumentMismatch is returned when package data does not fit the
	// workout's constructor.
	ErrArgumentMismatch = errors.New("argument mismatch")

	// ErrUnsupported is returned by Base.Calories; only concrete workouts
	// know their calorie formula.
	ErrUnsupported = errors.New("operation not supported by base training")

	// ErrDomain marks a calculation whose result is undefined for the inputs.
	ErrDomain = errors.New("calculation domain error")

	ErrZeroDuration = fmt.Errorf("%w: duration is zero", ErrDomain)
	ErrZeroHeight   = fmt.Errorf("%w: height is zero", ErrDomain)
)

// ArgumentError describes a package whose values do not match the workout's
// positional fields.
type ArgumentError struct {
	Kind   Kind
	Want   int
	Got    int
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %s", ErrArgumentMismatch, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s takes %d values, got %d", ErrArgumentMismatch, e.Kind, e.Want, e.Got)
}

func (e *ArgumentError) Unwrap() error {
	return ErrArgumentMismatch
}
