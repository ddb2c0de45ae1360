// Package training computes distance, speed and calorie figures for a single
// workout from raw sensor readings.
package training

import (
	"fmt"
	"math"
)

const (
	MInKm   = 1000
	MinInH  = 60
	LenStep = 0.65 // metres per step
)

// Training is a workout whose metrics can be derived from sensor data.
type Training interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() (float64, error)
	Calories() (float64, error)
}

// Base holds the fields shared by every workout and the default formulas.
type Base struct {
	action   int
	duration float64 // hours
	weight   float64 // kg
	lenStep  float64
}

// NewBase returns a Base using the default step length.
func NewBase(action int, duration, weight float64) Base {
	return Base{action: action, duration: duration, weight: weight, lenStep: LenStep}
}

// Duration returns the workout length in hours.
func (b Base) Duration() float64 { return b.duration }

// Distance returns the distance covered in km.
func (b Base) Distance() float64 {
	return float64(b.action) * b.lenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (b Base) MeanSpeed() (float64, error) {
	if b.duration == 0 {
		return 0, ErrZeroDuration
	}
	return finite("mean speed", b.Distance()/b.duration)
}

// Calories has no generic formula.
func (b Base) Calories() (float64, error) {
	return 0, ErrUnsupported
}

func (b Base) minutes() float64 {
	return b.duration * MinInH
}

func finite(what string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is %v", ErrDomain, what, v)
	}
	return v, nil
}

// ShowTrainingInfo derives the report for a completed workout.
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s mean speed: %w", t.Kind(), err)
	}
	calories, err := t.Calories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s calories: %w", t.Kind(), err)
	}
	return InfoMessage{
		TrainingType: t.Kind().String(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}
