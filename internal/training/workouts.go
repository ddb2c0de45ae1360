package training

import (
	"fmt"
	"math"
)

const (
	runCalMultiplier = 18
	runCalShift      = 20

	walkCalWeight      = 0.035
	walkCalSpeedHeight = 0.029
	walkSpeedExp       = 2

	swimLenStep       = 1.38
	swimCalSpeedShift = 1.1
	swimCalWeight     = 2
)

// RunningConfig holds the sensor values of a run.
type RunningConfig struct {
	Action   int
	Duration float64
	Weight   float64
}

// WalkingConfig holds the sensor values of a sports walk. Height is in cm.
type WalkingConfig struct {
	Action   int
	Duration float64
	Weight   float64
	Height   float64
}

// SwimmingConfig holds the sensor values of a pool swim. LengthPool is in
// metres, CountPool is the number of pool lengths swum.
type SwimmingConfig struct {
	Action     int
	Duration   float64
	Weight     float64
	LengthPool float64
	CountPool  int
}

// RunningTraining is a run.
type RunningTraining struct {
	Base
}

// NewRunning returns a run built from c.
func NewRunning(c RunningConfig) *RunningTraining {
	return &RunningTraining{Base: NewBase(c.Action, c.Duration, c.Weight)}
}

// Kind reports Running.
func (r *RunningTraining) Kind() Kind { return Running }

// Calories returns kcal spent: (18*speed - 20) * weight / 1000 * minutes.
func (r *RunningTraining) Calories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	kcal := (runCalMultiplier*speed - runCalShift) * r.weight / MInKm * r.minutes()
	return finite("calories", kcal)
}

// WalkingTraining is a sports walk.
type WalkingTraining struct {
	Base
	height float64
}

// NewWalking returns a sports walk built from c.
func NewWalking(c WalkingConfig) *WalkingTraining {
	return &WalkingTraining{Base: NewBase(c.Action, c.Duration, c.Weight), height: c.Height}
}

// Kind reports Walking.
func (w *WalkingTraining) Kind() Kind { return Walking }

// Calories returns kcal spent. The speed²/height term is floor-divided, so
// anything below one height contributes nothing.
func (w *WalkingTraining) Calories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if w.height == 0 {
		return 0, ErrZeroHeight
	}
	term := floorDiv(math.Pow(speed, walkSpeedExp), w.height)
	kcal := (walkCalWeight*w.weight + term*walkCalSpeedHeight*w.weight) * w.minutes()
	return finite("calories", kcal)
}

// floorDiv is a / b rounded toward negative infinity.
func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

// SwimmingTraining is a pool swim. Speed comes from pool geometry, not strokes.
type SwimmingTraining struct {
	Base
	lengthPool float64
	countPool  int
}

// NewSwimming returns a pool swim built from c, using the stroke length
// instead of the step length.
func NewSwimming(c SwimmingConfig) *SwimmingTraining {
	b := NewBase(c.Action, c.Duration, c.Weight)
	b.lenStep = swimLenStep
	return &SwimmingTraining{Base: b, lengthPool: c.LengthPool, countPool: c.CountPool}
}

// Kind reports Swimming.
func (s *SwimmingTraining) Kind() Kind { return Swimming }

// MeanSpeed returns length_pool * count_pool / 1000 / duration in km/h.
func (s *SwimmingTraining) MeanSpeed() (float64, error) {
	if s.duration == 0 {
		return 0, ErrZeroDuration
	}
	return finite("mean speed", s.lengthPool*float64(s.countPool)/MInKm/s.duration)
}

// Calories returns kcal spent: (speed + 1.1) * 2 * weight.
func (s *SwimmingTraining) Calories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return finite("calories", (speed+swimCalSpeedShift)*swimCalWeight*s.weight)
}

var (
	_ Training = (*RunningTraining)(nil)
	_ Training = (*WalkingTraining)(nil)
	_ Training = (*SwimmingTraining)(nil)
)

// New constructs the workout for k from a typed config. The config type must
// match the kind.
func New(k Kind, cfg any) (Training, error) {
	switch k {
	case Running:
		if c, ok := cfg.(RunningConfig); ok {
			return NewRunning(c), nil
		}
	case Walking:
		if c, ok := cfg.(WalkingConfig); ok {
			return NewWalking(c), nil
		}
	case Swimming:
		if c, ok := cfg.(SwimmingConfig); ok {
			return NewSwimming(c), nil
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkoutType, k)
	}
	return nil, &ArgumentError{Kind: k, Reason: fmt.Sprintf("config %T does not match", cfg)}
}
