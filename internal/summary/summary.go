// Package summary aggregates computed workout reports.
package summary

import (
	"github.com/claude/fittracker/internal/training"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Totals holds aggregated figures for a group of workouts.
type Totals struct {
	Sessions   int     `json:"sessions"`
	DurationH  float64 `json:"duration_h"`
	DistanceKm float64 `json:"distance_km"`
	Calories   float64 `json:"calories_kcal"`
	MeanSpeed  float64 `json:"mean_speed_kmh"`
}

// TypeTotals is Totals for one workout type.
type TypeTotals struct {
	TrainingType string `json:"training_type"`
	Totals
}

// Summary is the aggregate of a batch, overall and per workout type.
type Summary struct {
	Totals
	ByType []TypeTotals `json:"by_type"`
}

type series struct {
	durations, distances, calories, speeds []float64
}

func (s *series) add(m training.InfoMessage) {
	s.durations = append(s.durations, m.Duration)
	s.distances = append(s.distances, m.Distance)
	s.calories = append(s.calories, m.Calories)
	s.speeds = append(s.speeds, m.Speed)
}

// totals sums the series. Mean speed is weighted by duration.
func (s *series) totals() Totals {
	t := Totals{
		Sessions:   len(s.speeds),
		DurationH:  floats.Sum(s.durations),
		DistanceKm: floats.Sum(s.distances),
		Calories:   floats.Sum(s.calories),
	}
	if t.Sessions == 0 {
		return t
	}
	if t.DurationH > 0 && floats.Min(s.durations) >= 0 {
		t.MeanSpeed = stat.Mean(s.speeds, s.durations)
	} else {
		t.MeanSpeed = stat.Mean(s.speeds, nil)
	}
	return t
}

// Build aggregates msgs. Types appear in order of first occurrence.
func Build(msgs []training.InfoMessage) Summary {
	var all series
	byType := map[string]*series{}
	var order []string

	for _, m := range msgs {
		all.add(m)
		s, ok := byType[m.TrainingType]
		if !ok {
			s = &series{}
			byType[m.TrainingType] = s
			order = append(order, m.TrainingType)
		}
		s.add(m)
	}

	sum := Summary{Totals: all.totals(), ByType: make([]TypeTotals, 0, len(order))}
	for _, name := range order {
		sum.ByType = append(sum.ByType, TypeTotals{TrainingType: name, Totals: byType[name].totals()})
	}
	return sum
}
