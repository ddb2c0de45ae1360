package ingest

import "github.com/claude/fittracker/internal/summary"

// Result holds the outcome of processing a batch of sensor packages.
type Result struct {
	PackagesReceived int `json:"packages_received"`
	PackagesReported int `json:"packages_reported"`
	PackagesRejected int `json:"packages_rejected"`

	Lines   []string         `json:"lines"`
	Errors  []PackageError   `json:"errors,omitempty"`
	Summary *summary.Summary `json:"summary,omitempty"`

	Message string `json:"message,omitempty"`
}

// PackageError records why a single package was rejected.
type PackageError struct {
	Index       int    `json:"index"`
	Line        int    `json:"line,omitempty"`
	WorkoutType string `json:"workout_type"`
	Error       string `json:"error"`
}
