package mcp

import (
	"context"
	"strings"

	"github.com/claude/fittracker/internal/ingest"
	"github.com/claude/fittracker/internal/ingest/sensor"
	"github.com/claude/fittracker/internal/models"
)

// Calculator abstracts where workout reports are computed for MCP tools.
// Both Local (in process) and HTTPClient (remote via REST API) satisfy it.
type Calculator interface {
	Calculate(ctx context.Context, pkg models.Package) (models.ReportRow, error)
	ProcessBatch(ctx context.Context, packages string, failFast bool) (*ingest.Result, error)
	WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error)
}

// Local computes reports in process with a sensor provider.
type Local struct {
	sensor *sensor.Provider
}

// Compile-time check: Local satisfies Calculator.
var _ Calculator = (*Local)(nil)

// NewLocal wraps a sensor provider as a Calculator.
func NewLocal(p *sensor.Provider) *Local {
	return &Local{sensor: p}
}

func (l *Local) Calculate(_ context.Context, pkg models.Package) (models.ReportRow, error) {
	return l.sensor.ReportRow(pkg)
}

func (l *Local) ProcessBatch(ctx context.Context, packages string, failFast bool) (*ingest.Result, error) {
	return l.sensor.WithFailFast(failFast).ProcessReader(ctx, strings.NewReader(packages), nil)
}

func (l *Local) WorkoutTypes(context.Context) ([]models.WorkoutType, error) {
	return sensor.WorkoutTypes(), nil
}
