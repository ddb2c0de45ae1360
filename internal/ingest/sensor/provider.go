package sensor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/fittracker/internal/ingest"
	"github.com/claude/fittracker/internal/models"
	"github.com/claude/fittracker/internal/summary"
	"github.com/claude/fittracker/internal/training"
	"github.com/google/uuid"
)

// Provider turns sensor packages into workout reports.
type Provider struct {
	log      *slog.Logger
	failFast bool
}

// NewProvider creates a new sensor package provider. With failFast set, the
// first bad package aborts the batch; otherwise it is logged and skipped.
func NewProvider(log *slog.Logger, failFast bool) *Provider {
	return &Provider{log: log, failFast: failFast}
}

// WithFailFast returns a copy of p with the given fail-fast setting.
func (p *Provider) WithFailFast(failFast bool) *Provider {
	cp := *p
	cp.failFast = failFast
	return &cp
}

// Report computes the workout report for a single package.
func (p *Provider) Report(pkg models.Package) (training.InfoMessage, error) {
	t, err := training.ReadPackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		return training.InfoMessage{}, err
	}
	return training.ShowTrainingInfo(t)
}

// ReportRow computes the report for pkg and stamps it with a fresh ID.
func (p *Provider) ReportRow(pkg models.Package) (models.ReportRow, error) {
	info, err := p.Report(pkg)
	if err != nil {
		return models.ReportRow{}, err
	}
	return models.ReportRow{
		ID:           uuid.NewString(),
		WorkoutType:  pkg.WorkoutType,
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Message:      info.Message(),
	}, nil
}

// WorkoutTypes lists the supported workout codes in catalogue order.
func WorkoutTypes() []models.WorkoutType {
	types := make([]models.WorkoutType, 0, len(training.Kinds))
	for _, k := range training.Kinds {
		types = append(types, models.WorkoutType{
			Code:   k.Code(),
			Name:   k.String(),
			Arity:  k.Arity(),
			Fields: k.Fields(),
		})
	}
	return types
}

// Process reports each package in input order, writing one line per report
// to w (which may be nil).
func (p *Provider) Process(ctx context.Context, pkgs []models.Package, w io.Writer) (*ingest.Result, error) {
	result := &ingest.Result{PackagesReceived: len(pkgs)}
	var msgs []training.InfoMessage

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		info, err := p.Report(pkg)
		if err != nil {
			result.PackagesRejected++
			result.Errors = append(result.Errors, ingest.PackageError{
				Index:       i,
				Line:        pkg.Line,
				WorkoutType: pkg.WorkoutType,
				Error:       err.Error(),
			})
			if p.failFast {
				return result, fmt.Errorf("package %d (%s): %w", i+1, pkg.WorkoutType, err)
			}
			p.log.Warn("skipping package", "index", i, "line", pkg.Line, "workout_type", pkg.WorkoutType, "error", err)
			continue
		}

		line := info.Message()
		if w != nil {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return result, fmt.Errorf("writing report: %w", err)
			}
		}
		result.Lines = append(result.Lines, line)
		result.PackagesReported++
		msgs = append(msgs, info)
	}

	s := summary.Build(msgs)
	result.Summary = &s

	if result.PackagesRejected > 0 {
		result.Message = fmt.Sprintf("%d of %d packages were rejected", result.PackagesRejected, result.PackagesReceived)
	}
	p.log.Debug("batch processed", "received", result.PackagesReceived, "reported", result.PackagesReported, "rejected", result.PackagesRejected)

	return result, nil
}

// ProcessReader parses a package file from r and processes it.
func (p *Provider) ProcessReader(ctx context.Context, r io.Reader, w io.Writer) (*ingest.Result, error) {
	pkgs, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing packages: %w", err)
	}
	return p.Process(ctx, pkgs, w)
}
