package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/claude/fittracker/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) workoutTypesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	types, err := h.calc.WorkoutTypes(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, types)
}

func (h *handlers) sampleReport(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	result, err := h.calc.ProcessBatch(ctx, formatPackages(models.SamplePackages), false)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, result)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// formatPackages renders packages in the line format the batch parser reads.
func formatPackages(pkgs []models.Package) string {
	var b strings.Builder
	for _, p := range pkgs {
		b.WriteString(p.WorkoutType)
		for _, v := range p.Data {
			b.WriteByte(';')
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
