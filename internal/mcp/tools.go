package mcp

import (
	"context"

	"github.com/claude/fittracker/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolCalculateWorkout = mcp.NewTool("calculate_workout",
	mcp.WithDescription("Compute the report for one sensor package. Returns training type, duration, distance, mean speed, calories and the formatted message."),
	mcp.WithString("workout_type", mcp.Required(), mcp.Description("Workout code"), mcp.Enum("RUN", "WLK", "SWM")),
	mcp.WithArray("data", mcp.Required(),
		mcp.Description("Positional readings. RUN: action, duration_h, weight_kg. WLK: adds height_cm. SWM: adds length_pool_m, count_pool."),
		mcp.Items(map[string]any{"type": "number"}),
	),
)

var toolProcessBatch = mcp.NewTool("process_batch",
	mcp.WithDescription("Process a package file, one package per line as CODE;v1;v2;... Returns the report lines, per-package errors and a summary by training type."),
	mcp.WithString("packages", mcp.Required(), mcp.Description("Package file contents. Blank lines and lines starting with # are ignored.")),
	mcp.WithBoolean("fail_fast", mcp.Description("Stop at the first bad package instead of skipping it. Defaults to false.")),
)

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List supported workout codes with their display names and data fields."),
)

// --- Tool handlers ---

func (h *handlers) calculateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("workout_type")
	if err != nil {
		return mcp.NewToolResultError("workout_type parameter is required"), nil
	}
	data, err := req.RequireFloatSlice("data")
	if err != nil {
		return mcp.NewToolResultError("data must be an array of numbers"), nil
	}

	row, err := h.calc.Calculate(ctx, models.Package{WorkoutType: code, Data: data})
	if err != nil {
		h.log.Warn("mcp calculate_workout", "workout_type", code, "error", err)
		return mcp.NewToolResultError("calculation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(row)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) processBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	packages, err := req.RequireString("packages")
	if err != nil {
		return mcp.NewToolResultError("packages parameter is required"), nil
	}

	res, err := h.calc.ProcessBatch(ctx, packages, req.GetBool("fail_fast", false))
	if err != nil {
		h.log.Error("mcp process_batch", "error", err)
		return mcp.NewToolResultError("batch failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(res)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutTypes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := h.calc.WorkoutTypes(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_types", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(types)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
