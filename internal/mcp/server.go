package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(calc Calculator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("fittracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("fittracker workout calculator. Turns sensor packages (a workout code RUN, WLK or SWM plus positional readings) into distance, mean speed and calories reports."),
	)

	h := &handlers{calc: calc, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolCalculateWorkout, Handler: h.calculateWorkout},
		server.ServerTool{Tool: toolProcessBatch, Handler: h.processBatch},
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypesResource},
		server.ServerResource{Resource: resSampleReport, Handler: h.sampleReport},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	calc Calculator
	log  *slog.Logger
}

// --- Resource definitions ---

var resWorkoutTypes = mcp.NewResource(
	"fittracker://workout_types",
	"Workout Types",
	mcp.WithResourceDescription("Supported workout codes with the positional layout of their data"),
	mcp.WithMIMEType("application/json"),
)

var resSampleReport = mcp.NewResource(
	"fittracker://sample_report",
	"Sample Report",
	mcp.WithResourceDescription("Reports and summary for the reference batch of one swim, one run and one walk"),
	mcp.WithMIMEType("application/json"),
)
