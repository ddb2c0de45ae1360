package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fittracker/internal/config"
	"github.com/claude/fittracker/internal/ingest/sensor"
	fitmcp "github.com/claude/fittracker/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	serverURL := flag.String("server", "", "fittracker server URL; computes locally when empty")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fittracker-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var calc fitmcp.Calculator
	if *serverURL != "" {
		calc = fitmcp.NewHTTPClient(*serverURL, cfg.Auth.APIKey)
		log.Info("using remote calculator", "server", *serverURL)
	} else {
		calc = fitmcp.NewLocal(sensor.NewProvider(log, cfg.Batch.FailFast))
	}

	s := fitmcp.New(calc, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
