package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/claude/fittracker/internal/config"
	"github.com/claude/fittracker/internal/ingest"
	"github.com/claude/fittracker/internal/ingest/sensor"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	packagesPath := flag.String("packages", "", "package file to process, one CODE;v1;v2;... per line")
	failFast := flag.Bool("fail-fast", false, "stop at the first bad package")
	debug := flag.Bool("debug", false, "enable debug logging")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fittracker", Version)
		return
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	// Reports go to stdout; logs stay on stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := sensor.NewProvider(log, cfg.Batch.FailFast || *failFast)

	var result *ingest.Result
	if *packagesPath != "" {
		f, err := os.Open(*packagesPath)
		if err != nil {
			log.Error("failed to open package file", "path", *packagesPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		result, err = provider.ProcessReader(ctx, f, os.Stdout)
		if err != nil {
			log.Error("batch failed", "error", err)
			os.Exit(1)
		}
	} else {
		result, err = provider.Process(ctx, cfg.Batch.Packages, os.Stdout)
		if err != nil {
			log.Error("batch failed", "error", err)
			os.Exit(1)
		}
	}

	log.Debug("batch complete", "reported", result.PackagesReported, "rejected", result.PackagesRejected)
	if result.PackagesRejected > 0 {
		log.Warn(result.Message)
		os.Exit(1)
	}
}
