package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/claude/fittracker/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Batch     BatchConfig     `yaml:"batch"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type BatchConfig struct {
	FailFast bool             `yaml:"fail_fast"`
	Packages []models.Package `yaml:"packages"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns the configuration used when no file is given: a local
// server on port 8080 and the reference sample batch.
func Default() *Config {
	pkgs := make([]models.Package, len(models.SamplePackages))
	copy(pkgs, models.SamplePackages)
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Tailscale: TailscaleConfig{
			Hostname: "fittracker",
			StateDir: "tsnet-state",
		},
		Batch: BatchConfig{Packages: pkgs},
	}
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. An empty path skips the file.
// Env vars use the prefix FITTRACKER_ and underscore-separated paths:
//
//	FITTRACKER_SERVER_HOST, FITTRACKER_SERVER_PORT,
//	FITTRACKER_AUTH_API_KEY,
//	FITTRACKER_TAILSCALE_ENABLED, FITTRACKER_TAILSCALE_HOSTNAME,
//	FITTRACKER_TAILSCALE_STATE_DIR,
//	FITTRACKER_BATCH_FAIL_FAST
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACKER_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FITTRACKER_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FITTRACKER_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("FITTRACKER_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	if v := os.Getenv("FITTRACKER_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("FITTRACKER_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("FITTRACKER_BATCH_FAIL_FAST"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Batch.FailFast = b
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	for i, p := range c.Batch.Packages {
		if p.WorkoutType == "" {
			return fmt.Errorf("batch.packages[%d].workout_type is required", i)
		}
	}
	return nil
}
