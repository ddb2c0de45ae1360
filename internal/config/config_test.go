package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 9090
auth:
  api_key: "test-key-123"
tailscale:
  enabled: true
  hostname: "tracker"
batch:
  fail_fast: true
  packages:
    - workout_type: RUN
      data: [15000, 1, 75]
    - workout_type: SWM
      data: [720, 1, 80, 25, 40]
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "tracker" {
		t.Errorf("tailscale = %+v", cfg.Tailscale)
	}
	// state_dir not set in YAML keeps the default
	if cfg.Tailscale.StateDir != "tsnet-state" {
		t.Errorf("tailscale.state_dir = %q, want default", cfg.Tailscale.StateDir)
	}
	if !cfg.Batch.FailFast {
		t.Error("batch.fail_fast = false, want true")
	}
	if len(cfg.Batch.Packages) != 2 {
		t.Fatalf("batch.packages = %d, want 2", len(cfg.Batch.Packages))
	}
	if p := cfg.Batch.Packages[1]; p.WorkoutType != "SWM" || len(p.Data) != 5 || p.Data[3] != 25 {
		t.Errorf("batch.packages[1] = %+v", p)
	}
}

// TestLoadDefaults verifies that an empty path yields the defaults with the
// sample batch.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if len(cfg.Batch.Packages) != 3 {
		t.Errorf("batch.packages = %d, want 3 sample packages", len(cfg.Batch.Packages))
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale enabled by default")
	}
}

// TestDefaultDoesNotAliasSamples verifies that mutating the default batch
// leaves the shared sample list untouched.
func TestDefaultDoesNotAliasSamples(t *testing.T) {
	a := Default()
	a.Batch.Packages[0].WorkoutType = "XXX"
	b := Default()
	if b.Batch.Packages[0].WorkoutType != "SWM" {
		t.Errorf("sample package mutated: %q", b.Batch.Packages[0].WorkoutType)
	}
}

// TestEnvOverride verifies that FITTRACKER_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FITTRACKER_SERVER_PORT", "9999")
	t.Setenv("FITTRACKER_AUTH_API_KEY", "env-key")
	t.Setenv("FITTRACKER_BATCH_FAIL_FAST", "false")
	t.Setenv("FITTRACKER_TAILSCALE_HOSTNAME", "env-host")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	if cfg.Batch.FailFast {
		t.Error("batch.fail_fast = true, want env override false")
	}
	if cfg.Tailscale.Hostname != "env-host" {
		t.Errorf("tailscale.hostname = %q, want env-host", cfg.Tailscale.Hostname)
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestValidationErrors verifies that invalid configs are rejected.
func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"tailscale without hostname", "tailscale:\n  enabled: true\n  hostname: \"\"\n"},
		{"package without type", "batch:\n  packages:\n    - data: [1, 2, 3]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
