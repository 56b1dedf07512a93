package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.LogFile == nil {
		t.Error("LogFile should default to stderr, got nil")
	}
	if cfg.Perft == nil {
		t.Fatal("Perft should not be nil")
	}
	if cfg.Perft.Workers < 1 {
		t.Errorf("Perft.Workers = %d, want >= 1", cfg.Perft.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "defaults",
			cfg:     NewConfig(),
			wantErr: false,
		},
		{
			name:    "nil perft section",
			cfg:     &Config{Verbosity: Quiet},
			wantErr: false,
		},
		{
			name:    "negative verbosity",
			cfg:     &Config{Verbosity: -1},
			wantErr: true,
		},
		{
			name:    "zero workers",
			cfg:     &Config{Perft: &PerftConfig{Workers: 0, BufferSize: 1}},
			wantErr: true,
		},
		{
			name:    "zero buffer",
			cfg:     &Config{Perft: &PerftConfig{Workers: 2, BufferSize: 0}},
			wantErr: true,
		},
		{
			name:    "negative hash entries",
			cfg:     &Config{Perft: &PerftConfig{Workers: 1, BufferSize: 1, HashEntries: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_Logf verifies verbosity gating of log output
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(Rejects).Build()

	cfg.Logf(Summary, "summary %d", 1)
	cfg.Logf(Rejects, "rejected %s", "e2e5")
	cfg.Logf(Trace, "trace line")

	out := buf.String()
	if !strings.Contains(out, "summary 1\n") {
		t.Errorf("log %q should contain summary line", out)
	}
	if !strings.Contains(out, "rejected e2e5\n") {
		t.Errorf("log %q should contain rejected line", out)
	}
	if strings.Contains(out, "trace line") {
		t.Errorf("log %q should not contain trace line", out)
	}
}

// TestConfig_LogfNil verifies that a nil config or writer is silent
func TestConfig_LogfNil(t *testing.T) {
	var cfg *Config
	cfg.Logf(Quiet, "ignored")

	cfg = &Config{Verbosity: Trace}
	cfg.Logf(Quiet, "ignored")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithLog(buf).
		WithVerbosity(Trace).
		WithWorkers(3).
		WithBufferSize(7).
		WithHashEntries(1024).
		Build()

	if cfg.LogFile != buf {
		t.Error("WithLog did not set LogFile")
	}
	if cfg.Verbosity != Trace {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Trace)
	}
	if cfg.Perft.Workers != 3 {
		t.Errorf("Perft.Workers = %d, want 3", cfg.Perft.Workers)
	}
	if cfg.Perft.BufferSize != 7 {
		t.Errorf("Perft.BufferSize = %d, want 7", cfg.Perft.BufferSize)
	}
	if cfg.Perft.HashEntries != 1024 {
		t.Errorf("Perft.HashEntries = %d, want 1024", cfg.Perft.HashEntries)
	}
}
