// Package config provides configuration for the rules engine and its tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Quiet   = 0 // nothing
	Summary = 1 // totals only
	Rejects = 2 // rejected moves
	Trace   = 3 // every applied move
)

// Config holds all program configuration.
type Config struct {
	// Verbosity selects how much is written to LogFile.
	Verbosity int

	// LogFile receives diagnostic output. A nil LogFile discards it.
	LogFile io.Writer

	// Perft holds settings for move-tree counting.
	Perft *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Summary,
		LogFile:   os.Stderr,
		Perft:     NewPerftConfig(),
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logf writes a formatted line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// PerftConfig holds settings for parallel move-tree counting.
type PerftConfig struct {
	// Workers is the number of goroutines that count root moves.
	Workers int

	// BufferSize is the work channel capacity.
	BufferSize int

	// HashEntries bounds the shared transposition table. 0 disables it.
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:    runtime.GOMAXPROCS(0),
		BufferSize: 64,
	}
}

// Validate checks the perft settings.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers %d", p.Workers)
	}
	if p.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft buffer size %d", p.BufferSize)
	}
	if p.HashEntries < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft hash entries %d", p.HashEntries)
	}
	return nil
}
