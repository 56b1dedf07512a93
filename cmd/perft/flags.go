// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Counting options
	depth  = flag.Int("depth", 3, "Number of plies to count from the initial position")
	divide = flag.Bool("divide", false, "Print node counts per root move")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of worker goroutines for -divide (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 0, "Work channel capacity for -divide (0 = default)")
	hashSize   = flag.Int("hash", 0, "Transposition table entries shared by -divide workers (0 = disabled)")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 quiet, 1 totals, 2 rejected moves, 3 trace")
	logFile   = flag.String("l", "", "Write diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	if *bufferSize > 0 {
		cfg.Perft.BufferSize = *bufferSize
	}
	cfg.Perft.HashEntries = *hashSize
}
