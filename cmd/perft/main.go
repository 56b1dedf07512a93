// perft counts the legal move tree from the initial chess position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := run(os.Stdout, cfg, *depth, *divide); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// run counts to depth from the initial position and writes the result to
// out, one "move: nodes" line per root move when divide is set.
func run(out io.Writer, cfg *config.Config, depth int, divide bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g := game.NewGame(cfg)
	cfg.Logf(config.Trace, "perft: game %s depth %d", g.ID(), depth)

	if !divide {
		if depth < 0 {
			return fmt.Errorf("depth %d: must not be negative", depth)
		}
		fmt.Fprintf(out, "Nodes: %d\n", perft.Count(g, depth))
		return nil
	}

	results, err := perft.Divide(g, depth, cfg)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(out, "\nMoves: %d\nTotal: %d\n", len(results), perft.Total(results))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts positions reachable by legal play from the initial chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
