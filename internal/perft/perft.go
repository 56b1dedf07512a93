// Package perft counts the leaf nodes of the legal move tree, the standard
// check on a move generator.
package perft

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

// Count returns the number of positions reached after exactly depth plies
// of legal play from g. Each promotion choice counts as a separate move.
// Depth 0 counts g itself.
func Count(g *game.Game, depth int) uint64 {
	return count(g.Board(), g.Turn(), depth, nil)
}

// CountWithTable is Count with subtree totals cached in table, which may be
// shared between goroutines. A nil table disables caching.
func CountWithTable(g *game.Game, depth int, table *hashing.Table) uint64 {
	return count(g.Board(), g.Turn(), depth, table)
}

func count(board *chess.Board, toMove chess.Colour, depth int, table *hashing.Table) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.AllLegalMoves(board, toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var key uint64
	if table != nil {
		key = hashing.Zobrist(board, toMove)
		if nodes, ok := table.Get(key, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		next := board.Copy()
		engine.ApplyMove(next, m)
		nodes += count(next, toMove.Opposite(), depth-1, table)
	}

	if table != nil {
		table.Put(key, depth, nodes)
	}
	return nodes
}

// Divide splits Count(g, depth) by root move, counting each subtree on the
// worker pool configured in cfg.Perft. When cfg.Perft.HashEntries is set the
// workers share a transposition table of that size. Results are sorted by
// move.
func Divide(g *game.Game, depth int, cfg *config.Config) ([]Result, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	pc := cfg.Perft
	if pc == nil {
		pc = config.NewPerftConfig()
	}

	// Root moves are played here so that workers only count and never log.
	roots := g.AllLegalMoves()
	items := make([]worker.WorkItem, len(roots))
	for i, m := range roots {
		child := g.Clone()
		if err := child.MakeMove(m); err != nil {
			return nil, errors.Wrapf(err, "perft root move %s", m)
		}
		items[i] = worker.WorkItem{Game: child, Move: m, Depth: depth - 1}
	}

	var table *hashing.Table
	if pc.HashEntries > 0 {
		table = hashing.NewTable(pc.HashEntries)
	}

	pool := worker.NewPool(pc.Workers, pc.BufferSize, subtreeCounter(table))
	cfg.Logf(config.Trace, "perft: %d root moves on %d workers", len(items), pool.NumWorkers())

	results := make([]Result, 0, len(items))
	for _, r := range pool.Run(items) {
		if r.Error != nil {
			return nil, errors.Wrapf(r.Error, "perft root move %s", r.Move)
		}
		results = append(results, Result{Move: r.Move, Nodes: r.Nodes})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Move.Less(results[j].Move) })

	cfg.Logf(config.Summary, "perft depth %d: %d nodes", depth, Total(results))
	if table != nil {
		hits, misses := table.Stats()
		cfg.Logf(config.Trace, "perft: table %d entries, %d hits, %d misses", table.Len(), hits, misses)
	}
	return results, nil
}

// subtreeCounter returns a ProcessFunc that counts below the item's game,
// where the root move has already been played.
func subtreeCounter(table *hashing.Table) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Index: item.Index, Move: item.Move}
		if item.Game == nil {
			res.Error = errors.Wrapf(errors.ErrInvalidConfig, "perft root move %s: no position", item.Move)
			return res
		}
		res.Nodes = CountWithTable(item.Game, item.Depth, table)
		return res
	}
}

// Total sums the node counts of results.
func Total(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
