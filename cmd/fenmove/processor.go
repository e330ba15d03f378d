package main

import (
	"context"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/hashing"
	"github.com/lgbarn/fenmove-go/internal/output"
	"github.com/lgbarn/fenmove-go/internal/store"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// Analyser turns work items into results. A single Analyser serves every
// worker: each call builds its own Board, the Generator is read-only and
// the store is safe for concurrent use.
type Analyser struct {
	ctx   context.Context
	cfg   *config.Config
	gen   *engine.Generator
	store *store.Store // nil when caching is off
}

// NewAnalyser creates an Analyser. st may be nil.
func NewAnalyser(ctx context.Context, cfg *config.Config, st *store.Store) *Analyser {
	return &Analyser{
		ctx:   ctx,
		cfg:   cfg,
		gen:   engine.NewGenerator(),
		store: st,
	}
}

// Analyse parses the item, applies its moves and generates the move list
// and, if configured, the perft count. It is a worker.ProcessFunc.
func (a *Analyser) Analyse(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, FEN: item.FEN}
	if err := a.ctx.Err(); err != nil {
		result.Error = positionError(item, err)
		return result
	}

	board, err := engine.NewBoardFromFEN(item.FEN)
	if err == nil {
		err = engine.ApplyMoves(board, item.Moves)
	}
	if err != nil {
		result.InputMoves = item.Moves
		result.Error = positionError(item, err)
		return result
	}

	result.FEN = engine.BoardToFEN(board)
	result.Depth = a.cfg.Analysis.PerftDepth

	hash := hashing.Zobrist(board)
	if a.lookup(hash, &result) {
		result.Board = board
		a.cfg.Logf(2, "position %d: cached\n", item.Index+1)
		return result
	}

	result.Moves = a.gen.GenerateMoves(board)
	if err := a.perft(board, &result); err != nil {
		result.Error = positionError(item, err)
		return result
	}
	result.Board = board
	a.save(hash, &result)

	a.cfg.Logf(2, "position %d: %d moves\n", item.Index+1, len(result.Moves))
	return result
}

func positionError(item worker.WorkItem, err error) *errors.PositionError {
	return &errors.PositionError{
		Err:   err,
		Index: item.Index + 1,
		FEN:   item.FEN,
		File:  item.Source,
		Line:  item.Line,
	}
}

// perft fills in the node count requested by the configuration.
func (a *Analyser) perft(board *chess.Board, r *worker.ProcessResult) error {
	depth := a.cfg.Analysis.PerftDepth
	switch {
	case depth == 0:
		return nil
	case a.cfg.Analysis.Divide:
		entries, err := engine.DivideContext(a.ctx, a.gen, board, depth)
		if err != nil {
			return err
		}
		r.Divide = entries
		for _, e := range r.Divide {
			r.Nodes += e.Nodes
		}
	default:
		nodes, err := engine.PerftParallel(a.ctx, a.gen, board, depth, a.cfg.Analysis.Threads)
		if err != nil {
			return err
		}
		r.Nodes = nodes
	}
	return nil
}

// lookup answers r from the store when it holds the same position analysed
// to the same depth. Divide results are never cached.
func (a *Analyser) lookup(hash uint64, r *worker.ProcessResult) bool {
	if a.store == nil || a.cfg.Analysis.Divide {
		return false
	}
	rec, found, err := a.store.Get(hash)
	if err != nil {
		a.cfg.Logf(1, "cache read for position %d failed: %v\n", r.Index+1, err)
		return false
	}
	if !found || rec.FEN != r.FEN || rec.Depth != r.Depth {
		return false
	}

	moves := make([]chess.Move, 0, len(rec.Moves))
	for _, text := range rec.Moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return false
		}
		moves = append(moves, m)
	}
	r.Moves = moves
	r.Nodes = rec.Nodes
	r.Cached = true
	return true
}

// save records r in the store. Failures are logged, not returned: the
// cache is an optimisation.
func (a *Analyser) save(hash uint64, r *worker.ProcessResult) {
	if a.store == nil {
		return
	}
	rec := store.Record{
		FEN:   r.FEN,
		Moves: make([]string, len(r.Moves)),
		Depth: r.Depth,
		Nodes: r.Nodes,
		Hash:  hash,
	}
	for i, m := range r.Moves {
		rec.Moves[i] = m.String()
	}
	if err := a.store.Put(rec); err != nil {
		a.cfg.Logf(1, "cache write for position %d failed: %v\n", r.Index+1, err)
	}
}

// summary counts what happened to the input positions.
type summary struct {
	positions  int
	failed     int
	duplicates int
	cached     int
	written    int
}

// processPositions analyses items on the worker pool and writes the results
// in input order. Repeats are detected here, after ordering, so the first
// occurrence in the input is always the one kept. Cancelling ctx stops the
// pool and nothing is written.
func processPositions(ctx context.Context, items []worker.WorkItem, a *Analyser, detector *hashing.DuplicateDetector, cfg *config.Config) (summary, error) {
	pool := worker.NewPoolWithOptions(a.Analyse,
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(min(len(items), 100)))
	stop := context.AfterFunc(ctx, pool.Stop)
	results := pool.ProcessAll(items)
	stop()
	if err := ctx.Err(); err != nil {
		return summary{positions: len(items)}, err
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	var s summary
	for _, r := range results {
		s.positions++
		if r.Error != nil {
			s.failed++
			cfg.Logf(1, "%v\n", r.Error)
		} else if first, dup := detector.CheckAndAdd(r.Board, r.Index); dup {
			s.duplicates++
			r.Duplicate = true
			cfg.Logf(2, "position %d repeats position %d\n", r.Index+1, first+1)
			if cfg.Duplicate.Suppress {
				continue
			}
		}
		if r.Cached {
			s.cached++
		}
		if err := w.WriteResult(r); err != nil {
			return s, err
		}
		s.written++
	}
	return s, w.Close()
}
