package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/fenmove-go/internal/chess"
)

// DivideEntry is the pseudo-legal node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the pseudo-legal move tree to the given
// depth. Moves are played on copies, so board is left untouched. Because
// generation skips king safety, the counts differ from legal perft.
func Perft(g *Generator, board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.GenerateMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := *board
		if err := child.MovePiece(m); err != nil {
			continue
		}
		nodes += Perft(g, &child, depth-1)
	}
	return nodes
}

// Divide returns the node count below each root move, in generation order.
func Divide(g *Generator, board *chess.Board, depth int) []DivideEntry {
	entries, _ := DivideContext(context.Background(), g, board, depth)
	return entries
}

// DivideContext is Divide with ctx checked before each root move. On
// cancellation it returns the context's error and no entries.
func DivideContext(ctx context.Context, g *Generator, board *chess.Board, depth int) ([]DivideEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, nil
	}
	moves := g.GenerateMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		child := *board
		if err := child.MovePiece(m); err != nil {
			continue
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(g, &child, depth-1)})
	}
	return entries, nil
}

// PerftParallel is Perft with the root moves spread over up to threads
// goroutines. Every goroutine works on its own copy of the board; the
// Generator is shared read-only. With one thread the root moves run in
// order, so it also serves as a cancellable sequential Perft.
func PerftParallel(ctx context.Context, g *Generator, board *chess.Board, depth, threads int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if depth <= 1 {
		return Perft(g, board, depth), nil
	}
	if threads < 1 {
		threads = 1
	}

	root := *board
	moves := g.GenerateMoves(&root)

	var nodes atomic.Uint64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)

	for _, m := range moves {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := root
			if err := child.MovePiece(m); err != nil {
				return err
			}
			nodes.Add(Perft(g, &child, depth-1))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}
