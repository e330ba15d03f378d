package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/fenmove-go/internal/chess"
)

// Placement is one piece for BoardWith.
type Placement struct {
	Square chess.Square
	Piece  chess.Piece
	Colour chess.Colour
}

// BoardWith returns an otherwise empty board holding the given pieces,
// with toMove to play.
func BoardWith(toMove chess.Colour, pieces ...Placement) *chess.Board {
	b := chess.NewBoard()
	b.ToMove = toMove
	for _, p := range pieces {
		b.PutPiece(p.Square, p.Piece, p.Colour)
	}
	return b
}

// MustMove parses long algebraic move text, failing the test on error.
func MustMove(t *testing.T, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

// Moves parses a list of long algebraic moves.
func Moves(t *testing.T, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(texts))
	for _, s := range texts {
		moves = append(moves, MustMove(t, s))
	}
	return moves
}

// AssertSameMoves compares two move lists ignoring order.
func AssertSameMoves(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Move) bool { return a.String() < b.String() }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: moves mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("moves mismatch (-want +got):\n%s", diff)
		}
	}
}
