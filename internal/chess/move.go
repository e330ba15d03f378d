package chess

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Move is a source/target square pair. Promotion is NoPiece unless the
// move takes a pawn to its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a plain, non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// String returns long algebraic notation: "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove decodes long algebraic notation as produced by Move.String.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", errors.ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: %w", errors.ErrInvalidMove, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: %w", errors.ErrInvalidMove, s, err)
	}
	m := NewMove(from, to)
	if len(s) == 5 {
		promo, err := ParsePromotion(s[4])
		if err != nil {
			return Move{}, fmt.Errorf("%w %q: %w", errors.ErrInvalidMove, s, err)
		}
		m.Promotion = promo
	}
	return m, nil
}
