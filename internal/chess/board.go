package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Board represents a chess position with all state needed for FEN
// interchange. It is a plain value: copying a Board copies the position,
// and == compares two positions structurally.
type Board struct {
	// One coloured piece (or Empty) per square, indexed by Square.
	Squares [NumSquares]ColouredPiece

	// Who has the next move.
	ToMove Colour

	// Remaining castling permissions.
	Castling CastlingRights

	// The square a pawn skipped over on a double push, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board: White to move, no castling rights,
// no en-passant target, clocks 0 and 1.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		Castling:   NoCastling,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]ColouredPiece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[SquareAt(file, 0)] = W(backRank[file])
		b.Squares[SquareAt(file, 1)] = W(Pawn)
		b.Squares[SquareAt(file, 6)] = B(Pawn)
		b.Squares[SquareAt(file, 7)] = B(backRank[file])
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Get returns the content of a square, Empty for off-board values.
func (b *Board) Get(sq Square) ColouredPiece {
	if !sq.IsValid() {
		return Empty
	}
	return b.Squares[sq]
}

// PutPiece places a piece on a square, replacing any previous occupant.
func (b *Board) PutPiece(sq Square, piece Piece, colour Colour) {
	if sq.IsValid() {
		b.Squares[sq] = MakeColouredPiece(colour, piece)
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	if sq.IsValid() {
		b.Squares[sq] = Empty
	}
}

// IsPieceAt reports whether sq holds exactly this piece in this colour.
func (b *Board) IsPieceAt(sq Square, piece Piece, colour Colour) bool {
	cp := b.Get(sq)
	return !cp.IsEmpty() && cp.Piece() == piece && cp.Colour() == colour
}

// IsSquareEmpty reports whether sq is unoccupied.
func (b *Board) IsSquareEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Count returns how many pieces of the given kind and colour are on the board.
func (b *Board) Count(piece Piece, colour Colour) int {
	want := MakeColouredPiece(colour, piece)
	n := 0
	for _, cp := range b.Squares {
		if cp == want && !cp.IsEmpty() {
			n++
		}
	}
	return n
}

// MovePiece relocates the piece on m.From to m.To, clears m.From and
// passes the move to the other side. Whatever stood on m.To is discarded.
// A promotion move places the promoted kind instead of the pawn.
//
// Castling rights, the en-passant target and both clocks are left alone,
// as are the rook of a castling move and the pawn taken en passant; those
// belong to the caller. An empty source square is rejected with
// ErrEmptySquare and the board is not modified.
func (b *Board) MovePiece(m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return fmt.Errorf("%w: move %s", errors.ErrInvalidSquare, m)
	}
	moving := b.Squares[m.From]
	if moving.IsEmpty() {
		return fmt.Errorf("%w: %s", errors.ErrEmptySquare, m.From)
	}
	if m.Promotion != NoPiece {
		moving = MakeColouredPiece(moving.Colour(), m.Promotion)
	}
	b.Squares[m.To] = moving
	b.Squares[m.From] = Empty
	b.ToMove = b.ToMove.Opposite()
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String draws the board from White's side, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.Squares[SquareAt(file, rank)].Symbol())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", b.ToMove)
	return sb.String()
}
