// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the kinds a pawn may promote to, strongest first.
var PromotionPieces = [...]Piece{Queen, Rook, Bishop, Knight}

// ParsePromotion converts a promotion letter (either case) to a piece kind.
func ParsePromotion(c byte) (Piece, error) {
	switch c {
	case 'q', 'Q':
		return Queen, nil
	case 'r', 'R':
		return Rook, nil
	case 'b', 'B':
		return Bishop, nil
	case 'n', 'N':
		return Knight, nil
	}
	return NoPiece, fmt.Errorf("%w: promotion %q", errors.ErrInvalidPieceSymbol, c)
}

// ColouredPiece packs a piece kind and its colour into the single value
// stored on a square. The zero value is Empty; a non-empty value always
// carries both a kind and a colour.
type ColouredPiece uint8

// Empty is the content of an unoccupied square.
const Empty ColouredPiece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	if piece == NoPiece || piece >= NumPieceValues {
		return Empty
	}
	return ColouredPiece(uint8(piece)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// Piece extracts the piece type.
func (cp ColouredPiece) Piece() Piece {
	return Piece(cp >> PieceShift)
}

// Colour extracts the colour. It is meaningless for Empty.
func (cp ColouredPiece) Colour() Colour {
	return Colour(cp & 0x01)
}

// IsEmpty reports whether the value describes an unoccupied square.
func (cp ColouredPiece) IsEmpty() bool {
	return cp.Piece() == NoPiece
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black.
func (cp ColouredPiece) Symbol() byte {
	if cp.IsEmpty() {
		return '.'
	}
	letter := cp.Piece().Letter()
	if cp.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight", or "Empty".
func (cp ColouredPiece) String() string {
	if cp.IsEmpty() {
		return "Empty"
	}
	return cp.Colour().String() + " " + cp.Piece().String()
}

// ParseColouredPiece converts one of the twelve FEN piece letters.
func ParseColouredPiece(c byte) (ColouredPiece, error) {
	colour := White
	upper := c
	if c >= 'a' && c <= 'z' {
		colour = Black
		upper = c - ('a' - 'A')
	}
	var piece Piece
	switch upper {
	case 'P':
		piece = Pawn
	case 'N':
		piece = Knight
	case 'B':
		piece = Bishop
	case 'R':
		piece = Rook
	case 'Q':
		piece = Queen
	case 'K':
		piece = King
	default:
		return Empty, fmt.Errorf("%w %q", errors.ErrInvalidPieceSymbol, c)
	}
	return MakeColouredPiece(colour, piece), nil
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Square is a linear board index in [0,64): rank*8 + file, with rank 0
// being algebraic rank "1" and file 0 being the a-file.
type Square int8

// NoSquare marks an absent square, such as a missing en-passant target.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt converts a (file, rank) pair to a square. Both must be in [0,8).
func SquareAt(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank index, 0 for rank "1".
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// IsValid reports whether sq lies on the board.
func (sq Square) IsValid() bool {
	return sq >= A1 && sq <= H8
}

// Offset moves df files and dr ranks away from sq. The second result is
// false when the destination would leave the board; file and rank are
// range-checked separately so a step can never wrap onto the other edge.
func (sq Square) Offset(df, dr int) (Square, bool) {
	file := sq.File() + df
	rank := sq.Rank() + dr
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, false
	}
	return SquareAt(file, rank), true
}

// String returns algebraic notation ("e4"), or "-" for an off-board value.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte(FileBase + sq.File()), byte(RankBase + sq.Rank())})
}

// ParseSquare decodes algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", errors.ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", errors.ErrInvalidSquare, s)
	}
	return SquareAt(int(file-FileBase), int(rank-RankBase)), nil
}

// CastlingRights is a set of the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingLetters pairs each right with its FEN letter in output order.
var castlingLetters = [...]struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Set returns c with r added.
func (c CastlingRights) Set(r CastlingRights) CastlingRights {
	return c | r
}

// Clear returns c with r removed.
func (c CastlingRights) Clear(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field, "-" when no right remains.
func (c CastlingRights) String() string {
	var out []byte
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			out = append(out, cl.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// ParseCastlingRights decodes a FEN castling field. Any character outside
// {K,Q,k,q,-} is rejected.
func ParseCastlingRights(field string) (CastlingRights, error) {
	rights := NoCastling
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights = rights.Set(WhiteKingside)
		case 'Q':
			rights = rights.Set(WhiteQueenside)
		case 'k':
			rights = rights.Set(BlackKingside)
		case 'q':
			rights = rights.Set(BlackQueenside)
		case '-':
		default:
			return NoCastling, fmt.Errorf("%w: %q", errors.ErrInvalidCastlingRights, field)
		}
	}
	return rights, nil
}
