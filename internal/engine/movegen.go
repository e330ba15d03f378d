package engine

import "github.com/lgbarn/fenmove-go/internal/chess"

// Direction is one of the eight ray directions used by sliding pieces.
// The order is fixed: the four orthogonals come first, then the diagonals
// in pairs, so rooks use [North, NorthWest) and bishops use [NorthWest, end).
type Direction int

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
	NumDirections
)

// directionOffsets holds the flat index step for each Direction.
var directionOffsets = [NumDirections]int{8, -8, -1, 1, 7, -7, 9, -9}

// Offset returns the flat square index step for d.
func (d Direction) Offset() int {
	return directionOffsets[d]
}

// String returns the compass name of d.
func (d Direction) String() string {
	names := [NumDirections]string{"N", "S", "W", "E", "NW", "SE", "NE", "SW"}
	if d >= 0 && d < NumDirections {
		return names[d]
	}
	return "?"
}

// knightDeltas are (file, rank) steps.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Generator produces pseudo-legal moves: moves that respect piece
// geometry and occupancy but are not checked for king safety. It holds
// only immutable tables, so one Generator may serve many boards and
// goroutines.
type Generator struct {
	squaresToEdge [chess.NumSquares][NumDirections]int
}

// NewGenerator builds a Generator and precomputes its edge distances.
func NewGenerator() *Generator {
	g := &Generator{}
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			north := chess.BoardSize - 1 - rank
			south := rank
			west := file
			east := chess.BoardSize - 1 - file

			g.squaresToEdge[chess.SquareAt(file, rank)] = [NumDirections]int{
				North:     north,
				South:     south,
				West:      west,
				East:      east,
				NorthWest: min(north, west),
				SouthEast: min(south, east),
				NorthEast: min(north, east),
				SouthWest: min(south, west),
			}
		}
	}
	return g
}

// SquaresToEdge returns how many steps sq can take in direction d before
// leaving the board.
func (g *Generator) SquaresToEdge(sq chess.Square, d Direction) int {
	return g.squaresToEdge[sq][d]
}

// GenerateMoves returns every pseudo-legal move for the side to move.
// Each call returns a new slice. Kings are not moved here: king steps
// and castling depend on attack information this package does not have.
func (g *Generator) GenerateMoves(board *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.A1; sq <= chess.H8; sq++ {
		moves = g.appendMovesFrom(moves, board, sq)
	}
	return moves
}

// GenerateMovesFrom returns the pseudo-legal moves of the piece on sq, or
// nothing if sq is empty or holds a piece of the side not to move.
func (g *Generator) GenerateMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	if !sq.IsValid() {
		return nil
	}
	return g.appendMovesFrom(nil, board, sq)
}

func (g *Generator) appendMovesFrom(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	cp := board.Squares[sq]
	if cp.IsEmpty() || cp.Colour() != board.ToMove {
		return moves
	}

	switch cp.Piece() {
	case chess.Bishop:
		return g.appendSlidingMoves(moves, board, sq, NorthWest, NumDirections)
	case chess.Rook:
		return g.appendSlidingMoves(moves, board, sq, North, NorthWest)
	case chess.Queen:
		return g.appendSlidingMoves(moves, board, sq, North, NumDirections)
	case chess.Knight:
		return appendKnightMoves(moves, board, sq)
	case chess.Pawn:
		return appendPawnMoves(moves, board, sq)
	}
	return moves
}

// appendSlidingMoves casts rays from sq in directions [first, last). A ray
// stops in front of a friendly piece and on top of an enemy one.
func (g *Generator) appendSlidingMoves(moves []chess.Move, board *chess.Board, sq chess.Square, first, last Direction) []chess.Move {
	for d := first; d < last; d++ {
		offset := d.Offset()
		for n := 1; n <= g.squaresToEdge[sq][d]; n++ {
			target := sq + chess.Square(offset*n)
			occupant := board.Squares[target]
			if occupant.IsEmpty() {
				moves = append(moves, chess.NewMove(sq, target))
				continue
			}
			if occupant.Colour() != board.ToMove {
				moves = append(moves, chess.NewMove(sq, target))
			}
			break
		}
	}
	return moves
}

// appendKnightMoves adds knight jumps to empty or enemy-held squares.
func appendKnightMoves(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	for _, delta := range knightDeltas {
		target, ok := sq.Offset(delta[0], delta[1])
		if !ok {
			continue
		}
		occupant := board.Squares[target]
		if occupant.IsEmpty() || occupant.Colour() != board.ToMove {
			moves = append(moves, chess.NewMove(sq, target))
		}
	}
	return moves
}
