package engine

import "github.com/lgbarn/fenmove-go/internal/chess"

// pawnDirection returns +1 for White (up the board) and -1 for Black.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

// pawnHomeRank is the rank a pawn of the given colour starts on. A pawn on
// it is treated as unmoved, which is how the double push is gated.
func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// promotionRank is the last rank for pawns of the given colour.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// appendPawnMoves adds single and double pushes and diagonal captures.
// En passant is not generated.
func appendPawnMoves(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	colour := board.ToMove
	dir := pawnDirection(colour)

	oneUp, ok := sq.Offset(0, dir)
	if !ok {
		// A pawn on its last rank has nowhere to go.
		return moves
	}
	canPush := board.Squares[oneUp].IsEmpty()
	if canPush {
		moves = appendPawnMove(moves, colour, sq, oneUp)
	}

	for _, df := range [2]int{-1, 1} {
		target, ok := sq.Offset(df, dir)
		if !ok {
			continue
		}
		occupant := board.Squares[target]
		if !occupant.IsEmpty() && occupant.Colour() != colour {
			moves = appendPawnMove(moves, colour, sq, target)
		}
	}

	if !canPush || sq.Rank() != pawnHomeRank(colour) {
		return moves
	}
	twoUp, ok := sq.Offset(0, 2*dir)
	if ok && board.Squares[twoUp].IsEmpty() {
		moves = append(moves, chess.NewMove(sq, twoUp))
	}
	return moves
}

// appendPawnMove adds a pawn move, fanning it out into one move per
// promotion piece when it reaches the last rank.
func appendPawnMove(moves []chess.Move, colour chess.Colour, from, to chess.Square) []chess.Move {
	if to.Rank() != promotionRank(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
	}
	return moves
}
