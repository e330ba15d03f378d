// Package engine provides FEN interchange and pseudo-legal move generation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of whitespace separated fields in a FEN string.
const fenFields = 6

// fenError reports a field failure so that it matches both ErrInvalidFEN
// and the field-specific sentinel.
func fenError(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", errors.ErrInvalidFEN, kind, fmt.Sprintf(format, args...))
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", errors.ErrInvalidFEN, fenFields, len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("%w: more than %d ranks in %q", errors.ErrInvalidFEN, chess.BoardSize, positions)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fmt.Errorf("%w: rank %d overflows in %q", errors.ErrInvalidFEN, rank+1, positions)
			}
		default:
			cp, err := chess.ParseColouredPiece(c)
			if err != nil {
				return fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("%w: rank %d overflows in %q", errors.ErrInvalidFEN, rank+1, positions)
			}
			board.Squares[chess.SquareAt(file, rank)] = cp
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(errors.ErrInvalidActiveColor, "%q", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	rights, err := chess.ParseCastlingRights(field)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	board.Castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("%w: en passant: %w", errors.ErrInvalidFEN, err)
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	n, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fenError(errors.ErrInvalidHalfmoveClock, "%q", halfmove)
	}
	board.HalfmoveClock = uint(n)

	n, err = strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return fenError(errors.ErrInvalidFullmoveNumber, "%q", fullmove)
	}
	board.MoveNumber = uint(n)
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			cp := board.Squares[chess.SquareAt(file, rank)]
			if cp.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cp.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// ApplyMoves plays long algebraic moves on board in order. It stops at
// the first move that fails to decode or whose source square is empty.
func ApplyMoves(board *chess.Board, moves []string) error {
	for i, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
		if err := board.MovePiece(m); err != nil {
			return errors.Wrapf(err, "move %d %s", i+1, text)
		}
	}
	return nil
}
