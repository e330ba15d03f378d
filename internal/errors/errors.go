// Package errors provides sentinel errors and error types for fenmove.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string. Every FEN field
	// error below is reported wrapped together with this one.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPieceSymbol indicates a character that is not one of the
	// twelve FEN piece letters.
	ErrInvalidPieceSymbol = errors.New("invalid piece symbol")

	// ErrInvalidActiveColor indicates an active colour field other than "w" or "b".
	ErrInvalidActiveColor = errors.New("invalid active color, must be 'w' or 'b'")

	// ErrInvalidCastlingRights indicates a castling field outside {K,Q,k,q,-}.
	ErrInvalidCastlingRights = errors.New("invalid castling rights, must be a combination of 'K', 'Q', 'k', 'q' or '-'")

	// ErrInvalidHalfmoveClock indicates a half-move clock that is not a non-negative integer.
	ErrInvalidHalfmoveClock = errors.New("invalid half-move clock")

	// ErrInvalidFullmoveNumber indicates a full-move number that is not a non-negative integer.
	ErrInvalidFullmoveNumber = errors.New("invalid full-move number")

	// ErrInvalidSquare indicates a square outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates move text that cannot be decoded.
	ErrInvalidMove = errors.New("invalid move")

	// ErrEmptySquare indicates a move whose source square holds no piece.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with batch context: which input position
// failed and where it came from. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err   error  // The underlying error
	Index int    // 1-based position number in the input
	FEN   string // The FEN text that caused the error (if known)
	File  string // Source file name (if known)
	Line  int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("position %d", e.Index))

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
