package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/fenmove-go/internal/chess"
	fenerrors "github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.IsPieceAt(chess.E1, chess.King, chess.White) &&
					b.IsPieceAt(chess.E8, chess.King, chess.Black) &&
					b.IsPieceAt(chess.E2, chess.Pawn, chess.White) &&
					b.IsPieceAt(chess.E7, chess.Pawn, chess.Black) &&
					b.ToMove == chess.White &&
					b.Castling == chess.AllCastling
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.IsPieceAt(chess.E4, chess.Pawn, chess.White) &&
					b.IsSquareEmpty(chess.E2) &&
					b.ToMove == chess.Black &&
					b.EnPassant == chess.E3
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling.Has(chess.WhiteKingside) &&
					!b.Castling.Has(chess.WhiteQueenside) &&
					!b.Castling.Has(chess.BlackKingside) &&
					b.Castling.Has(chess.BlackQueenside)
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 17 42",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 17 && b.MoveNumber == 42
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed:\n%s", board)
			}
		})
	}
}

func TestNewBoardFromFEN_StartingPosition(t *testing.T) {
	board, err := NewBoardFromFEN(InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *board, *NewInitialBoard())
}

func TestNewBoardFromFEN_EmptyBoard(t *testing.T) {
	board, err := NewBoardFromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *board, *chess.NewBoard())
}

func TestNewBoardFromFEN_Sicilian(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertNoError(t, ApplyMoves(board, []string{"e2e4", "c7c5", "g1f3"}))
	// MovePiece does not maintain the clocks.
	board.HalfmoveClock = 1
	board.MoveNumber = 2

	want, err := NewBoardFromFEN("rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *board, *want)
}

func TestNewBoardFromFEN_Puzzle(t *testing.T) {
	board := testutil.BoardWith(chess.White,
		testutil.Placement{Square: chess.D1, Piece: chess.Bishop, Colour: chess.Black},
		testutil.Placement{Square: chess.A2, Piece: chess.Pawn, Colour: chess.White},
		testutil.Placement{Square: chess.B2, Piece: chess.Pawn, Colour: chess.White},
		testutil.Placement{Square: chess.F2, Piece: chess.King, Colour: chess.White},
		testutil.Placement{Square: chess.H2, Piece: chess.Pawn, Colour: chess.White},
		testutil.Placement{Square: chess.D4, Piece: chess.Pawn, Colour: chess.White},
		testutil.Placement{Square: chess.E4, Piece: chess.Pawn, Colour: chess.Black},
		testutil.Placement{Square: chess.A6, Piece: chess.Pawn, Colour: chess.Black},
		testutil.Placement{Square: chess.G6, Piece: chess.Pawn, Colour: chess.Black},
		testutil.Placement{Square: chess.B7, Piece: chess.Pawn, Colour: chess.Black},
		testutil.Placement{Square: chess.E7, Piece: chess.Pawn, Colour: chess.Black},
		testutil.Placement{Square: chess.C7, Piece: chess.Rook, Colour: chess.White},
		testutil.Placement{Square: chess.H7, Piece: chess.Pawn, Colour: chess.Black},
		testutil.Placement{Square: chess.F8, Piece: chess.King, Colour: chess.Black},
	)
	board.HalfmoveClock = 1
	board.MoveNumber = 31

	got, err := NewBoardFromFEN("5k2/1pR1p2p/p5p1/8/3Pp3/8/PP3K1P/3b4 w - - 1 31")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *got, *board)
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"bad piece digit", "9/8/8/8/8/8/8/8 w - - 0 1", fenerrors.ErrInvalidPieceSymbol},
		{"bad piece letter", "8/8/8/3x4/8/8/8/8 w - - 0 1", fenerrors.ErrInvalidPieceSymbol},
		{"bad active colour", "8/8/8/8/8/8/8/8 - - - 0 1", fenerrors.ErrInvalidActiveColor},
		{"upper case colour", "8/8/8/8/8/8/8/8 W - - 0 1", fenerrors.ErrInvalidActiveColor},
		{"bad castling", "8/8/8/8/8/8/8/8 w bw - 1 1", fenerrors.ErrInvalidCastlingRights},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - hh 0 1", fenerrors.ErrInvalidSquare},
		{"short en passant", "8/8/8/8/8/8/8/8 w - h 0 1", fenerrors.ErrInvalidSquare},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -1 1", fenerrors.ErrInvalidHalfmoveClock},
		{"text halfmove", "8/8/8/8/8/8/8/8 w - - x 1", fenerrors.ErrInvalidHalfmoveClock},
		{"negative fullmove", "8/8/8/8/8/8/8/8 w - - 1 -1", fenerrors.ErrInvalidFullmoveNumber},
		{"too few fields", "8/8/8/8/8/8/8/8 w - -", fenerrors.ErrInvalidFEN},
		{"too many fields", "8/8/8/8/8/8/8/8 w - - 0 1 extra", fenerrors.ErrInvalidFEN},
		{"empty string", "", fenerrors.ErrInvalidFEN},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", fenerrors.ErrInvalidFEN},
		{"rank overflow by piece", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1", fenerrors.ErrInvalidFEN},
		{"rank overflow by digit", "7p1/8/8/8/8/8/8/44P w - - 0 1", fenerrors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if board != nil {
				t.Errorf("NewBoardFromFEN() returned a board on error")
			}
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertErrorIs(t, err, fenerrors.ErrInvalidFEN)
		})
	}
}

func TestNewBoardFromFEN_ErrorMessageQuotesInput(t *testing.T) {
	_, err := NewBoardFromFEN("8/8/8/8/8/8/8/8 w - - 1 abc")
	testutil.AssertContains(t, err.Error(), `"abc"`)
	testutil.AssertContains(t, err.Error(), "full-move number")
}

func TestBoardToFEN(t *testing.T) {
	testutil.AssertEqual(t, BoardToFEN(chess.NewBoard()), "8/8/8/8/8/8/8/8 w - - 0 1")
	testutil.AssertEqual(t, BoardToFEN(NewInitialBoard()), InitialFEN)
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	tests := []struct {
		name     string
		moves    []string
		halfmove uint
		fullmove uint
		clearAll bool
		want     string
	}{
		{
			name:     "italian game",
			moves:    []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"},
			halfmove: 3,
			fullmove: 3,
			want:     "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		},
		{
			name: "advanced caro-kann",
			moves: []string{
				"e2e4", "c7c6", "d2d4", "d7d5", "e4e5", "c8f5",
				"f1e2", "e7e6", "g1f3", "c6c5", "c1e3",
			},
			halfmove: 1,
			fullmove: 6,
			want:     "rn1qkbnr/pp3ppp/4p3/2ppPb2/3P4/4BN2/PPP1BPPP/RN1QK2R b KQkq - 1 6",
		},
		{
			// Castling is played as two separate relocations, each of
			// which passes the turn, so they cancel out.
			name: "marshall attack",
			moves: []string{
				"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5a4", "g8f6",
				"e1g1", "h1f1",
				"f8e7", "f1e1", "b7b5", "a4b3",
				"e8g8", "h8f8",
				"c2c3", "d7d5",
			},
			halfmove: 0,
			fullmove: 9,
			clearAll: true,
			want:     "r1bq1rk1/2p1bppp/p1n2n2/1p1pp3/4P3/1BP2N2/PP1P1PPP/RNBQR1K1 w - - 0 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewInitialBoard()
			testutil.AssertNoError(t, ApplyMoves(board, tt.moves))
			board.HalfmoveClock = tt.halfmove
			board.MoveNumber = tt.fullmove
			if tt.clearAll {
				board.Castling = chess.NoCastling
			}
			testutil.AssertEqual(t, BoardToFEN(board), tt.want)
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"5k2/1pR1p2p/p5p1/8/3Pp3/8/PP3K1P/3b4 w - - 1 31",
		"4k3/8/8/8/8/8/8/4K3 b Kq - 12 40",
		"Qr5k/r7/2N5/8/8/8/8/6K1 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}

			result := BoardToFEN(board)
			testutil.AssertEqual(t, result, fen, "canonical FEN should be reproduced")

			board2, err := NewBoardFromFEN(result)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(result) error = %v", err)
			}
			testutil.AssertEqual(t, *board2, *board)
		})
	}
}

func TestFENRoundTrip_ShortRank(t *testing.T) {
	// A rank that stops early decodes, and re-encodes in canonical form.
	board, err := NewBoardFromFEN("4k/8/8/8/8/8/8/4K w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, BoardToFEN(board), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	again, err := NewBoardFromFEN(BoardToFEN(board))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *again, *board)
}

func TestApplyMoves_Errors(t *testing.T) {
	board := NewInitialBoard()
	err := ApplyMoves(board, []string{"e2e4", "e4"})
	if !errors.Is(err, fenerrors.ErrInvalidMove) {
		t.Errorf("error = %v; want ErrInvalidMove", err)
	}
	testutil.AssertContains(t, err.Error(), "move 2")

	board = NewInitialBoard()
	err = ApplyMoves(board, []string{"e3e4"})
	if !errors.Is(err, fenerrors.ErrEmptySquare) {
		t.Errorf("error = %v; want ErrEmptySquare", err)
	}
}
