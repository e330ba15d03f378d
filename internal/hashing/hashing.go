// Package hashing provides Zobrist hashing and duplicate detection for
// chess positions.
package hashing

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
)

// Zobrist keys. They come from a fixed-seed generator so a hash is stable
// across runs and can be used as a persistent cache key.
var (
	pieceKeys     [2][chess.NumPieceValues][chess.NumSquares]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	initKeys()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initKeys() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := chess.White; c <= chess.Black; c++ {
		for p := chess.Pawn; p <= chess.King; p++ {
			for sq := chess.A1; sq <= chess.H8; sq++ {
				pieceKeys[c][p][sq] = rng.next()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = rng.next()
	}
	blackToMove = rng.next()
}

// Zobrist returns the Zobrist hash of the position. Two boards with the
// same placement, side to move, castling rights and en-passant file hash
// equal; the clocks are not part of the hash.
func Zobrist(board *chess.Board) uint64 {
	var hash uint64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		cp := board.Squares[sq]
		if cp.IsEmpty() {
			continue
		}
		hash ^= pieceKeys[cp.Colour()][cp.Piece()][sq]
	}

	hash ^= castlingKeys[board.Castling&chess.AllCastling]
	if board.EnPassant.IsValid() {
		hash ^= enPassantKeys[board.EnPassant.File()]
	}
	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}
