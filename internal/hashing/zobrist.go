package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5eed_c4e55

var (
	// pieceKeys[colour][kind][row*8+col]
	pieceKeys     [2][6][chess.BoardSize * chess.BoardSize]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// GenerateZobristHash computes the Zobrist hash of a position. It covers the
// same fields as engine.PositionKey: placement, side to move, castling
// rights and the en passant file. Clocks and status are ignored.
func GenerateZobristHash(b *engine.Board) uint64 {
	var hash uint64
	for _, occ := range b.Pieces() {
		sq := occ.Square.Row*chess.BoardSize + occ.Square.Col
		hash ^= pieceKeys[occ.Piece.Colour()][occ.Piece.Kind()][sq]
	}

	meta := b.Metadata()
	if meta.ToMove == chess.Black {
		hash ^= blackToMove
	}
	rights := [4]bool{
		meta.Castling.WhiteKingside,
		meta.Castling.WhiteQueenside,
		meta.Castling.BlackKingside,
		meta.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}
	if meta.EnPassant {
		hash ^= enPassantKeys[meta.EPSquare.Col]
	}
	return hash
}

// WeakHash is a cheap secondary hash over the occupied squares only, used to
// separate Zobrist collisions.
func WeakHash(b *engine.Board) uint32 {
	var hash uint32
	for _, occ := range b.Pieces() {
		sq := uint32(occ.Square.Row*chess.BoardSize + occ.Square.Col)
		hash = hash*31 + sq*8 + uint32(occ.Piece.Code())
	}
	return hash
}
