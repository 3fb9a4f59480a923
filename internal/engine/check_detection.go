package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsCheck returns true if the side to move is in check.
func (b *Board) IsCheck() bool {
	return b.InCheck(b.meta.ToMove)
}

// InCheck returns true if the given colour's king is attacked.
func (b *Board) InCheck(colour chess.Colour) bool {
	return b.IsSquareAttacked(b.findKing(colour), colour.Opposite())
}

// findKing finds the king of the given colour on the board. A missing king
// is a broken invariant and panics.
func (b *Board) findKing(colour chess.Colour) chess.Coordinates {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.squares[row][col]
			if p != nil && p.Kind() == chess.King && p.Colour() == colour {
				return chess.Coordinates{Row: row, Col: col}
			}
		}
	}
	panic(fmt.Sprintf("engine: %v king not found", colour))
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Castling never counts as an attack and pawns attack only diagonally.
func (b *Board) IsSquareAttacked(sq chess.Coordinates, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.squares[row][col]
			if p == nil || p.Colour() != byColour {
				continue
			}
			if attacks(b, chess.Coordinates{Row: row, Col: col}, sq) {
				return true
			}
		}
	}
	return false
}
