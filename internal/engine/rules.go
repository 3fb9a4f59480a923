package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which the fifty-move rule
// ends the game (fifty moves by each side).
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that ends the
// game by repetition.
const RepetitionLimit = 3

// HasExceededFiftyMoveRule returns true if FiftyMoveLimit half-moves have
// passed without a capture or pawn move.
func (b *Board) HasExceededFiftyMoveRule() bool {
	return b.meta.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position matches one of the
// recognised dead material configurations:
// - K vs K
// - K+B vs K or K+N vs K
// - K+B vs K+B with both bishops on squares of the same colour
//
// It expects one king of each colour to be on the board.
func (b *Board) HasInsufficientMaterial() bool {
	pieces := b.Pieces()
	switch len(pieces) {
	case 2:
		return true
	case 3:
		for _, occ := range pieces {
			if k := occ.Piece.Kind(); k == chess.Bishop || k == chess.Knight {
				return true
			}
		}
		return false
	case 4:
		var bishops []Occupied
		for _, occ := range pieces {
			if occ.Piece.Kind() == chess.Bishop {
				bishops = append(bishops, occ)
			}
		}
		return len(bishops) == 2 &&
			bishops[0].Piece.Colour() != bishops[1].Piece.Colour() &&
			bishops[0].Square.IsLight() == bishops[1].Square.IsLight()
	default:
		return false
	}
}

// HasThreefoldRepetition returns true if the current position has been
// recorded RepetitionLimit or more times. Positions compare on placement,
// side to move, castling rights and en passant target; the clocks are
// ignored.
func (b *Board) HasThreefoldRepetition() bool {
	current := PositionKey(b.FEN())
	count := 0
	for _, fen := range b.history {
		if PositionKey(fen) == current {
			count++
		}
	}
	return count >= RepetitionLimit
}

// PositionKey strips the halfmove clock and fullmove number from a FEN
// string, leaving the fields that identify a position for repetition.
func PositionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
