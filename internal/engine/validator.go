package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ValidateMove asks the rules of the piece on origin, in order, whether it
// may move to target and returns the first valid result. If no rule matches
// the result is invalid with no instructions.
//
// ValidateMove panics if origin is empty or equals target; both are caller
// bugs rather than rule outcomes.
func ValidateMove(b *Board, origin, target chess.Coordinates) MoveValidity {
	piece := b.PieceAt(origin)
	if piece == nil {
		panic(fmt.Sprintf("engine: no piece found at origin %s", origin))
	}
	if origin == target {
		panic(fmt.Sprintf("engine: origin and target are the same (%s)", origin))
	}
	for _, rule := range piece.rules {
		if validity := applyRule(rule, b, origin, target); validity.Valid {
			return validity
		}
	}
	return invalid()
}

// attacks reports whether the piece on origin attacks target under any of
// its rules' attack geometry.
func attacks(b *Board, origin, target chess.Coordinates) bool {
	piece := b.PieceAt(origin)
	if piece == nil || origin == target {
		return false
	}
	for _, rule := range piece.rules {
		if ruleAttacks(rule, b, origin, target) {
			return true
		}
	}
	return false
}
