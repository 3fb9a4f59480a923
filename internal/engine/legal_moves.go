package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Move is an origin/target pair.
type Move struct {
	From chess.Coordinates
	To   chess.Coordinates
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// HasNoLegalMoves returns true if no piece of the given colour has a move
// that leaves its own king out of check.
func (b *Board) HasNoLegalMoves(colour chess.Colour) bool {
	found := false
	b.forEachLegalMove(colour, func(Move) bool {
		found = true
		return false
	})
	return !found
}

// LegalMoves returns every legal move for the side to move, ordered by
// origin then target square from a1.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	b.forEachLegalMove(b.meta.ToMove, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// forEachLegalMove probes every piece of colour against every square:
// validate, apply, test for check, roll back. fn returns false to stop.
// The board is restored before fn is called.
func (b *Board) forEachLegalMove(colour chess.Colour, fn func(Move) bool) {
	saved := b.SaveState()
	for _, occ := range b.Pieces() {
		if occ.Piece.Colour() != colour {
			continue
		}
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				target := chess.Coordinates{Row: row, Col: col}
				if target == occ.Square {
					continue
				}
				if p := b.PieceAt(target); p != nil && p.Colour() == colour {
					continue
				}
				validity := ValidateMove(b, occ.Square, target)
				if !validity.Valid {
					continue
				}
				b.execute(validity.Instructions)
				safe := !b.InCheck(colour)
				b.RestoreState(saved)
				if safe && !fn(Move{From: occ.Square, To: target}) {
					return
				}
			}
		}
	}
}

// LegalMoveStrings returns the legal moves for the side to move in long
// algebraic form, sorted lexically.
func (b *Board) LegalMoveStrings() []string {
	moves := b.LegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}
