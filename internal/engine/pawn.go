package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// pawnRules returns the four pawn rules for one colour: single step, double
// step, diagonal capture and en passant. Each rule ignores pawns of the other
// colour so a pawn can carry the rules of both.
func pawnRules(colour chess.Colour) []Rule {
	name := "white"
	if colour == chess.Black {
		name = "black"
	}
	return []Rule{
		CustomRule{Name: name + " pawn push", Apply: pawnPush(colour)},
		CustomRule{Name: name + " pawn double push", Apply: pawnDoublePush(colour)},
		CustomRule{Name: name + " pawn capture", Apply: pawnCapture(colour), Attack: pawnAttack(colour)},
		CustomRule{Name: name + " en passant", Apply: pawnEnPassant(colour)},
	}
}

// pawnStartRow returns the row on which pawns of the colour begin.
func pawnStartRow(colour chess.Colour) int {
	return colour.BackRank() + colour.Forward()
}

// ownsPawn reports whether a pawn of the given colour stands on origin.
func ownsPawn(b *Board, origin chess.Coordinates, colour chess.Colour) bool {
	p := b.PieceAt(origin)
	return p != nil && p.Colour() == colour
}

// advancedPawn returns the piece a pawn becomes on target: a queen on the
// far back rank, otherwise a fresh pawn.
func advancedPawn(colour chess.Colour, target chess.Coordinates) *Piece {
	if target.Row == colour.Opposite().BackRank() {
		return NewPiece(colour, chess.Queen)
	}
	return NewPiece(colour, chess.Pawn)
}

// pawnMove builds the validity of a pawn move with the pawn bookkeeping.
func pawnMove(b *Board, origin, target chess.Coordinates, placed *Piece, extra ...Instruction) MoveValidity {
	meta := b.meta
	meta.HalfmoveClock = 0
	meta.ClearEnPassant()
	instructions := []Instruction{
		{Square: target, Piece: placed},
		{Square: origin},
	}
	return MoveValidity{
		Valid:        true,
		Instructions: append(instructions, extra...),
		Metadata:     &meta,
	}
}

func pawnPush(colour chess.Colour) ApplyFunc {
	return func(b *Board, origin, target chess.Coordinates) MoveValidity {
		if !ownsPawn(b, origin, colour) {
			return invalid()
		}
		if target != origin.Offset(colour.Forward(), 0) || !target.OnBoard() || b.PieceAt(target) != nil {
			return invalid()
		}
		return pawnMove(b, origin, target, advancedPawn(colour, target))
	}
}

func pawnDoublePush(colour chess.Colour) ApplyFunc {
	return func(b *Board, origin, target chess.Coordinates) MoveValidity {
		if !ownsPawn(b, origin, colour) || origin.Row != pawnStartRow(colour) {
			return invalid()
		}
		passed := origin.Offset(colour.Forward(), 0)
		if target != origin.Offset(2*colour.Forward(), 0) || b.PieceAt(passed) != nil || b.PieceAt(target) != nil {
			return invalid()
		}
		validity := pawnMove(b, origin, target, NewPiece(colour, chess.Pawn))
		validity.Metadata.SetEnPassant(passed)
		return validity
	}
}

// isPawnDiagonal reports whether target is one of the two squares a pawn of
// the colour on origin captures towards.
func isPawnDiagonal(colour chess.Colour, origin, target chess.Coordinates) bool {
	f := colour.Forward()
	return target == origin.Offset(f, -1) || target == origin.Offset(f, 1)
}

func pawnCapture(colour chess.Colour) ApplyFunc {
	return func(b *Board, origin, target chess.Coordinates) MoveValidity {
		if !ownsPawn(b, origin, colour) || !target.OnBoard() || !isPawnDiagonal(colour, origin, target) {
			return invalid()
		}
		captured := b.PieceAt(target)
		if captured == nil || captured.Colour() == colour {
			return invalid()
		}
		validity := pawnMove(b, origin, target, advancedPawn(colour, target))
		revokeRookRights(validity.Metadata, captured, target)
		return validity
	}
}

func pawnAttack(colour chess.Colour) AttackFunc {
	return func(b *Board, origin, target chess.Coordinates) bool {
		return ownsPawn(b, origin, colour) && isPawnDiagonal(colour, origin, target)
	}
}

// enPassantRow returns the row of an en passant target a pawn of the colour
// may capture onto.
func enPassantRow(colour chess.Colour) int {
	return colour.Opposite().BackRank() - 2*colour.Forward()
}

func pawnEnPassant(colour chess.Colour) ApplyFunc {
	return func(b *Board, origin, target chess.Coordinates) MoveValidity {
		if !ownsPawn(b, origin, colour) || !b.meta.EnPassant {
			return invalid()
		}
		if target != b.meta.EPSquare || target.Row != enPassantRow(colour) || !isPawnDiagonal(colour, origin, target) {
			return invalid()
		}
		victimSquare := target.Offset(-colour.Forward(), 0)
		victim := b.PieceAt(victimSquare)
		if victim == nil || victim.Kind() != chess.Pawn || victim.Colour() == colour {
			return invalid()
		}
		return pawnMove(b, origin, target, NewPiece(colour, chess.Pawn), Instruction{Square: victimSquare})
	}
}
