package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// maxRayLength is the furthest a repeating rule walks from its origin.
const maxRayLength = chess.BoardSize - 1

// Instruction describes a single square edit produced by a rule.
// A nil Piece removes whatever occupies the square.
type Instruction struct {
	Square chess.Coordinates
	Piece  *Piece
}

// MoveValidity is the result of evaluating a rule for an origin/target pair.
// On invalid moves Instructions is empty and Metadata is nil. Otherwise the
// instructions execute the move in order and Metadata is the proposed
// replacement for the board metadata.
type MoveValidity struct {
	Valid        bool
	Instructions []Instruction
	Metadata     *chess.Metadata
}

// invalid is the shared "no match" result.
func invalid() MoveValidity {
	return MoveValidity{}
}

// Rule is a movement capability of a piece. The set of rules is closed:
// every Rule is either a GeometricRule or a CustomRule.
type Rule interface {
	isRule()
}

// GeometricRule is a step (or repeated step) in a fixed direction.
type GeometricRule struct {
	DRow      int  // rows per step, positive towards rank 8
	DCol      int  // columns per step, positive towards file h
	Repeat    bool // walk the step up to seven times
	Blockable bool // an occupied intermediate square stops the walk
}

func (GeometricRule) isRule() {}

// String describes the rule for diagnostics.
func (r GeometricRule) String() string {
	kind := "step"
	if r.Repeat {
		kind = "ray"
	}
	return fmt.Sprintf("%s(%d,%d)", kind, r.DRow, r.DCol)
}

// NewGeometricRule collapses up/down and left/right magnitudes into a single
// step vector. A positive up wins over down and a positive right wins over left.
func NewGeometricRule(up, down, left, right int, repeat, blockable bool) GeometricRule {
	dRow := -down
	if up > 0 {
		dRow = up
	}
	dCol := -left
	if right > 0 {
		dCol = right
	}
	return GeometricRule{DRow: dRow, DCol: dCol, Repeat: repeat, Blockable: blockable}
}

// Step returns a single, unblockable step rule.
func Step(dRow, dCol int) GeometricRule {
	return GeometricRule{DRow: dRow, DCol: dCol}
}

// Ray returns a repeating, blockable rule.
func Ray(dRow, dCol int) GeometricRule {
	return GeometricRule{DRow: dRow, DCol: dCol, Repeat: true, Blockable: true}
}

// ApplyFunc evaluates a custom rule.
type ApplyFunc func(b *Board, origin, target chess.Coordinates) MoveValidity

// AttackFunc reports whether a custom rule attacks target from origin.
type AttackFunc func(b *Board, origin, target chess.Coordinates) bool

// CustomRule is an arbitrary board-state predicate for moves whose legality
// depends on more than geometry. A nil Attack means the rule never attacks.
type CustomRule struct {
	Name   string
	Apply  ApplyFunc
	Attack AttackFunc
}

func (CustomRule) isRule() {}

// String describes the rule for diagnostics.
func (r CustomRule) String() string {
	return r.Name
}

// applyRule evaluates a rule against the board.
func applyRule(rule Rule, b *Board, origin, target chess.Coordinates) MoveValidity {
	switch r := rule.(type) {
	case GeometricRule:
		return applyGeometric(r, b, origin, target)
	case CustomRule:
		return r.Apply(b, origin, target)
	default:
		panic(fmt.Sprintf("engine: unknown rule type %T", rule))
	}
}

// ruleAttacks reports whether the rule covers target from origin, ignoring
// who occupies target.
func ruleAttacks(rule Rule, b *Board, origin, target chess.Coordinates) bool {
	switch r := rule.(type) {
	case GeometricRule:
		return geometricReaches(r, b, origin, target)
	case CustomRule:
		return r.Attack != nil && r.Attack(b, origin, target)
	default:
		panic(fmt.Sprintf("engine: unknown rule type %T", rule))
	}
}

// geometricReaches walks the rule's step vector and reports whether target is
// reached before the walk leaves the board or is blocked.
func geometricReaches(r GeometricRule, b *Board, origin, target chess.Coordinates) bool {
	if !r.Repeat {
		return origin.Offset(r.DRow, r.DCol) == target
	}
	for i := 1; i <= maxRayLength; i++ {
		current := origin.Offset(r.DRow*i, r.DCol*i)
		if !current.OnBoard() {
			return false
		}
		if current == target {
			return true
		}
		if r.Blockable && b.squares[current.Row][current.Col] != nil {
			return false
		}
	}
	return false
}

// applyGeometric validates a geometric move and produces the standard
// two-instruction edit plus the generic metadata bookkeeping.
func applyGeometric(r GeometricRule, b *Board, origin, target chess.Coordinates) MoveValidity {
	piece := b.PieceAt(origin)
	if piece == nil {
		panic(fmt.Sprintf("engine: no piece at rule origin %s", origin))
	}
	if !target.OnBoard() || !geometricReaches(r, b, origin, target) {
		return invalid()
	}
	captured := b.PieceAt(target)
	if captured != nil && captured.Colour() == piece.Colour() {
		return invalid()
	}

	meta := b.meta
	if captured != nil {
		meta.HalfmoveClock = 0
		revokeRookRights(&meta, captured, target)
	} else {
		meta.HalfmoveClock++
	}
	meta.ClearEnPassant()
	switch piece.Kind() {
	case chess.King:
		meta.Castling.Clear(piece.Colour())
	case chess.Rook:
		revokeRookRights(&meta, piece, origin)
	}

	return MoveValidity{
		Valid: true,
		Instructions: []Instruction{
			{Square: target, Piece: piece},
			{Square: origin},
		},
		Metadata: &meta,
	}
}

// revokeRookRights clears the castling right tied to a rook standing on its
// own original corner square.
func revokeRookRights(meta *chess.Metadata, p *Piece, sq chess.Coordinates) {
	if p.Kind() == chess.Rook && sq.Row == p.Colour().BackRank() {
		meta.Castling.RevokeCorner(sq)
	}
}
