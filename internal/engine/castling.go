package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Columns used by castling. The king starts on the e-file.
const (
	kingStartCol = 4

	kingsideKingCol  = 6
	kingsideRookFrom = 7
	kingsideRookTo   = 5

	queensideKingCol  = 2
	queensideRookFrom = 0
	queensideRookTo   = 3
)

// castle describes one of the four castling moves.
type castle struct {
	colour   chess.Colour
	kingside bool
	kingTo   int
	rookFrom int
	rookTo   int
	empty    []int // columns that must be vacant
	safe     []int // columns that must not be attacked, starting with the king's
}

func newCastle(colour chess.Colour, kingside bool) castle {
	if kingside {
		return castle{
			colour: colour, kingside: true,
			kingTo: kingsideKingCol, rookFrom: kingsideRookFrom, rookTo: kingsideRookTo,
			empty: []int{5, 6},
			safe:  []int{kingStartCol, 5},
		}
	}
	return castle{
		colour: colour, kingside: false,
		kingTo: queensideKingCol, rookFrom: queensideRookFrom, rookTo: queensideRookTo,
		empty: []int{1, 2, 3},
		safe:  []int{kingStartCol, 3},
	}
}

// castlingRules returns the four castling rules in a fixed order. Castling is
// never an attack, so the rules carry no attack function.
func castlingRules() []Rule {
	return []Rule{
		CustomRule{Name: "white king-side castle", Apply: newCastle(chess.White, true).apply},
		CustomRule{Name: "white queen-side castle", Apply: newCastle(chess.White, false).apply},
		CustomRule{Name: "black king-side castle", Apply: newCastle(chess.Black, true).apply},
		CustomRule{Name: "black queen-side castle", Apply: newCastle(chess.Black, false).apply},
	}
}

// hasRight reports whether the metadata still allows this castle.
func (c castle) hasRight(meta chess.Metadata) bool {
	if c.kingside {
		return meta.Castling.Kingside(c.colour)
	}
	return meta.Castling.Queenside(c.colour)
}

func (c castle) apply(b *Board, origin, target chess.Coordinates) MoveValidity {
	king := b.PieceAt(origin)
	if king == nil || king.Colour() != c.colour || !c.hasRight(b.meta) {
		return invalid()
	}
	row := c.colour.BackRank()
	if origin != (chess.Coordinates{Row: row, Col: kingStartCol}) || target != (chess.Coordinates{Row: row, Col: c.kingTo}) {
		return invalid()
	}

	rookSquare := chess.Coordinates{Row: row, Col: c.rookFrom}
	rook := b.PieceAt(rookSquare)
	if rook == nil || rook.Kind() != chess.Rook || rook.Colour() != c.colour {
		return invalid()
	}
	for _, col := range c.empty {
		if b.PieceAt(chess.Coordinates{Row: row, Col: col}) != nil {
			return invalid()
		}
	}
	for _, col := range c.safe {
		if b.IsSquareAttacked(chess.Coordinates{Row: row, Col: col}, c.colour.Opposite()) {
			return invalid()
		}
	}

	meta := b.meta
	meta.HalfmoveClock++
	meta.ClearEnPassant()
	meta.Castling.Clear(c.colour)

	return MoveValidity{
		Valid: true,
		Instructions: []Instruction{
			{Square: target, Piece: NewPiece(c.colour, chess.King)},
			{Square: chess.Coordinates{Row: row, Col: c.rookTo}, Piece: NewPiece(c.colour, chess.Rook)},
			{Square: origin},
			{Square: rookSquare},
		},
		Metadata: &meta,
	}
}
