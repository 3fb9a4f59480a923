package engine

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Piece is an immutable chess piece: a colour, a kind and the ordered list of
// rules that describe how it moves. Boards share piece pointers freely; a
// piece is never modified after construction.
type Piece struct {
	colour chess.Colour
	kind   chess.Kind
	rules  []Rule
}

// NewPiece constructs a piece with the rule list of its kind.
func NewPiece(colour chess.Colour, kind chess.Kind) *Piece {
	return &Piece{colour: colour, kind: kind, rules: rulesFor(kind)}
}

// PieceFromCode maps a FEN letter to a freshly constructed piece.
func PieceFromCode(code byte) (*Piece, error) {
	kind, ok := kindFromLetter(byte(unicode.ToUpper(rune(code))))
	if !ok {
		return nil, fmt.Errorf("%q: %w", code, errors.ErrUnknownPiece)
	}
	colour := chess.White
	if unicode.IsLower(rune(code)) {
		colour = chess.Black
	}
	return NewPiece(colour, kind), nil
}

// kindFromLetter converts an uppercase FEN letter to a piece kind.
func kindFromLetter(c byte) (chess.Kind, bool) {
	switch c {
	case 'K':
		return chess.King, true
	case 'Q':
		return chess.Queen, true
	case 'R':
		return chess.Rook, true
	case 'N':
		return chess.Knight, true
	case 'B':
		return chess.Bishop, true
	case 'P':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// Colour returns the piece colour.
func (p *Piece) Colour() chess.Colour { return p.colour }

// Kind returns the piece kind.
func (p *Piece) Kind() chess.Kind { return p.kind }

// Rules returns a copy of the piece's rule list in evaluation order.
func (p *Piece) Rules() []Rule {
	rules := make([]Rule, len(p.rules))
	copy(rules, p.rules)
	return rules
}

// Code returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Code() byte {
	letter := p.kind.Letter()
	if p.colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	return p.colour.String() + " " + p.kind.String()
}

var (
	diagonals  = [][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	orthogonal = [][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	knightHops = [][2]int{{1, -2}, {1, 2}, {2, -1}, {2, 1}, {-1, -2}, {-1, 2}, {-2, -1}, {-2, 1}}
)

// rulesFor builds the fixed rule list of a piece kind.
func rulesFor(kind chess.Kind) []Rule {
	switch kind {
	case chess.Knight:
		return steps(knightHops)
	case chess.Bishop:
		return rays(diagonals)
	case chess.Rook:
		return rays(orthogonal)
	case chess.Queen:
		return append(rays(diagonals), rays(orthogonal)...)
	case chess.King:
		rules := append(steps(diagonals), steps(orthogonal)...)
		return append(rules, castlingRules()...)
	case chess.Pawn:
		return append(pawnRules(chess.White), pawnRules(chess.Black)...)
	default:
		panic(fmt.Sprintf("engine: no rules for kind %v", kind))
	}
}

func steps(dirs [][2]int) []Rule {
	rules := make([]Rule, 0, len(dirs))
	for _, d := range dirs {
		rules = append(rules, Step(d[0], d[1]))
	}
	return rules
}

func rays(dirs [][2]int) []Rule {
	rules := make([]Rule, 0, len(dirs))
	for _, d := range dirs {
		rules = append(rules, Ray(d[0], d[1]))
	}
	return rules
}
