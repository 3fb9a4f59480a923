package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Coordinates addresses a square. Row 0 is rank 1 and Col 0 is file a.
type Coordinates struct {
	Row int
	Col int
}

// Constants for algebraic square names.
const (
	RankBase = '1'
	ColBase  = 'a'
)

// Square builds coordinates from a file and rank character, e.g. Square('e', '4').
func Square(file, rank byte) Coordinates {
	return Coordinates{Row: int(rank - RankBase), Col: int(file - ColBase)}
}

// OnBoard reports whether both components are in [0,7].
func (c Coordinates) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Offset returns the coordinates shifted by the given row and column deltas.
func (c Coordinates) Offset(dRow, dCol int) Coordinates {
	return Coordinates{Row: c.Row + dRow, Col: c.Col + dCol}
}

// IsLight reports whether the square is a light square (a1 is dark).
func (c Coordinates) IsLight() bool {
	return (c.Row+c.Col)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
// Off-board coordinates are rendered as "(row,col)".
func (c Coordinates) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{byte(ColBase + c.Col), byte(RankBase + c.Row)})
}

// ParseSquare converts an algebraic square name such as "e4" to coordinates.
func ParseSquare(name string) (Coordinates, error) {
	if len(name) != 2 {
		return Coordinates{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coordinates{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Square(file, rank), nil
}

// MustParseSquare is like ParseSquare but panics on invalid input.
// Intended for fixed square names in tables and tests.
func MustParseSquare(name string) Coordinates {
	c, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return c
}
