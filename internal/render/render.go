// Package render draws a position as a text grid.
package render

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Position is the read-only view of a board needed for rendering.
type Position interface {
	Occupant(c chess.Coordinates) (chess.Kind, chess.Colour, bool)
	Metadata() chess.Metadata
}

const (
	whiteFiles = "     a    b    c    d    e    f    g    h\n"
	blackFiles = "     h    g    f    e    d    c    b    a\n"
	separator  = "   ---------------------------------------\n"
	emptyCell  = "  "
)

// Glyph returns the two-character cell text for a piece: an uppercase W
// and letter for White ("WN"), a lowercase b and letter for Black ("bn").
func Glyph(kind chess.Kind, colour chess.Colour) string {
	letter := kind.Letter()
	if colour == chess.White {
		return "W" + string(letter)
	}
	return "b" + strings.ToLower(string(letter))
}

// Board renders the position from the perspective of the side to move:
// White sees rank 8 at the top and file a on the left, Black sees rank 1 at
// the top and file h on the left.
func Board(p Position) string {
	return BoardFor(p, p.Metadata().ToMove)
}

// BoardFor renders the position from the given side's perspective.
func BoardFor(p Position, perspective chess.Colour) string {
	files := whiteFiles
	if perspective == chess.Black {
		files = blackFiles
	}

	var sb strings.Builder
	sb.WriteString(files)
	sb.WriteString(separator)
	for i := 0; i < chess.BoardSize; i++ {
		row := chess.BoardSize - 1 - i
		if perspective == chess.Black {
			row = i
		}
		rank := string(rune(chess.RankBase + row))
		sb.WriteString(rank)
		sb.WriteString(" |")
		for j := 0; j < chess.BoardSize; j++ {
			col := j
			if perspective == chess.Black {
				col = chess.BoardSize - 1 - j
			}
			cell := emptyCell
			if kind, colour, ok := p.Occupant(chess.Coordinates{Row: row, Col: col}); ok {
				cell = Glyph(kind, colour)
			}
			sb.WriteByte(' ')
			sb.WriteString(cell)
			sb.WriteString(" |")
		}
		sb.WriteByte(' ')
		sb.WriteString(rank)
		sb.WriteByte('\n')
		sb.WriteString(separator)
	}
	sb.WriteString(files)
	return sb.String()
}
