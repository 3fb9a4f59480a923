// Package output writes positions and evaluation results as text or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PositionJSON represents a position and its evaluation in JSON format.
type PositionJSON struct {
	Index          int          `json:"index,omitempty"`
	FEN            string       `json:"fen"`
	ToMove         string       `json:"toMove"` // "white" or "black"
	Castling       CastlingJSON `json:"castling"`
	EnPassant      string       `json:"enPassant,omitempty"`
	HalfmoveClock  uint         `json:"halfmoveClock"`
	FullmoveNumber uint         `json:"fullmoveNumber"`
	Status         string       `json:"status"`
	InCheck        bool         `json:"inCheck"`
	LegalMoves     []string     `json:"legalMoves"`
	Error          string       `json:"error,omitempty"`
}

// CastlingJSON lists the remaining castling rights.
type CastlingJSON struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*PositionJSON `json:"positions"`
}

// PositionToJSON converts a board to its JSON form. The status is read from
// the board metadata as is; evaluate it first if it should be current.
func PositionToJSON(b *engine.Board) *PositionJSON {
	meta := b.Metadata()
	pj := &PositionJSON{
		FEN:            b.FEN(),
		ToMove:         colorName(meta.ToMove),
		Castling:       CastlingJSON(meta.Castling),
		HalfmoveClock:  meta.HalfmoveClock,
		FullmoveNumber: meta.FullmoveNumber,
		Status:         meta.Status.String(),
		InCheck:        b.IsCheck(),
		LegalMoves:     b.LegalMoveStrings(),
	}
	if meta.EnPassant {
		pj.EnPassant = meta.EPSquare.String()
	}
	return pj
}

// OutputPositionJSON writes a single position as indented JSON.
func OutputPositionJSON(w io.Writer, pj *PositionJSON) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pj)
}

// OutputPositionsJSON writes positions as a JSON object with an array.
func OutputPositionsJSON(w io.Writer, positions []*PositionJSON) error {
	if positions == nil {
		positions = []*PositionJSON{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Positions: positions})
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
