// Package chess provides core chess value types: colours, piece kinds,
// square coordinates, game status and the per-position metadata record.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank returns the row of the colour's own back rank.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// GameStatus is the outcome state of a board.
type GameStatus int

const (
	Ongoing GameStatus = iota
	WhiteWon
	BlackWon
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	case ThreefoldRepetition:
		return "ThreefoldRepetition"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the status ends the game.
func (s GameStatus) IsTerminal() bool {
	return s != Ongoing
}

// IsDraw reports whether the status is one of the drawn outcomes.
func (s GameStatus) IsDraw() bool {
	switch s {
	case Stalemate, InsufficientMaterial, FiftyMoveRule, ThreefoldRepetition:
		return true
	default:
		return false
	}
}

// WinFor returns the status recording a win for the given colour.
func WinFor(c Colour) GameStatus {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Clear removes both rights of the given colour.
func (r *CastlingRights) Clear(c Colour) {
	if c == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
}

// Kingside reports the king-side right of the given colour.
func (r CastlingRights) Kingside(c Colour) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queen-side right of the given colour.
func (r CastlingRights) Queenside(c Colour) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// RevokeCorner clears the right tied to a rook corner square. Squares that
// are not an original rook corner are ignored.
func (r *CastlingRights) RevokeCorner(sq Coordinates) {
	switch sq {
	case Coordinates{0, 7}:
		r.WhiteKingside = false
	case Coordinates{0, 0}:
		r.WhiteQueenside = false
	case Coordinates{7, 7}:
		r.BlackKingside = false
	case Coordinates{7, 0}:
		r.BlackQueenside = false
	}
}

// Any reports whether at least one right remains.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// Metadata is the non-placement part of a position.
type Metadata struct {
	// Is an en passant capture possible? If so then EPSquare holds the
	// square a capturing pawn would land on.
	EnPassant bool
	EPSquare  Coordinates

	Castling CastlingRights

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	FullmoveNumber uint

	// Who has the next move.
	ToMove Colour

	Status GameStatus
}

// NewMetadata returns the metadata of the standard starting position.
func NewMetadata() Metadata {
	return Metadata{
		Castling:       AllCastlingRights(),
		FullmoveNumber: 1,
		ToMove:         White,
		Status:         Ongoing,
	}
}

// ClearEnPassant removes the en passant target.
func (m *Metadata) ClearEnPassant() {
	m.EnPassant = false
	m.EPSquare = Coordinates{}
}

// SetEnPassant records an en passant target.
func (m *Metadata) SetEnPassant(sq Coordinates) {
	m.EnPassant = true
	m.EPSquare = sq
}
