package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board represents a chess board with all state needed for the game.
// A Board is not safe for concurrent use; callers running several games in
// parallel use one Board per game.
type Board struct {
	// squares[row][col]; row 0 is rank 1, col 0 is file a.
	squares [chess.BoardSize][chess.BoardSize]*Piece

	meta chess.Metadata

	// Canonical FEN of every position reached, starting with the initial one.
	history []string
}

// NewEmptyBoard creates a board with no pieces and starting metadata.
func NewEmptyBoard() *Board {
	b := &Board{meta: chess.NewMetadata()}
	b.history = append(b.history, b.FEN())
	return b
}

// NewBoard creates a board with the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardFromFEN creates a board from a FEN string. Its history starts
// with that position.
func NewBoardFromFEN(fen string) (*Board, error) {
	b := &Board{}
	if err := b.LoadFEN(fen); err != nil {
		return nil, err
	}
	b.history = []string{b.FEN()}
	return b, nil
}

// PieceAt returns the piece at the given coordinates, or nil for an empty
// square. Coordinates must be on the board.
func (b *Board) PieceAt(c chess.Coordinates) *Piece {
	return b.squares[c.Row][c.Col]
}

// Occupant returns the identity of the piece at c, for read-only consumers
// such as renderers.
func (b *Board) Occupant(c chess.Coordinates) (chess.Kind, chess.Colour, bool) {
	p := b.PieceAt(c)
	if p == nil {
		return 0, 0, false
	}
	return p.Kind(), p.Colour(), true
}

// AddPiece places a piece on c, replacing any occupant. No legality checks.
func (b *Board) AddPiece(p *Piece, c chess.Coordinates) {
	b.squares[c.Row][c.Col] = p
}

// RemovePiece empties c. No legality checks.
func (b *Board) RemovePiece(c chess.Coordinates) {
	b.squares[c.Row][c.Col] = nil
}

// MovePiece moves whatever stands on from to to. No legality checks.
func (b *Board) MovePiece(from, to chess.Coordinates) {
	b.squares[to.Row][to.Col] = b.squares[from.Row][from.Col]
	b.squares[from.Row][from.Col] = nil
}

// Metadata returns a copy of the position metadata.
func (b *Board) Metadata() chess.Metadata {
	return b.meta
}

// SetMetadata replaces the position metadata. Intended for setup code.
func (b *Board) SetMetadata(m chess.Metadata) {
	b.meta = m
}

// History returns a copy of the recorded positions, oldest first.
func (b *Board) History() []string {
	history := make([]string, len(b.history))
	copy(history, b.history)
	return history
}

// Ply returns the number of moves completed on this board.
func (b *Board) Ply() int {
	return len(b.history) - 1
}

// Occupied is a piece together with its square.
type Occupied struct {
	Piece  *Piece
	Square chess.Coordinates
}

// Pieces returns every piece on the board in row-major order from a1.
func (b *Board) Pieces() []Occupied {
	var pieces []Occupied
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				pieces = append(pieces, Occupied{Piece: p, Square: chess.Coordinates{Row: row, Col: col}})
			}
		}
	}
	return pieces
}

// BoardState captures the placement and metadata for save/restore.
// Pieces are immutable, so copying the grid copies the position.
type BoardState struct {
	Squares [chess.BoardSize][chess.BoardSize]*Piece
	Meta    chess.Metadata
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.squares, Meta: b.meta}
}

// RestoreState restores the board to a previously saved state.
// History is left untouched.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s.Squares
	b.meta = s.Meta
}

// execute applies rule instructions in order.
func (b *Board) execute(instructions []Instruction) {
	for _, in := range instructions {
		if in.Piece != nil {
			b.AddPiece(in.Piece, in.Square)
		} else {
			b.RemovePiece(in.Square)
		}
	}
}

// Move performs a fully guarded move for the side to move. A rejected move
// leaves the board exactly as it was. The returned error wraps one of
// ErrGameOver, ErrOffBoard, ErrNoPiece, ErrWrongTurn, ErrOwnCapture,
// ErrIllegalMove or ErrMovesIntoCheck in a *errors.MoveError.
func (b *Board) Move(origin, target chess.Coordinates) error {
	if err := b.checkPreconditions(origin, target); err != nil {
		return b.moveError(err, origin, target)
	}

	validity := ValidateMove(b, origin, target)
	if !validity.Valid {
		return b.moveError(errors.ErrIllegalMove, origin, target)
	}

	mover := b.meta.ToMove
	saved := b.SaveState()
	b.execute(validity.Instructions)
	if b.InCheck(mover) {
		b.RestoreState(saved)
		return b.moveError(errors.ErrMovesIntoCheck, origin, target)
	}

	if validity.Metadata != nil {
		b.meta = *validity.Metadata
	}
	b.meta.ToMove = mover.Opposite()
	if mover == chess.Black {
		b.meta.FullmoveNumber++
	}
	b.history = append(b.history, b.FEN())
	b.IsGameOver()
	return nil
}

// checkPreconditions runs the ordered move preconditions.
func (b *Board) checkPreconditions(origin, target chess.Coordinates) error {
	if b.meta.Status.IsTerminal() {
		return errors.ErrGameOver
	}
	if !origin.OnBoard() || !target.OnBoard() {
		return errors.ErrOffBoard
	}
	piece := b.PieceAt(origin)
	if piece == nil {
		return errors.ErrNoPiece
	}
	if piece.Colour() != b.meta.ToMove {
		return errors.ErrWrongTurn
	}
	if occupant := b.PieceAt(target); occupant != nil && occupant.Colour() == b.meta.ToMove {
		return errors.ErrOwnCapture
	}
	return nil
}

func (b *Board) moveError(err error, origin, target chess.Coordinates) error {
	return &errors.MoveError{Err: err, From: origin.String(), To: target.String(), Ply: b.Ply() + 1}
}
