// Package game is the caller-facing API over the rules engine. A Game owns
// one Board, translates algebraic square names to coordinates and serialises
// access so the speculative probes inside the engine are never observed
// half-done.
package game

import (
	"fmt"
	"io"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// Game is a single chess game. It is safe for concurrent use.
type Game struct {
	mu    sync.Mutex
	board *engine.Board

	log       io.Writer
	verbosity int
}

// Option configures a Game.
type Option func(*Game)

// WithLog sends move commentary to w. Nothing is written below verbosity 2.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.log = w
		g.verbosity = verbosity
	}
}

// New creates a game in the standard starting position.
func New(opts ...Option) *Game {
	g := &Game{board: engine.NewBoard()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StartGame begins a new game. An empty fen means the standard starting
// position. On error the current game is left as it was.
func (g *Game) StartGame(fen string) error {
	if fen == "" {
		fen = engine.InitialFEN
	}
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return errors.Wrap(err, "start game")
	}
	b.IsGameOver()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.board = b
	g.logf("new game: %s (%s)\n", b.FEN(), b.Metadata().Status)
	return nil
}

// Move plays the move from one named square to another, e.g. ("e2", "e4").
// A rejected move leaves the game unchanged; the error is a
// *errors.MoveError wrapping the reason. A square name that cannot be parsed,
// such as "z9", is reported as errors.ErrOffBoard (also wrapping
// errors.ErrInvalidSquare), so callers need only test for ErrOffBoard.
func (g *Game) Move(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	origin, err := chess.ParseSquare(from)
	if err != nil {
		return g.rejected(from, to, err)
	}
	target, err := chess.ParseSquare(to)
	if err != nil {
		return g.rejected(from, to, err)
	}
	if err := g.board.Move(origin, target); err != nil {
		g.logf("rejected %s%s: %v\n", from, to, err)
		return err
	}
	g.logf("played %s%s: %s\n", from, to, g.board.FEN())
	return nil
}

func (g *Game) rejected(from, to string, err error) error {
	err = &errors.MoveError{
		Err:  fmt.Errorf("%w: %w", errors.ErrOffBoard, err),
		From: from,
		To:   to,
		Ply:  g.board.Ply() + 1,
	}
	g.logf("rejected %s%s: %v\n", from, to, err)
	return err
}

// FEN returns the current position.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.FEN()
}

// MetaData returns a snapshot of the position metadata.
func (g *Game) MetaData() chess.Metadata {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Metadata()
}

// Printable renders the board from the side to move's point of view.
func (g *Game) Printable() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return render.Board(g.board)
}

// IsFinished reports whether the game has ended.
func (g *Game) IsFinished() bool {
	return g.Status().IsTerminal()
}

// WhiteToMove reports whether White has the move.
func (g *Game) WhiteToMove() bool {
	return g.MetaData().ToMove == chess.White
}

// Status returns the recorded game status.
func (g *Game) Status() chess.GameStatus {
	return g.MetaData().Status
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.IsCheck()
}

// LegalMoves returns the legal moves for the side to move as sorted strings
// such as "e2e4". A finished game has none.
func (g *Game) LegalMoves() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.board.Metadata().Status.IsTerminal() {
		return []string{}
	}
	return g.board.LegalMoveStrings()
}

// History returns the FEN of every position reached, oldest first.
func (g *Game) History() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.History()
}

// WriteJSON writes a JSON snapshot of the current position to w.
func (g *Game) WriteJSON(w io.Writer) error {
	g.mu.Lock()
	pj := output.PositionToJSON(g.board)
	g.mu.Unlock()
	return output.OutputPositionJSON(w, pj)
}

func (g *Game) logf(format string, args ...interface{}) {
	if g.log == nil || g.verbosity < 2 {
		return
	}
	fmt.Fprintf(g.log, format, args...)
}
