// Package errors provides sentinel errors and error types for the chess rules
// engine. It defines common rejection conditions and structured error types
// that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrGameOver indicates a move was attempted on a concluded game.
	ErrGameOver = errors.New("game is over")

	// ErrOffBoard indicates a coordinate outside the 8x8 grid.
	ErrOffBoard = errors.New("coordinates are not on board")

	// ErrNoPiece indicates the origin square is empty.
	ErrNoPiece = errors.New("no piece at origin")

	// ErrWrongTurn indicates the origin piece belongs to the side not to move.
	ErrWrongTurn = errors.New("wrong player")

	// ErrOwnCapture indicates the target holds a piece of the mover's colour.
	ErrOwnCapture = errors.New("cannot capture own piece")

	// ErrSameSquare indicates origin and target are identical.
	ErrSameSquare = errors.New("origin and target are the same")

	// ErrIllegalMove indicates a move that no movement rule allows.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMovesIntoCheck indicates a move that leaves the mover's king attacked.
	ErrMovesIntoCheck = errors.New("cannot move into check")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrUnknownPiece indicates an unrecognised piece letter.
	ErrUnknownPiece = errors.New("unknown piece code")

	// ErrInvalidSquare indicates a malformed algebraic square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPoolStopped is returned when work is submitted to a stopped pool.
	ErrPoolStopped = errors.New("worker pool stopped")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// MoveError wraps a move rejection with the squares involved and the ply at
// which it was attempted. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square name (if known)
	To   string // Target square name (if known)
	Ply  int    // Ply number of the attempt (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a FEN parsing error with the offending field.
type ParseError struct {
	Err   error  // The underlying error
	Field string // FEN field name ("placement", "side", "castling", ...)
	Got   string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
