package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && b.HasNoLegalMoves(b.meta.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && b.HasNoLegalMoves(b.meta.ToMove)
}

// IsGameOver evaluates the end conditions and records the first that holds
// as the board status. It returns true if the game is over.
//
// The check order is: no legal moves (checkmate or stalemate), fifty-move
// rule, insufficient material, threefold repetition. Call it once per
// completed move; Move does so itself.
func (b *Board) IsGameOver() bool {
	if b.meta.Status.IsTerminal() {
		return true
	}
	status := b.evaluateStatus()
	b.meta.Status = status
	return status.IsTerminal()
}

// evaluateStatus determines the status of the current position without
// recording it.
func (b *Board) evaluateStatus() chess.GameStatus {
	toMove := b.meta.ToMove
	if b.HasNoLegalMoves(toMove) {
		if b.IsCheck() {
			return chess.WinFor(toMove.Opposite())
		}
		return chess.Stalemate
	}
	if b.HasExceededFiftyMoveRule() {
		return chess.FiftyMoveRule
	}
	if b.HasInsufficientMaterial() {
		return chess.InsufficientMaterial
	}
	if b.HasThreefoldRepetition() {
		return chess.ThreefoldRepetition
	}
	return chess.Ongoing
}
