package config

import "github.com/lgbarn/chessrules-go/internal/chess"

// FilterConfig selects which evaluated positions batch mode reports.
// With no condition set every position is reported; otherwise a position
// is reported if it meets any enabled condition.
type FilterConfig struct {
	MatchCheckmate bool
	MatchStalemate bool
	MatchDraw      bool // any drawn outcome, stalemate included
	MatchCheck     bool // side to move is in check
	MatchOngoing   bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any condition is enabled.
func (f *FilterConfig) Active() bool {
	return f.MatchCheckmate || f.MatchStalemate || f.MatchDraw || f.MatchCheck || f.MatchOngoing
}

// Matches reports whether a position with the given status passes the filter.
func (f *FilterConfig) Matches(status chess.GameStatus, inCheck bool) bool {
	if !f.Active() {
		return true
	}
	switch {
	case f.MatchCheckmate && (status == chess.WhiteWon || status == chess.BlackWon):
		return true
	case f.MatchStalemate && status == chess.Stalemate:
		return true
	case f.MatchDraw && status.IsDraw():
		return true
	case f.MatchCheck && inCheck:
		return true
	case f.MatchOngoing && status == chess.Ongoing:
		return true
	}
	return false
}
