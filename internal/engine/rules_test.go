package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "2k5/8/8/8/8/8/8/1K6 w - - 0 1", true},
		{"K+N vs K", "2k5/8/8/8/8/8/5N2/1K6 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+b same square colour", "2k1b3/8/8/8/8/8/8/1K3B2 w - - 0 1", true},
		{"K+B vs K+b dark squares", "4k3/8/8/2b5/8/8/8/2B1K3 w - - 0 1", true},
		{"K+B vs K+b opposite square colour", "2kb4/8/8/8/8/8/8/1K3B2 w - - 0 1", false},
		{"K+B+B vs K same side", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+n", "4k1n1/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := board.HasInsufficientMaterial(); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasExceededFiftyMoveRule(t *testing.T) {
	tests := []struct {
		clock string
		want  bool
	}{
		{"0", false},
		{"99", false},
		{"100", true},
		{"150", true},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - "+tt.clock+" 80")
			testutil.AssertEqual(t, b.HasExceededFiftyMoveRule(), tt.want)
		})
	}
}

func TestFiftyMoveRule_EndsGame(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	play(t, b, "a1a2")
	testutil.AssertEqual(t, b.Metadata().Status, chess.FiftyMoveRule)
}

func TestFiftyMoveRule_ResetByPawnMove(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/P7/R3K3 w - - 99 80")
	play(t, b, "a2a3")
	testutil.AssertEqual(t, b.Metadata().HalfmoveClock, uint(0))
	testutil.AssertEqual(t, b.Metadata().Status, chess.Ongoing)
}

func TestThreefoldRepetition(t *testing.T) {
	b := mustBoard(t, testutil.KnightsFEN)
	cycle := []string{"b1c3", "b8c6", "c3b1", "c6b8"}

	play(t, b, cycle...)
	testutil.AssertEqual(t, b.Metadata().Status, chess.Ongoing, "second occurrence")
	testutil.AssertFalse(t, b.HasThreefoldRepetition())

	play(t, b, cycle...)
	testutil.AssertEqual(t, b.Metadata().Status, chess.ThreefoldRepetition, "third occurrence")
	testutil.AssertTrue(t, b.IsGameOver())
}

func TestThreefoldRepetition_CastlingRightsDiffer(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	cycle := []string{"e1f1", "e8f8", "f1e1", "f8e8"}

	// The starting placement returns without the right to castle, so it
	// does not repeat the initial position.
	play(t, b, cycle...)
	play(t, b, cycle...)
	testutil.AssertEqual(t, b.Metadata().Status, chess.Ongoing)

	play(t, b, "e1f1")
	testutil.AssertEqual(t, b.Metadata().Status, chess.ThreefoldRepetition)
}
