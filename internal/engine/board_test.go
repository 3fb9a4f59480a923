package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// mustBoard loads fen or fails the test.
func mustBoard(t testing.TB, fen string) *Board {
	t.Helper()
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return b
}

// play makes a sequence of moves written as "e2e4".
func play(t testing.TB, b *Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := chess.MustParseSquare(m[:2]), chess.MustParseSquare(m[2:4])
		if err := b.Move(from, to); err != nil {
			t.Fatalf("Move(%s) error: %v", m, err)
		}
	}
}

func TestMove_Positions(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "double push sets en passant",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "single push clears en passant",
			fen:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			moves: []string{"e7e6"},
			want:  "rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		},
		{
			name:  "knight move increments halfmove clock",
			fen:   InitialFEN,
			moves: []string{"g1f3", "b8c6"},
			want:  "r1bqkbnr/pppppppp/2n5/8/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 2 2",
		},
		{
			name:  "white castles kingside",
			fen:   testutil.CastlingFEN,
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "white castles queenside",
			fen:   testutil.CastlingFEN,
			moves: []string{"e1c1"},
			want:  "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:  "black castles kingside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"e8g8"},
			want:  "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:  "black castles queenside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:  "white captures en passant",
			fen:   testutil.WhiteEnPassantFEN,
			moves: []string{"e5d6"},
			want:  "rnbqkbnr/ppp1pppp/3P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		},
		{
			name:  "black captures en passant",
			fen:   testutil.BlackEnPassantFEN,
			moves: []string{"e4d3"},
			want:  "rnbqkbnr/pppp1ppp/8/8/8/3p4/PPP1PPPP/RNBQKBNR w KQkq - 0 2",
		},
		{
			name:  "pawn promotes to queen",
			fen:   "8/P6k/8/8/8/8/8/K7 w - - 3 40",
			moves: []string{"a7a8"},
			want:  "Q7/7k/8/8/8/8/8/K7 b - - 0 40",
		},
		{
			name:  "black pawn promotes on capture",
			fen:   "k7/8/8/8/8/8/6p1/K6R b - - 0 1",
			moves: []string{"g2h1"},
			want:  "k7/8/8/8/8/8/8/K6q w - - 0 2",
		},
		{
			name:  "king move clears both rights",
			fen:   testutil.CastlingFEN,
			moves: []string{"e1e2"},
			want:  "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:  "rook move clears its right",
			fen:   testutil.CastlingFEN,
			moves: []string{"h1h2"},
			want:  "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:  "capturing a corner rook clears both rights",
			fen:   testutil.CastlingFEN,
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			play(t, b, tt.moves...)
			testutil.AssertFEN(t, b.FEN(), tt.want)
		})
	}
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want error
	}{
		{"no piece", InitialFEN, "e3e4", errors.ErrNoPiece},
		{"wrong turn", InitialFEN, "e7e6", errors.ErrWrongTurn},
		{"own capture", InitialFEN, "a1a2", errors.ErrOwnCapture},
		{"pawn too far", InitialFEN, "e2e5", errors.ErrIllegalMove},
		{"bishop blocked", InitialFEN, "f1c4", errors.ErrIllegalMove},
		{"pawn cannot capture forward", "4k3/8/8/8/4p3/4P3/8/4K3 w - - 0 1", "e3e4", errors.ErrIllegalMove},
		{"double push through piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2e4", errors.ErrIllegalMove},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2d3", errors.ErrMovesIntoCheck},
		{"king next to king", "8/8/8/3k4/8/3K4/8/8 w - - 0 1", "d3d4", errors.ErrMovesIntoCheck},
		{"castle through check", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", "e1g1", errors.ErrIllegalMove},
		{"castle out of check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", "e1g1", errors.ErrIllegalMove},
		{"castle without right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1g1", errors.ErrIllegalMove},
		{"castle blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1c1", errors.ErrIllegalMove},
		{"en passant without target", "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e5d6", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			err := b.Move(chess.MustParseSquare(tt.move[:2]), chess.MustParseSquare(tt.move[2:]))
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertFEN(t, b.FEN(), tt.fen, "rejected move must not change the board")
			testutil.AssertEqual(t, b.Ply(), 0)
		})
	}
}

func TestMove_OffBoard(t *testing.T) {
	b := NewBoard()
	err := b.Move(chess.Coordinates{Row: 1, Col: 4}, chess.Coordinates{Row: 8, Col: 4})
	testutil.AssertErrorIs(t, err, errors.ErrOffBoard)
}

func TestMove_ErrorContext(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4")
	err := b.Move(chess.MustParseSquare("e4"), chess.MustParseSquare("e5"))

	var me *errors.MoveError
	if !errors.As(err, &me) {
		t.Fatalf("error %v is not a *MoveError", err)
	}
	testutil.AssertEqual(t, me.From, "e4")
	testutil.AssertEqual(t, me.To, "e5")
	testutil.AssertEqual(t, me.Ply, 2)
	testutil.AssertErrorIs(t, err, errors.ErrWrongTurn)
}

func TestMove_AfterGameOver(t *testing.T) {
	b := NewBoard()
	play(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, b.Metadata().Status, chess.BlackWon)

	err := b.Move(chess.MustParseSquare("e2"), chess.MustParseSquare("e3"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestMove_History(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "e7e5")

	history := b.History()
	testutil.AssertEqual(t, len(history), 3)
	testutil.AssertEqual(t, history[0], InitialFEN)
	testutil.AssertEqual(t, history[2], b.FEN())
	testutil.AssertEqual(t, b.Ply(), 2)

	history[0] = "mutated"
	testutil.AssertEqual(t, b.History()[0], InitialFEN)
}

func TestSaveRestoreState(t *testing.T) {
	b := NewBoard()
	saved := b.SaveState()
	b.MovePiece(chess.MustParseSquare("e2"), chess.MustParseSquare("e4"))
	b.RemovePiece(chess.MustParseSquare("d1"))
	b.RestoreState(saved)
	testutil.AssertFEN(t, b.FEN(), InitialFEN)
}

func TestEmptyBoardSetup(t *testing.T) {
	b := NewEmptyBoard()
	b.AddPiece(NewPiece(chess.White, chess.King), chess.MustParseSquare("e1"))
	b.AddPiece(NewPiece(chess.Black, chess.King), chess.MustParseSquare("e8"))
	b.AddPiece(NewPiece(chess.White, chess.Rook), chess.MustParseSquare("a1"))
	m := b.Metadata()
	m.Castling = chess.CastlingRights{WhiteQueenside: true}
	b.SetMetadata(m)

	testutil.AssertFEN(t, b.FEN(), "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	play(t, b, "e1c1")
	testutil.AssertFEN(t, b.FEN(), "4k3/8/8/8/8/8/8/2KR4 b - - 1 1")
}

func TestOccupant(t *testing.T) {
	b := NewBoard()
	kind, colour, ok := b.Occupant(chess.MustParseSquare("d8"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, kind, chess.Queen)
	testutil.AssertEqual(t, colour, chess.Black)

	_, _, ok = b.Occupant(chess.MustParseSquare("d4"))
	testutil.AssertFalse(t, ok)
}

func TestPieces_RowMajor(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var codes strings.Builder
	for _, occ := range b.Pieces() {
		codes.WriteByte(occ.Piece.Code())
		codes.WriteString(occ.Square.String())
	}
	testutil.AssertEqual(t, codes.String(), "Ra1Ke1Rh1ke8")
}
