package testutil

// Named positions shared by the engine, game and command tests.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Both sides can castle either way.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// White pawn on e5 can take d5 en passant.
	WhiteEnPassantFEN = "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"

	// Black pawn on e4 can take d4 en passant.
	BlackEnPassantFEN = "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1"

	// Black king on a5 is mated.
	CheckmateFEN = "r1b1qb1r/2B1p1pp/p1p2p1n/k4P2/2B1P3/1PP5/P5PP/2K4R b - - 1 21"

	// White king on e3 has no moves and is not in check.
	StalemateFEN = "2b1k3/p1pp4/5n2/7n/1r6/4K3/q7/1q3r2 w - - 4 47"

	// White is mated by the queen on h4.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Kings and knights only, for repetition shuffles.
	KnightsFEN = "1n2k3/8/8/8/8/8/8/1N2K3 w - - 0 1"
)
