package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

type command struct {
	key         string
	description string
}

var commands = []command{
	{"/help", "Displays this help message"},
	{"/fen", "Prints the FEN string of the current position"},
	{"/metadata", "Prints the metadata of the current position"},
	{"/moves", "Lists the legal moves"},
	{"/board", "Prints the board"},
	{"/json", "Prints the position as JSON"},
	{"/new [fen]", "Starts a new game, optionally from a FEN string"},
	{"/quit", "Quits the game"},
}

// session is one interactive game read line by line from in.
type session struct {
	cfg  *config.Config
	game *game.Game
	out  io.Writer

	// Origin square waiting for its target when a move is entered in two
	// lines.
	origin string
	quit   bool
}

func newSession(cfg *config.Config) *session {
	return &session{
		cfg:  cfg,
		game: game.New(game.WithLog(cfg.LogFile, cfg.Verbosity)),
		out:  cfg.OutputFile,
	}
}

// runInteractive plays games read from in until /quit or end of input.
func runInteractive(in io.Reader, cfg *config.Config) error {
	s := newSession(cfg)
	s.start(cfg.StartFEN)

	scanner := bufio.NewScanner(in)
	for !s.quit {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		s.handleLine(scanner.Text())
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return scanner.Err()
}

// start begins a game from fen, falling back to the standard position.
func (s *session) start(fen string) {
	s.origin = ""
	if err := s.game.StartGame(fen); err != nil {
		fmt.Fprintf(s.out, "Invalid FEN string, starting default game: %v\n", err)
		_ = s.game.StartGame("")
	}
	s.showBoard()
	s.reportFinished()
}

func (s *session) prompt() {
	if s.origin != "" {
		fmt.Fprintln(s.out, "Please select the square to move to:")
		return
	}
	player := "Black"
	if s.game.WhiteToMove() {
		player = "White"
	}
	if s.game.IsFinished() {
		fmt.Fprintln(s.out, "The game is over. Enter /new to play again or /quit to leave:")
		return
	}
	fmt.Fprintf(s.out, "Player %s please select the piece to move:\n", player)
}

// handleLine processes one line of input: a command, a full move such as
// "e2e4" or "e2 e4", or a single square.
func (s *session) handleLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if strings.HasPrefix(line, "/") {
		s.runCommand(line)
		return
	}

	from, to, ok := parseMoveInput(s.origin, line)
	if !ok {
		s.origin = ""
		fmt.Fprintf(s.out, "Cannot read move %q; enter squares such as e2 e4\n", line)
		return
	}
	if to == "" {
		s.origin = from
		return
	}
	s.origin = ""

	if err := s.game.Move(from, to); err != nil {
		s.showBoard()
		fmt.Fprintln(s.out, err)
		return
	}
	s.showBoard()
	s.reportFinished()
}

// parseMoveInput splits a move entry. With a pending origin the line is the
// target square. A lone square is returned as from with an empty to.
func parseMoveInput(pending, line string) (from, to string, ok bool) {
	fields := strings.Fields(line)
	switch {
	case pending != "" && len(fields) == 1 && len(fields[0]) == 2:
		return pending, fields[0], true
	case len(fields) == 2 && len(fields[0]) == 2 && len(fields[1]) == 2:
		return fields[0], fields[1], true
	case len(fields) == 1 && len(fields[0]) == 4:
		return fields[0][:2], fields[0][2:], true
	case len(fields) == 1 && len(fields[0]) == 2:
		return fields[0], "", true
	}
	return "", "", false
}

func (s *session) runCommand(line string) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/help":
		fmt.Fprintln(s.out, "Available commands:")
		for _, c := range commands {
			fmt.Fprintf(s.out, "%s - %s\n", c.key, c.description)
		}
	case "/fen":
		fmt.Fprintln(s.out, s.game.FEN())
	case "/metadata":
		fmt.Fprint(s.out, formatMetadata(s.game.MetaData()))
	case "/moves":
		fmt.Fprintln(s.out, strings.Join(s.game.LegalMoves(), " "))
	case "/board":
		fmt.Fprint(s.out, s.game.Printable())
	case "/json":
		if err := s.game.WriteJSON(s.out); err != nil {
			fmt.Fprintf(s.cfg.LogFile, "Error writing JSON: %v\n", err)
		}
	case "/new":
		s.start(arg)
	case "/quit":
		s.quit = true
	default:
		fmt.Fprintf(s.out, "Unknown command %s; type /help for the list\n", name)
	}
}

func (s *session) showBoard() {
	if s.cfg.Output.ShowBoard {
		fmt.Fprint(s.out, s.game.Printable())
	}
}

func (s *session) reportFinished() {
	if msg := resultMessage(s.game.Status()); msg != "" {
		fmt.Fprintln(s.out, msg)
	}
}

// resultMessage returns the announcement for a finished game, or "" while
// the game is in progress.
func resultMessage(status chess.GameStatus) string {
	switch status {
	case chess.WhiteWon:
		return "White won!"
	case chess.BlackWon:
		return "Black won!"
	case chess.Stalemate:
		return "Draw: Stalemate!"
	case chess.FiftyMoveRule:
		return "Draw: Fifty move rule!"
	case chess.ThreefoldRepetition:
		return "Draw: Threefold repetition!"
	case chess.InsufficientMaterial:
		return "Draw: Insufficient material!"
	}
	return ""
}

func formatMetadata(m chess.Metadata) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "To move: %s\n", m.ToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", castlingString(m.Castling))
	if m.EnPassant {
		fmt.Fprintf(&sb, "En passant: %s\n", m.EPSquare)
	} else {
		sb.WriteString("En passant: -\n")
	}
	fmt.Fprintf(&sb, "Halfmove clock: %d\n", m.HalfmoveClock)
	fmt.Fprintf(&sb, "Fullmove number: %d\n", m.FullmoveNumber)
	fmt.Fprintf(&sb, "Status: %s\n", m.Status)
	return sb.String()
}

func castlingString(r chess.CastlingRights) string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
