// Package engine provides chess move validation, board manipulation and
// end-of-game detection.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// FEN field names used in parse errors.
const (
	fieldCount     = "fields"
	fieldPlacement = "placement"
	fieldSide      = "side"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

// castlingOrder is the canonical order of the castling field letters.
const castlingOrder = "KQkq"

func fenError(field, got string, err error) error {
	return &errors.ParseError{Err: err, Field: field, Got: got}
}

// LoadFEN replaces the position with the one described by text.
// The text must be a complete, canonical six-field FEN string. On error the
// board is unchanged. The position history is never touched.
func (b *Board) LoadFEN(text string) error {
	parts := strings.Fields(text)
	if len(parts) != 6 {
		return fenError(fieldCount, strconv.Itoa(len(parts)), errors.ErrInvalidFEN)
	}

	var squares [chess.BoardSize][chess.BoardSize]*Piece
	if err := parsePiecePositions(&squares, parts[0]); err != nil {
		return err
	}

	meta := chess.NewMetadata()
	if err := parseSideToMove(&meta, parts[1]); err != nil {
		return err
	}
	if err := parseCastlingRights(&meta, parts[2]); err != nil {
		return err
	}
	if err := parseEnPassant(&meta, parts[3]); err != nil {
		return err
	}
	if err := parseClocks(&meta, parts[4], parts[5]); err != nil {
		return err
	}

	b.squares = squares
	b.meta = meta
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Ranks run from 8 down to 1 and files from a to h.
func parsePiecePositions(squares *[chess.BoardSize][chess.BoardSize]*Piece, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fieldPlacement, positions, errors.ErrInvalidFEN)
	}

	kings := map[chess.Colour]int{}
	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		lastDigit := false
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				if lastDigit {
					return fenError(fieldPlacement, rank, errors.ErrInvalidFEN)
				}
				col += int(c - '0')
				lastDigit = true
			} else {
				piece, err := PieceFromCode(c)
				if err != nil {
					return fenError(fieldPlacement, string(c), fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err))
				}
				if col >= chess.BoardSize {
					return fenError(fieldPlacement, rank, errors.ErrInvalidFEN)
				}
				squares[row][col] = piece
				if piece.Kind() == chess.King {
					kings[piece.Colour()]++
				}
				col++
				lastDigit = false
			}
			if col > chess.BoardSize {
				return fenError(fieldPlacement, rank, errors.ErrInvalidFEN)
			}
		}
		if col != chess.BoardSize {
			return fenError(fieldPlacement, rank, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fenError(fieldPlacement, positions,
			fmt.Errorf("need exactly one king per side: %w", errors.ErrInvalidFEN))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(meta *chess.Metadata, side string) error {
	switch side {
	case "w":
		meta.ToMove = chess.White
	case "b":
		meta.ToMove = chess.Black
	default:
		return fenError(fieldSide, side, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters must
// appear at most once and in KQkq order.
func parseCastlingRights(meta *chess.Metadata, castling string) error {
	meta.Castling = chess.CastlingRights{}
	if castling == "-" {
		return nil
	}
	if castling == "" {
		return fenError(fieldCastling, castling, errors.ErrInvalidFEN)
	}

	next := 0
	for i := 0; i < len(castling); i++ {
		pos := strings.IndexByte(castlingOrder[next:], castling[i])
		if pos < 0 {
			return fenError(fieldCastling, castling, errors.ErrInvalidFEN)
		}
		next += pos + 1
		switch castling[i] {
		case 'K':
			meta.Castling.WhiteKingside = true
		case 'Q':
			meta.Castling.WhiteQueenside = true
		case 'k':
			meta.Castling.BlackKingside = true
		case 'q':
			meta.Castling.BlackQueenside = true
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square must
// be on the third or sixth rank.
func parseEnPassant(meta *chess.Metadata, ep string) error {
	meta.ClearEnPassant()
	if ep == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(ep)
	if err != nil || sq.String() != ep {
		return fenError(fieldEnPassant, ep, errors.ErrInvalidFEN)
	}
	if sq.Row != 2 && sq.Row != 5 {
		return fenError(fieldEnPassant, ep, errors.ErrInvalidFEN)
	}
	meta.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(meta *chess.Metadata, halfmove, fullmove string) error {
	h, err := parseCounter(halfmove)
	if err != nil {
		return fenError(fieldHalfmove, halfmove, errors.ErrInvalidFEN)
	}
	f, err := parseCounter(fullmove)
	if err != nil || f == 0 {
		return fenError(fieldFullmove, fullmove, errors.ErrInvalidFEN)
	}
	meta.HalfmoveClock = h
	meta.FullmoveNumber = f
	return nil
}

// parseCounter accepts only canonical non-negative decimal integers.
func parseCounter(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if strconv.FormatUint(n, 10) != s {
		return 0, errors.ErrInvalidFEN
	}
	return uint(n), nil
}

// FEN returns the canonical FEN string of the current position.
func (b *Board) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	writeSideToMove(&sb, b.meta)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, b.meta)
	sb.WriteByte(' ')
	writeEnPassant(&sb, b.meta)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", b.meta.HalfmoveClock, b.meta.FullmoveNumber)

	return sb.String()
}

// PositionKey returns the repetition key of the current position.
func (b *Board) PositionKey() string {
	return PositionKey(b.FEN())
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := b.squares[row][col]
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Code())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, meta chess.Metadata) {
	if meta.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling rights to the builder.
func writeCastlingRights(sb *strings.Builder, meta chess.Metadata) {
	if !meta.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if meta.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if meta.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if meta.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if meta.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant square to the builder.
func writeEnPassant(sb *strings.Builder, meta chess.Metadata) {
	if !meta.EnPassant {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(meta.EPSquare.String())
}
