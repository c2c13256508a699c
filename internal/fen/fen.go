// Package fen encodes and decodes the Forsyth-Edwards Notation board
// encoding. Decoding is strict: any input not matching the exact grammar
// fails outright with no partial value, and Decode(Encode(b)) reproduces b
// for every Board the model can produce.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgough/pgn-replay-go/internal/chess"
	"github.com/dgough/pgn-replay-go/internal/errors"
)

// Initial is the FEN string for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Board.
func Decode(text string) (chess.Board, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 {
		return chess.Board{}, fmt.Errorf("want 6 fields, got %d: %w", len(fields), errors.ErrInvalidFEN)
	}

	var b chess.Board

	if err := decodePlacement(&b, fields[0]); err != nil {
		return chess.Board{}, err
	}
	if err := decodeSideToMove(&b, fields[1]); err != nil {
		return chess.Board{}, err
	}
	if err := decodeCastlingRights(&b, fields[2]); err != nil {
		return chess.Board{}, err
	}
	if err := decodeEnPassant(&b, fields[3]); err != nil {
		return chess.Board{}, err
	}
	if err := decodeClocks(&b, fields[4], fields[5]); err != nil {
		return chess.Board{}, err
	}

	return b, nil
}

// decodePlacement parses the piece placement field: eight slash-separated
// rows, top rank first, each expanding to exactly eight tiles.
func decodePlacement(b *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("want 8 rows, got %d: %w", len(rows), errors.ErrInvalidFEN)
	}

	for i, row := range rows {
		rank := chess.BoardSize - i
		file := 1
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceFromFENChar(c)
				if !ok {
					return fmt.Errorf("bad piece character %q in row %q: %w", c, row, errors.ErrInvalidFEN)
				}
				if file > chess.BoardSize {
					return fmt.Errorf("row %q longer than 8 tiles: %w", row, errors.ErrInvalidFEN)
				}
				b.Tiles[chess.NewCoord(file, rank).Index()] = chess.Tile{Piece: piece}
				file++
			}
		}
		if file != chess.BoardSize+1 {
			return fmt.Errorf("row %q expands to %d tiles: %w", row, file-1, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// pieceFromFENChar maps a FEN letter to a piece: lowercase black,
// uppercase white.
func pieceFromFENChar(c byte) (chess.Piece, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	t := chess.PieceTypeFromLetter(c)
	if t == chess.NoPiece {
		return chess.Piece{}, false
	}
	return chess.NewPiece(t, colour), true
}

// decodeSideToMove parses the side-to-move field.
func decodeSideToMove(b *chess.Board, field string) error {
	switch field {
	case "w":
		b.ToMove = chess.White
	case "b":
		b.ToMove = chess.Black
	default:
		return fmt.Errorf("bad side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// decodeCastlingRights parses the castling field: "-" or an ordered,
// non-repeating subset of "KQkq".
func decodeCastlingRights(b *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if field == "" {
		return fmt.Errorf("empty castling field: %w", errors.ErrInvalidFEN)
	}

	const order = "KQkq"
	next := 0
	for i := 0; i < len(field); i++ {
		pos := strings.IndexByte(order[next:], field[i])
		if pos < 0 {
			return fmt.Errorf("bad castling field %q: %w", field, errors.ErrInvalidFEN)
		}
		next += pos + 1
		switch field[i] {
		case 'K':
			b.WKingside = true
		case 'Q':
			b.WQueenside = true
		case 'k':
			b.BKingside = true
		case 'q':
			b.BQueenside = true
		}
	}
	return nil
}

// decodeEnPassant parses the en-passant field: "-" or a square whose rank
// is 3 or 6.
func decodeEnPassant(b *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	target, err := chess.CoordFromString(field)
	if err != nil {
		return fmt.Errorf("bad en-passant target %q: %w", field, errors.ErrInvalidFEN)
	}
	if target.Rank != 3 && target.Rank != 6 {
		return fmt.Errorf("en-passant target %q not on rank 3 or 6: %w", field, errors.ErrInvalidFEN)
	}
	b.EnPassant = target
	return nil
}

// decodeClocks parses the halfmove clock and fullmove number fields.
func decodeClocks(b *chess.Board, halfmove, fullmove string) error {
	h, err := strconv.Atoi(halfmove)
	if err != nil || h < 0 {
		return fmt.Errorf("bad halfmove clock %q: %w", halfmove, errors.ErrInvalidFEN)
	}
	f, err := strconv.Atoi(fullmove)
	if err != nil || f < 1 {
		return fmt.Errorf("bad fullmove number %q: %w", fullmove, errors.ErrInvalidFEN)
	}
	b.HalfmoveClock = uint(h)
	b.FullmoveNumber = uint(f)
	return nil
}

// Encode serializes a Board to its FEN string, the exact inverse of Decode.
func Encode(b chess.Board) string {
	var sb strings.Builder

	writePlacement(&sb, b)
	sb.WriteByte(' ')
	if b.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, b)
	sb.WriteByte(' ')
	if b.EnPassant.Valid() {
		sb.WriteString(b.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the run-length-encoded piece placement.
func writePlacement(sb *strings.Builder, b chess.Board) {
	for rank := chess.BoardSize; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= chess.BoardSize; file++ {
			tile := b.At(chess.NewCoord(file, rank))
			if tile.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(tile.Piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the flags in the fixed KQkq order, or "-".
func writeCastlingRights(sb *strings.Builder, b chess.Board) {
	any := false
	if b.WKingside {
		sb.WriteByte('K')
		any = true
	}
	if b.WQueenside {
		sb.WriteByte('Q')
		any = true
	}
	if b.BKingside {
		sb.WriteByte('k')
		any = true
	}
	if b.BQueenside {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}
