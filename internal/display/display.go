// Package display renders boards for humans: a plain-text dump, an ANSI
// coloured variant for terminals, and an SVG diagram. The output is
// non-normative and is never parsed back.
package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dgough/pgn-replay-go/internal/chess"
)

// initialCounts is the per-type piece count each side starts with.
var initialCounts = map[chess.PieceType]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// tallyOrder fixes the rendering order of the captured-piece tally.
var tallyOrder = []chess.PieceType{
	chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn,
}

// Text returns a multi-line dump of the board: the captured-piece tally
// for each side followed by an 8x8 grid of piece letters, '.' for empty
// squares.
func Text(b chess.Board) string {
	var sb strings.Builder

	sb.WriteString("captured by White: " + captured(b, chess.Black) + "\n")
	sb.WriteString("captured by Black: " + captured(b, chess.White) + "\n")

	for rank := chess.BoardSize; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := 1; file <= chess.BoardSize; file++ {
			tile := b.At(chess.NewCoord(file, rank))
			if tile.Empty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(tile.Piece.Letter())
			}
			if file < chess.BoardSize {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	return sb.String()
}

// captured lists the letters of the colour's pieces no longer on the
// board.
func captured(b chess.Board, colour chess.Colour) string {
	remaining := make(map[chess.PieceType]int)
	for _, tile := range b.Tiles {
		if !tile.Empty() && tile.Piece.Colour == colour {
			remaining[tile.Piece.EffectiveType()]++
		}
	}

	var letters []string
	for _, pt := range tallyOrder {
		for n := remaining[pt]; n < initialCounts[pt]; n++ {
			letters = append(letters, string(chess.NewPiece(pt, colour).Letter()))
		}
	}
	if len(letters) == 0 {
		return "-"
	}
	return strings.Join(letters, " ")
}

// Checkerboard styles for the coloured renderer.
var (
	lightSquare = color.New(color.FgBlack, color.BgWhite)
	darkSquare  = color.New(color.FgBlack, color.BgCyan)
)

// ColourText returns the grid of Text rendered with an ANSI checkerboard
// background.
func ColourText(b chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := 1; file <= chess.BoardSize; file++ {
			tile := b.At(chess.NewCoord(file, rank))
			cell := " . "
			if !tile.Empty() {
				cell = fmt.Sprintf(" %c ", tile.Piece.Letter())
			}
			if (file+rank)%2 == 0 {
				sb.WriteString(darkSquare.Sprint(cell))
			} else {
				sb.WriteString(lightSquare.Sprint(cell))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	return sb.String()
}
