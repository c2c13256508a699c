package display

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/dgough/pgn-replay-go/internal/chess"
)

const squareSize = 45

// Unicode chess glyphs, indexed by piece type, per colour.
var (
	whiteGlyphs = map[chess.PieceType]string{
		chess.Pawn:   "♙",
		chess.Knight: "♘",
		chess.Bishop: "♗",
		chess.Rook:   "♖",
		chess.Queen:  "♕",
		chess.King:   "♔",
	}
	blackGlyphs = map[chess.PieceType]string{
		chess.Pawn:   "♟",
		chess.Knight: "♞",
		chess.Bishop: "♝",
		chess.Rook:   "♜",
		chess.Queen:  "♛",
		chess.King:   "♚",
	}
)

// SVG writes an 8x8 board diagram of the position to w.
func SVG(w io.Writer, b chess.Board) error {
	size := chess.BoardSize * squareSize
	canvas := svg.New(w)
	canvas.Start(size, size)

	for rank := chess.BoardSize; rank >= 1; rank-- {
		for file := 1; file <= chess.BoardSize; file++ {
			x := (file - 1) * squareSize
			y := (chess.BoardSize - rank) * squareSize

			fill := "fill:rgb(240,217,181)"
			if (file+rank)%2 == 0 {
				fill = "fill:rgb(181,136,99)"
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			tile := b.At(chess.NewCoord(file, rank))
			if tile.Empty() {
				continue
			}
			glyphs := whiteGlyphs
			if tile.Piece.Colour == chess.Black {
				glyphs = blackGlyphs
			}
			canvas.Text(x+squareSize/2, y+squareSize*3/4, glyphs[tile.Piece.EffectiveType()],
				"font-size:34px;text-anchor:middle")
		}
	}

	canvas.End()
	return nil
}
