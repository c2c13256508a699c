package chess

import (
	"fmt"

	"github.com/dgough/pgn-replay-go/internal/errors"
)

// Board is an immutable 64-square position with the game-state flags
// needed to replay a game. Every transition returns a new Board; a Board
// value is never mutated in place. Equality is structural over all fields,
// so Boards compare with == and may be used as map keys.
//
// Tiles are stored in rank-major order with the top rank (rank 8) first:
// index = (8-rank)*8 + (file-1).
type Board struct {
	Tiles [BoardSize * BoardSize]Tile

	// Who has the next move.
	ToMove Colour

	// The four independent castling-availability flags.
	WKingside  bool
	WQueenside bool
	BKingside  bool
	BQueenside bool

	// The en-passant target square, or the zero Coord when none.
	EnPassant Coord

	// Plies since the last capture or pawn move.
	HalfmoveClock uint

	// Increments after each Black move.
	FullmoveNumber uint
}

// backRank is the initial piece ordering of each side's home rank.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	b := Board{
		ToMove:         White,
		WKingside:      true,
		WQueenside:     true,
		BKingside:      true,
		BQueenside:     true,
		FullmoveNumber: 1,
	}
	for file := 1; file <= BoardSize; file++ {
		b.Tiles[NewCoord(file, 1).Index()] = Tile{Piece: NewPiece(backRank[file-1], White)}
		b.Tiles[NewCoord(file, 2).Index()] = Tile{Piece: NewPiece(Pawn, White)}
		b.Tiles[NewCoord(file, 7).Index()] = Tile{Piece: NewPiece(Pawn, Black)}
		b.Tiles[NewCoord(file, 8).Index()] = Tile{Piece: NewPiece(backRank[file-1], Black)}
	}
	return b
}

// At returns the tile at a fully valid coordinate. It panics on an invalid
// coordinate: callers must pre-filter with Coord.Valid.
func (b Board) At(c Coord) Tile {
	if !c.Valid() {
		panic(fmt.Sprintf("chess: invalid coordinate %+v", c))
	}
	return b.Tiles[c.Index()]
}

// Has reports whether the tile at c is occupied by a piece matching the
// given colour and type. Pass NoPiece to match any piece type. It panics on
// an invalid coordinate.
func (b Board) Has(c Coord, colour Colour, pt PieceType) bool {
	tile := b.At(c)
	if tile.Empty() || tile.Piece.Colour != colour {
		return false
	}
	return pt == NoPiece || tile.Piece.EffectiveType() == pt
}

// put returns a copy of the board with the tile at c replaced.
func (b Board) put(c Coord, t Tile) Board {
	b.Tiles[c.Index()] = t
	return b
}

// knightOffsets are the eight knight jumps.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// kingOffsets are the eight adjacent squares.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// Ray directions, as (file, rank) deltas.
var (
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PawnPushOrigins returns the square directly behind to along the colour's
// forward direction, if that colour's pawn occupies it.
func (b Board) PawnPushOrigins(to Coord, colour Colour) []Coord {
	return b.matchOrigins(colour, Pawn, to.Offset(0, -colour.Forward()))
}

// PawnDoublePushOrigins returns the square two ranks behind to, if that
// colour's pawn occupies it. Used only for the opening double step.
func (b Board) PawnDoublePushOrigins(to Coord, colour Colour) []Coord {
	return b.matchOrigins(colour, Pawn, to.Offset(0, -2*colour.Forward()))
}

// PawnCaptureOrigins returns the squares diagonally behind to that hold the
// colour's pawns.
func (b Board) PawnCaptureOrigins(to Coord, colour Colour) []Coord {
	back := -colour.Forward()
	return b.matchOrigins(colour, Pawn, to.Offset(-1, back), to.Offset(1, back))
}

// KnightOrigins returns the knight-offset squares holding the colour's
// knights.
func (b Board) KnightOrigins(to Coord, colour Colour) []Coord {
	return b.offsetOrigins(to, colour, Knight, knightOffsets)
}

// KingOrigins returns the adjacent squares holding the colour's king.
func (b Board) KingOrigins(to Coord, colour Colour) []Coord {
	return b.offsetOrigins(to, colour, King, kingOffsets)
}

// BishopOrigins returns the diagonal nearest-blocker squares holding the
// colour's bishops.
func (b Board) BishopOrigins(to Coord, colour Colour) []Coord {
	return b.rayOrigins(to, colour, Bishop, diagonalDirs[:])
}

// RookOrigins returns the orthogonal nearest-blocker squares holding the
// colour's rooks.
func (b Board) RookOrigins(to Coord, colour Colour) []Coord {
	return b.rayOrigins(to, colour, Rook, orthogonalDirs[:])
}

// QueenOrigins returns the nearest-blocker squares on all eight rays that
// hold the colour's queens.
func (b Board) QueenOrigins(to Coord, colour Colour) []Coord {
	origins := b.rayOrigins(to, colour, Queen, diagonalDirs[:])
	return append(origins, b.rayOrigins(to, colour, Queen, orthogonalDirs[:])...)
}

// matchOrigins keeps the candidate squares occupied by a matching piece.
func (b Board) matchOrigins(colour Colour, pt PieceType, candidates ...Coord) []Coord {
	var origins []Coord
	for _, c := range candidates {
		if c.Valid() && b.Has(c, colour, pt) {
			origins = append(origins, c)
		}
	}
	return origins
}

// offsetOrigins checks the fixed-offset squares around to for a matching
// piece.
func (b Board) offsetOrigins(to Coord, colour Colour, pt PieceType, offsets [8][2]int) []Coord {
	var origins []Coord
	for _, off := range offsets {
		c := to.Offset(off[0], off[1])
		if c.Valid() && b.Has(c, colour, pt) {
			origins = append(origins, c)
		}
	}
	return origins
}

// rayOrigins scans outward from to along each direction until the first
// occupied square or the board edge. The nearest occupied square per ray is
// the sole candidate for that ray; only candidates matching the wanted
// piece and colour are kept.
func (b Board) rayOrigins(to Coord, colour Colour, pt PieceType, dirs [][2]int) []Coord {
	var origins []Coord
	for _, dir := range dirs {
		for c := to.Offset(dir[0], dir[1]); c.Valid(); c = c.Offset(dir[0], dir[1]) {
			if b.At(c).Empty() {
				continue
			}
			if b.Has(c, colour, pt) {
				origins = append(origins, c)
			}
			break
		}
	}
	return origins
}

// Home-corner coordinates used for castling-rights invalidation. The rook
// is identified by coordinate only, not by verified identity: a rook that
// returns to its corner after moving away looks as if it never moved.
var (
	whiteKingsideCorner  = NewCoord(8, 1)
	whiteQueensideCorner = NewCoord(1, 1)
	blackKingsideCorner  = NewCoord(8, 8)
	blackQueensideCorner = NewCoord(1, 8)
)

// Move relocates the piece at from to to and returns the resulting board.
// Preconditions: a piece exists at from; to is empty unless to == capture;
// a piece exists at capture when capture is given (non-zero). A breach
// yields a state violation error and no board.
//
// When promotion is given the moved piece's effective type is replaced.
// When capture differs from to, the capture tile is cleared as well: this
// supports en passant, where the captured pawn is not on the destination
// square.
func (b Board) Move(from, to Coord, promotion PieceType, capture Coord) (Board, error) {
	if !from.Valid() || b.At(from).Empty() {
		return Board{}, fmt.Errorf("no piece on %v: %w", from, errors.ErrMissingPiece)
	}
	capturing := capture.Valid()
	if capturing && b.At(capture).Empty() {
		return Board{}, fmt.Errorf("no piece to capture on %v: %w", capture, errors.ErrMissingPiece)
	}
	if !b.At(to).Empty() && to != capture {
		return Board{}, fmt.Errorf("%v is occupied: %w", to, errors.ErrOccupiedDestination)
	}

	piece := b.At(from).Piece
	next := b.put(from, Tile{})
	if capturing && capture != to {
		next = next.put(capture, Tile{})
	}
	if promotion != NoPiece {
		// The moved piece's type is replaced outright so that the board
		// stays canonical under FEN round trips.
		piece = NewPiece(promotion, piece.Colour)
	}
	next = next.put(to, Tile{Piece: piece})

	next.updateCastlingRights(piece, from)

	next.EnPassant = Coord{}
	if piece.EffectiveType() == Pawn && to.Rank-from.Rank == 2*piece.Colour.Forward() {
		next.EnPassant = NewCoord(from.File, from.Rank+piece.Colour.Forward())
	}

	if capturing || piece.EffectiveType() == Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if piece.Colour == Black {
		next.FullmoveNumber++
	}
	next.ToMove = piece.Colour.Opposite()

	return next, nil
}

// updateCastlingRights clears flags after a king or corner-rook move.
func (b *Board) updateCastlingRights(piece Piece, from Coord) {
	switch piece.EffectiveType() {
	case King:
		if piece.Colour == White {
			b.WKingside = false
			b.WQueenside = false
		} else {
			b.BKingside = false
			b.BQueenside = false
		}
	case Rook:
		switch from {
		case whiteKingsideCorner:
			b.WKingside = false
		case whiteQueensideCorner:
			b.WQueenside = false
		case blackKingsideCorner:
			b.BKingside = false
		case blackQueensideCorner:
			b.BQueenside = false
		}
	}
}

// Castle unconditionally relocates the player's king and the corresponding
// rook to their post-castling squares on the home rank, trusting the caller
// that castling is legal. Both of the player's castling flags are cleared;
// the opponent's are untouched.
func (b Board) Castle(player Colour, side CastleSide) Board {
	rank := player.HomeRank()
	kingFrom := NewCoord(5, rank)
	var kingTo, rookFrom, rookTo Coord
	if side == Kingside {
		kingTo = NewCoord(7, rank)
		rookFrom = NewCoord(8, rank)
		rookTo = NewCoord(6, rank)
	} else {
		kingTo = NewCoord(3, rank)
		rookFrom = NewCoord(1, rank)
		rookTo = NewCoord(4, rank)
	}

	next := b.put(kingTo, b.At(kingFrom)).put(kingFrom, Tile{})
	next = next.put(rookTo, b.At(rookFrom)).put(rookFrom, Tile{})

	if player == White {
		next.WKingside = false
		next.WQueenside = false
	} else {
		next.BKingside = false
		next.BQueenside = false
	}

	next.EnPassant = Coord{}
	next.HalfmoveClock++
	if player == Black {
		next.FullmoveNumber++
	}
	next.ToMove = player.Opposite()

	return next
}
