// Package chess provides the immutable board model: coordinates, pieces,
// tiles, and the 64-square Board value with its state-transition operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the pawn direction for the colour: +1 rank for White,
// -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank for the colour (1 for White, 8 for Black).
func (c Colour) HomeRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PieceType represents a chess piece type. The zero value NoPiece marks
// the absence of a piece.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the uppercase letter for a piece type as used in FEN and
// board rendering ('P' for pawns, which carry no letter in SAN itself).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts an uppercase piece letter to a piece type.
// Unrecognized letters yield NoPiece.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return NoPiece
	}
}

// Piece is a coloured piece with an optional promotion type overriding its
// effective type. The zero value represents "no piece". Equality is
// structural.
type Piece struct {
	Type      PieceType
	Colour    Colour
	Promotion PieceType
}

// NewPiece creates a piece of the given type and colour.
func NewPiece(t PieceType, colour Colour) Piece {
	return Piece{Type: t, Colour: colour}
}

// EffectiveType returns the promotion type when set, otherwise the original
// type. Movement and serialization use the effective type.
func (p Piece) EffectiveType() PieceType {
	if p.Promotion != NoPiece {
		return p.Promotion
	}
	return p.Type
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, using the effective type.
func (p Piece) Letter() byte {
	letter := p.EffectiveType().Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Tile is a board square: empty or holding exactly one piece. The zero
// value is an empty tile.
type Tile struct {
	Piece Piece
}

// Empty returns true if no piece occupies the tile.
func (t Tile) Empty() bool {
	return t.Piece.Type == NoPiece
}

// CastleSide selects between kingside and queenside castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}
