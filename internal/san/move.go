// Package san models SAN moves as a closed set of tagged variants and
// resolves them against a Board: each move computes its destination and its
// unique origin, then executes as a pure Board-to-Board transition.
package san

import (
	"strings"

	"github.com/dgough/pgn-replay-go/internal/chess"
)

// Kind tags the move shape. Each SAN move form has one variant; dispatch is
// by switch so the compiler keeps Execute and FromPosition exhaustive.
type Kind int

const (
	PawnPush Kind = iota
	PawnDoublePush
	PawnCapture
	KnightMove
	KnightCapture
	BishopMove
	BishopCapture
	RookMove
	RookCapture
	QueenMove
	QueenCapture
	KingMove
	KingCapture
	CastleKingside
	CastleQueenside
)

// String returns the string representation of a move kind.
func (k Kind) String() string {
	names := []string{
		"PawnPush", "PawnDoublePush", "PawnCapture",
		"KnightMove", "KnightCapture", "BishopMove", "BishopCapture",
		"RookMove", "RookCapture", "QueenMove", "QueenCapture",
		"KingMove", "KingCapture", "CastleKingside", "CastleQueenside",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// PieceType returns the type of the piece the kind moves.
func (k Kind) PieceType() chess.PieceType {
	switch k {
	case PawnPush, PawnDoublePush, PawnCapture:
		return chess.Pawn
	case KnightMove, KnightCapture:
		return chess.Knight
	case BishopMove, BishopCapture:
		return chess.Bishop
	case RookMove, RookCapture:
		return chess.Rook
	case QueenMove, QueenCapture:
		return chess.Queen
	case KingMove, KingCapture, CastleKingside, CastleQueenside:
		return chess.King
	}
	return chess.NoPiece
}

// IsCapture returns true for the capturing variants.
func (k Kind) IsCapture() bool {
	switch k {
	case PawnCapture, KnightCapture, BishopCapture, RookCapture, QueenCapture, KingCapture:
		return true
	}
	return false
}

// IsCastle returns true for the two castling variants.
func (k Kind) IsCastle() bool {
	return k == CastleKingside || k == CastleQueenside
}

// Move is a single SAN move resolved far enough to execute against a
// Board. Moves are immutable and created only by the PGN parser. From is a
// partial coordinate carrying the SAN disambiguation hint; To is absent
// only for castling, which is positionally fixed.
type Move struct {
	Kind   Kind
	Colour chess.Colour

	// From is the optional partial origin hint ("Nbd7" knows only the file).
	From chess.Coord

	// To is the destination square; the zero Coord for castling moves.
	To chess.Coord

	// Promotion is the piece type a pawn promotes to, or NoPiece.
	Promotion chess.PieceType

	// Check and Checkmate record the +/# suffix present in the SAN text.
	// They are carried through, never computed.
	Check     bool
	Checkmate bool

	// Annotation is opaque metadata attached to the move in the movetext
	// (e.g. a {[%clk 0:03:00]} clock comment), carried through unmodified.
	Annotation string
}

// String renders the move back to SAN, including the disambiguation hint,
// capture marker, promotion, and check suffix that were parsed.
func (m Move) String() string {
	var sb strings.Builder

	switch m.Kind {
	case CastleKingside:
		sb.WriteString("O-O")
	case CastleQueenside:
		sb.WriteString("O-O-O")
	case PawnPush, PawnDoublePush, PawnCapture:
		if m.Kind == PawnCapture {
			sb.WriteString(m.From.String())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != chess.NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Kind.PieceType().Letter())
		sb.WriteString(m.From.String())
		if m.Kind.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	if m.Checkmate {
		sb.WriteByte('#')
	} else if m.Check {
		sb.WriteByte('+')
	}

	return sb.String()
}
