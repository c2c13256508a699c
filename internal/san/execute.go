package san

import (
	"github.com/dgough/pgn-replay-go/internal/chess"
	"github.com/dgough/pgn-replay-go/internal/errors"
)

// Execute applies the move to the board and returns the next board. It is a
// pure function: the input board is never mutated. Any state violation
// aborts the move entirely and yields no board.
func (m Move) Execute(b chess.Board) (chess.Board, error) {
	switch m.Kind {
	case CastleKingside:
		return b.Castle(m.Colour, chess.Kingside), nil
	case CastleQueenside:
		return b.Castle(m.Colour, chess.Queenside), nil
	}

	to, err := m.ToPosition(b)
	if err != nil {
		return chess.Board{}, err
	}
	from, err := m.FromPosition(b)
	if err != nil {
		return chess.Board{}, err
	}

	switch m.Kind {
	case PawnCapture:
		return m.executePawnCapture(b, from, to)

	case KnightCapture, BishopCapture, RookCapture, QueenCapture, KingCapture:
		if !b.Has(to, m.Colour.Opposite(), chess.NoPiece) {
			return chess.Board{}, errors.Wrapf(errors.ErrNoCaptureTarget,
				"%v on %v", m.Kind, to)
		}
		return b.Move(from, to, chess.NoPiece, to)

	default:
		return b.Move(from, to, m.Promotion, chess.Coord{})
	}
}

// executePawnCapture handles the two pawn capture forms: a normal diagonal
// capture onto an occupied square, or an en-passant capture onto the
// board's en-passant target, where the captured pawn sits one rank behind
// the destination along the mover's direction.
func (m Move) executePawnCapture(b chess.Board, from, to chess.Coord) (chess.Board, error) {
	if b.Has(to, m.Colour.Opposite(), chess.NoPiece) {
		return b.Move(from, to, m.Promotion, to)
	}

	if to == b.EnPassant {
		captured := to.Offset(0, -m.Colour.Forward())
		if !captured.Valid() || !b.Has(captured, m.Colour.Opposite(), chess.Pawn) {
			return chess.Board{}, errors.Wrapf(errors.ErrNoCaptureTarget,
				"no pawn behind en-passant target %v", to)
		}
		return b.Move(from, to, m.Promotion, captured)
	}

	return chess.Board{}, errors.Wrapf(errors.ErrNoCaptureTarget, "pawn capture on %v", to)
}
