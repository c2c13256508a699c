package san

import (
	"fmt"

	"github.com/dgough/pgn-replay-go/internal/chess"
	"github.com/dgough/pgn-replay-go/internal/errors"
)

// ToPosition computes the destination square against the board. Castling
// destinations are fixed by the player's home rank; every other variant
// must carry an explicit destination.
func (m Move) ToPosition(b chess.Board) (chess.Coord, error) {
	switch m.Kind {
	case CastleKingside:
		return chess.NewCoord(7, m.Colour.HomeRank()), nil
	case CastleQueenside:
		return chess.NewCoord(3, m.Colour.HomeRank()), nil
	}
	if !m.To.Valid() {
		return chess.Coord{}, fmt.Errorf("%v move without destination", m.Kind)
	}
	return m.To, nil
}

// FromPosition resolves the unique origin square of the move against the
// board: the matching origin scanner produces the candidates, then the SAN
// hint (if any) disambiguates.
func (m Move) FromPosition(b chess.Board) (chess.Coord, error) {
	if m.Kind.IsCastle() {
		return chess.NewCoord(5, m.Colour.HomeRank()), nil
	}

	to, err := m.ToPosition(b)
	if err != nil {
		return chess.Coord{}, err
	}

	var candidates []chess.Coord
	switch m.Kind {
	case PawnPush:
		candidates = b.PawnPushOrigins(to, m.Colour)
	case PawnDoublePush:
		candidates = b.PawnDoublePushOrigins(to, m.Colour)
	case PawnCapture:
		candidates = b.PawnCaptureOrigins(to, m.Colour)
	case KnightMove, KnightCapture:
		candidates = b.KnightOrigins(to, m.Colour)
	case BishopMove, BishopCapture:
		candidates = b.BishopOrigins(to, m.Colour)
	case RookMove, RookCapture:
		candidates = b.RookOrigins(to, m.Colour)
	case QueenMove, QueenCapture:
		candidates = b.QueenOrigins(to, m.Colour)
	case KingMove, KingCapture:
		candidates = b.KingOrigins(to, m.Colour)
	}

	return selectOrigin(candidates, m.From)
}

// selectOrigin picks the single origin from the scanner's candidates using
// the partial hint.
//
// Zero candidates means no matching piece can reach the destination. One
// candidate is used directly regardless of any hint. Two candidates demand
// a hint on the axis that distinguishes them; a missing, useless, or
// non-matching hint is an unresolvable ambiguity. Three or more candidates
// (combined file+rank disambiguation) are not supported and fail outright.
func selectOrigin(candidates []chess.Coord, hint chess.Coord) (chess.Coord, error) {
	switch len(candidates) {
	case 0:
		return chess.Coord{}, errors.ErrNoLegalOrigin

	case 1:
		return candidates[0], nil

	case 2:
		first, second := candidates[0], candidates[1]

		if first.File == second.File {
			// Same file: only a rank hint can tell them apart.
			if !hint.RankValid() || first.Rank == second.Rank {
				return chess.Coord{}, errors.Wrapf(errors.ErrAmbiguousOrigin,
					"candidates %v and %v need a rank hint", first, second)
			}
			return matchAxis(first, second, hint, byRank)
		}

		if first.Rank == second.Rank {
			// Same rank: the symmetric rule, disambiguate by file.
			if !hint.FileValid() {
				return chess.Coord{}, errors.Wrapf(errors.ErrAmbiguousOrigin,
					"candidates %v and %v need a file hint", first, second)
			}
			return matchAxis(first, second, hint, byFile)
		}

		// Candidates differ on both axes: either hint axis may select.
		if hint.FileValid() {
			return matchAxis(first, second, hint, byFile)
		}
		if hint.RankValid() {
			return matchAxis(first, second, hint, byRank)
		}
		return chess.Coord{}, errors.Wrapf(errors.ErrAmbiguousOrigin,
			"candidates %v and %v with no hint", first, second)

	default:
		return chess.Coord{}, errors.Wrapf(errors.ErrTooManyOrigins,
			"%d candidates", len(candidates))
	}
}

type axis int

const (
	byFile axis = iota
	byRank
)

// matchAxis selects whichever candidate equals the hint on the given axis.
func matchAxis(first, second, hint chess.Coord, a axis) (chess.Coord, error) {
	value := func(c chess.Coord) int {
		if a == byFile {
			return c.File
		}
		return c.Rank
	}
	hintValue := value(hint)

	if value(first) == hintValue {
		return first, nil
	}
	if value(second) == hintValue {
		return second, nil
	}
	return chess.Coord{}, errors.Wrapf(errors.ErrAmbiguousOrigin,
		"hint %v matches neither %v nor %v", hint, first, second)
}
