// Package replay holds previously computed boards for a move sequence: an
// append-only board list with a movable read cursor. It contains no
// algorithmic logic of its own; each advance executes the next unapplied
// move against the last stored board.
package replay

import (
	"fmt"

	"github.com/dgough/pgn-replay-go/internal/chess"
	"github.com/dgough/pgn-replay-go/internal/errors"
	"github.com/dgough/pgn-replay-go/internal/san"
)

// History replays a move sequence from the standard initial board,
// remembering every board it has produced. Stored boards are values and
// are never mutated; the cursor only selects which one to read. A History
// is not safe for concurrent mutation: callers that share one must
// serialize access.
type History struct {
	moves   []san.Move
	boards  []chess.Board
	cursor  int
	applied int
}

// New creates a history over the given move sequence, positioned at the
// standard initial board with no moves applied yet.
func New(moves []san.Move) *History {
	return &History{
		moves:  moves,
		boards: []chess.Board{chess.InitialBoard()},
	}
}

// Len returns the number of boards stored so far (plies applied + 1).
func (h *History) Len() int {
	return len(h.boards)
}

// Done returns true once every move has been applied.
func (h *History) Done() bool {
	return h.applied == len(h.moves)
}

// Current returns the board under the cursor.
func (h *History) Current() chess.Board {
	return h.boards[h.cursor]
}

// Advance executes the next unapplied move against the last stored board,
// appends the result, moves the cursor to it, and returns it. A state
// violation is reported with the failing ply and move text attached; the
// history itself is left unchanged by a failed advance.
func (h *History) Advance() (chess.Board, error) {
	if h.Done() {
		return chess.Board{}, fmt.Errorf("all %d moves already applied", len(h.moves))
	}
	move := h.moves[h.applied]
	next, err := move.Execute(h.boards[len(h.boards)-1])
	if err != nil {
		return chess.Board{}, &errors.MoveError{
			Err:      err,
			Ply:      h.applied + 1,
			MoveText: move.String(),
		}
	}
	h.boards = append(h.boards, next)
	h.applied++
	h.cursor = len(h.boards) - 1
	return next, nil
}

// AdvanceAll applies every remaining move and returns the final board.
func (h *History) AdvanceAll() (chess.Board, error) {
	for !h.Done() {
		if _, err := h.Advance(); err != nil {
			return chess.Board{}, err
		}
	}
	return h.Current(), nil
}

// Seek moves the read cursor to the board after the given ply (0 is the
// initial board). It never recomputes or mutates stored boards.
func (h *History) Seek(ply int) error {
	if ply < 0 || ply >= len(h.boards) {
		return fmt.Errorf("ply %d outside stored range 0..%d", ply, len(h.boards)-1)
	}
	h.cursor = ply
	return nil
}

// Boards returns a copy of the stored board sequence, initial board first.
func (h *History) Boards() []chess.Board {
	boards := make([]chess.Board, len(h.boards))
	copy(boards, h.boards)
	return boards
}
