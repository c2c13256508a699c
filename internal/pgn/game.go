// Package pgn parses Portable Game Notation text into a validated Game:
// headers, an ordered SAN move list, and the final score.
package pgn

import (
	"golang.org/x/exp/maps"

	"github.com/dgough/pgn-replay-go/internal/san"
)

// Game is the validated, immutable result of parsing a PGN text. A Game is
// constructed only by Parse; any parser failure prevents construction, so a
// partially-built Game never exists.
type Game struct {
	headers map[string]string
	moves   []san.Move
	score   [2]int
}

// Headers returns a copy of the PGN header key/value pairs. Insertion
// order is not significant.
func (g *Game) Headers() map[string]string {
	return maps.Clone(g.headers)
}

// Header returns the value for a header key, or empty string if absent.
func (g *Game) Header(key string) string {
	return g.headers[key]
}

// Moves returns the ordered move list: alternating White and Black plies.
func (g *Game) Moves() []san.Move {
	moves := make([]san.Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	return len(g.moves)
}

// Score returns the final score pair (White, Black), each 0 or 1.
func (g *Game) Score() (int, int) {
	return g.score[0], g.score[1]
}

// White returns the White player name.
func (g *Game) White() string {
	return g.Header("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.Header("Black")
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.Header("Event")
}
