package chess

import "fmt"

// BoardSize is the width and height of the board.
const BoardSize = 8

// Coord is a (file, rank) pair with both axes in 1..8 (file 1 = a, rank 1 =
// White's back rank). An axis value of 0 means "unknown": partial
// coordinates carry SAN disambiguation hints. The zero Coord is fully
// unknown.
type Coord struct {
	File int
	Rank int
}

// NewCoord creates a coordinate from 1-based file and rank values.
func NewCoord(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// FileCoord creates a partial coordinate with only the file known.
func FileCoord(file int) Coord {
	return Coord{File: file}
}

// RankCoord creates a partial coordinate with only the rank known.
func RankCoord(rank int) Coord {
	return Coord{Rank: rank}
}

// FileValid returns true if the file axis holds a known, in-range value.
func (c Coord) FileValid() bool {
	return c.File >= 1 && c.File <= BoardSize
}

// RankValid returns true if the rank axis holds a known, in-range value.
func (c Coord) RankValid() bool {
	return c.Rank >= 1 && c.Rank <= BoardSize
}

// Valid returns true if both axes are known and in range.
func (c Coord) Valid() bool {
	return c.FileValid() && c.RankValid()
}

// Index maps a fully valid coordinate to a linear board index with the top
// rank (rank 8) first: index = (8-rank)*8 + (file-1).
func (c Coord) Index() int {
	return (BoardSize-c.Rank)*BoardSize + (c.File - 1)
}

// CoordFromIndex is the inverse of Index.
func CoordFromIndex(i int) Coord {
	return Coord{
		File: i%BoardSize + 1,
		Rank: BoardSize - i/BoardSize,
	}
}

// Offset returns the coordinate shifted by the given file and rank deltas.
// The result may be out of range; callers filter with Valid.
func (c Coord) Offset(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// String returns algebraic notation for the coordinate ("e4"). Unknown axes
// are omitted, so a file-only hint renders as "e" and a rank-only hint as
// "4".
func (c Coord) String() string {
	s := ""
	if c.FileValid() {
		s += string(rune('a' + c.File - 1))
	}
	if c.RankValid() {
		s += string(rune('0' + c.Rank))
	}
	return s
}

// CoordFromString parses a two-character algebraic square ("e4").
func CoordFromString(s string) (Coord, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("invalid square %q", s)
	}
	return Coord{File: int(s[0]-'a') + 1, Rank: int(s[1]-'0')}, nil
}
