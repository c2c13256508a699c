package pgn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgough/pgn-replay-go/internal/chess"
	"github.com/dgough/pgn-replay-go/internal/errors"
	"github.com/dgough/pgn-replay-go/internal/san"
)

// Grammar fragments. The whole input is validated against the assembled
// patterns before any decoding; any deviation fails the parse outright
// with no recovery and no partial Game.
const (
	sanPat = `(?:O-O(?:-O)?|[KQRNB][a-h]?[1-8]?x?[a-h][1-8]|[a-h]x?[a-h]?[1-8](?:=[QRNB])?)[+#]?`
	annPat = `\{\[%clk \d+:\d{2}:\d{2}(?:\.\d+)?\]\}`

	whiteMovePat = `\d+\.\s+` + sanPat + `(?:\s+` + annPat + `)?`
	blackMovePat = `\d+\.\.\.\s+` + sanPat + `(?:\s+` + annPat + `)?`
)

var (
	headerRE = regexp.MustCompile(`^\[([A-Za-z0-9_]+) "([^"]*)"\]$`)

	// movetextRE validates the whole movetext wholesale: alternating
	// numbered White/Black pairs, the final Black move optional, then the
	// result token. Score digits are validated separately.
	movetextRE = regexp.MustCompile(
		`^` + whiteMovePat +
			`(?:\s+` + blackMovePat + `\s+` + whiteMovePat + `)*` +
			`(?:\s+` + blackMovePat + `)?` +
			`\s+\d+-\d+$`)

	// The decoding scans: one matches only White-numbered tokens, one only
	// Black-numbered tokens. Groups: move number, SAN, annotation.
	whiteMoveRE = regexp.MustCompile(`(\d+)\.\s+(` + sanPat + `)(?:\s+(` + annPat + `))?`)
	blackMoveRE = regexp.MustCompile(`(\d+)\.\.\.\s+(` + sanPat + `)(?:\s+(` + annPat + `))?`)

	resultRE = regexp.MustCompile(`(\d+)-(\d+)$`)

	// moveRE decodes a single SAN token into its fields.
	moveRE = regexp.MustCompile(
		`^(?:(?P<castle>O-O(?:-O)?)` +
			`|(?P<piece>[KQRNB])?(?P<fromfile>[a-h])?(?P<fromrank>[1-8])?` +
			`(?P<capture>x)?(?P<to>[a-h][1-8])(?:=(?P<promotion>[QRNB]))?)` +
			`(?P<check>[+#])?$`)
)

// Parse parses a complete PGN text into a Game: a header block, a blank
// line, and a movetext section ending in a result token. The grammar is
// validated wholesale before decoding; any failure yields no Game.
func Parse(text string) (*Game, error) {
	lines := strings.Split(text, "\n")

	headers := make(map[string]string)
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if line == "" {
			break
		}
		m := headerRE.FindStringSubmatch(line)
		if m == nil {
			return nil, &errors.ParseError{
				Err:      errors.ErrInvalidPGN,
				Line:     i + 1,
				Expected: `header line [Key "Value"]`,
				Got:      fmt.Sprintf("%q", line),
			}
		}
		headers[m[1]] = m[2]
	}
	if len(headers) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidPGN, Expected: "at least one header line"}
	}
	if i >= len(lines) {
		return nil, &errors.ParseError{Err: errors.ErrInvalidPGN, Expected: "blank line before movetext"}
	}

	movetext := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
	if !movetextRE.MatchString(movetext) {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidPGN,
			Line:     i + 2,
			Expected: "movetext of numbered move pairs and a result",
		}
	}

	moves, err := decodeMovetext(movetext)
	if err != nil {
		return nil, err
	}

	score, err := decodeScore(movetext)
	if err != nil {
		return nil, err
	}

	return &Game{headers: headers, moves: moves, score: score}, nil
}

// decodeMovetext re-scans the validated movetext twice, once per colour,
// and zips the two sequences into final order (White[0], Black[0],
// White[1], ...), tolerating a final unanswered White move.
func decodeMovetext(movetext string) ([]san.Move, error) {
	whites := whiteMoveRE.FindAllStringSubmatch(movetext, -1)
	blacks := blackMoveRE.FindAllStringSubmatch(movetext, -1)

	if len(whites)-len(blacks) > 1 || len(blacks) > len(whites) {
		return nil, errors.Wrapf(errors.ErrInvalidPGN,
			"%d White moves cannot pair with %d Black moves", len(whites), len(blacks))
	}

	// Per-colour "pawn files already moved" state, scoped to this parse.
	pawnFiles := map[chess.Colour]map[int]bool{
		chess.White: {},
		chess.Black: {},
	}

	var moves []san.Move
	for i := range whites {
		move, err := decodeSANToken(whites[i][2], whites[i][3], chess.White, pawnFiles[chess.White])
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)

		if i < len(blacks) {
			move, err := decodeSANToken(blacks[i][2], blacks[i][3], chess.Black, pawnFiles[chess.Black])
			if err != nil {
				return nil, err
			}
			moves = append(moves, move)
		}
	}
	return moves, nil
}

// decodeScore extracts the trailing result token and checks each half is
// 0 or 1.
func decodeScore(movetext string) ([2]int, error) {
	m := resultRE.FindStringSubmatch(movetext)
	if m == nil {
		return [2]int{}, errors.Wrap(errors.ErrInvalidPGN, "missing result token")
	}
	white, err := strconv.Atoi(m[1])
	if err != nil || white > 1 {
		return [2]int{}, errors.Wrapf(errors.ErrInvalidPGN, "bad White score %q", m[1])
	}
	black, err := strconv.Atoi(m[2])
	if err != nil || black > 1 {
		return [2]int{}, errors.Wrapf(errors.ErrInvalidPGN, "bad Black score %q", m[2])
	}
	return [2]int{white, black}, nil
}

// decodeSANToken maps one SAN token onto its Move variant. The pawnFiles
// set carries the stateful single/double-push rule: a markerless pawn move
// landing on the mover's relative fourth rank is a double push on the
// first arrival for its file and a single push on a repeat arrival.
func decodeSANToken(text, annotation string, colour chess.Colour, pawnFiles map[int]bool) (san.Move, error) {
	m := moveRE.FindStringSubmatch(text)
	if m == nil {
		return san.Move{}, errors.Wrapf(errors.ErrInvalidPGN, "bad SAN token %q", text)
	}
	group := func(name string) string {
		return m[moveRE.SubexpIndex(name)]
	}

	move := san.Move{
		Colour:     colour,
		Annotation: annotation,
		Check:      group("check") == "+",
		Checkmate:  group("check") == "#",
	}

	if castle := group("castle"); castle != "" {
		if castle == "O-O" {
			move.Kind = san.CastleKingside
		} else {
			move.Kind = san.CastleQueenside
		}
		return move, nil
	}

	if f := group("fromfile"); f != "" {
		move.From.File = int(f[0]-'a') + 1
	}
	if r := group("fromrank"); r != "" {
		move.From.Rank = int(r[0] - '0')
	}
	to, err := chess.CoordFromString(group("to"))
	if err != nil {
		return san.Move{}, errors.Wrapf(errors.ErrInvalidPGN, "bad destination in %q", text)
	}
	move.To = to

	capture := group("capture") != ""

	if piece := group("piece"); piece != "" {
		move.Kind = pieceKind(chess.PieceTypeFromLetter(piece[0]), capture)
		return move, nil
	}

	// Pawn move.
	if p := group("promotion"); p != "" {
		move.Promotion = chess.PieceTypeFromLetter(p[0])
	}
	// The file the moving pawn actually leaves: captures shift one file,
	// so they mark the origin file, not the captured-on file.
	movedFile := to.File
	switch {
	case capture:
		move.Kind = san.PawnCapture
		movedFile = move.From.File
	case to.Rank == relativeFourth(colour) && !pawnFiles[to.File]:
		move.Kind = san.PawnDoublePush
	default:
		move.Kind = san.PawnPush
	}
	pawnFiles[movedFile] = true

	return move, nil
}

// pieceKind maps a piece type and capture flag to the move variant.
func pieceKind(pt chess.PieceType, capture bool) san.Kind {
	switch pt {
	case chess.Knight:
		if capture {
			return san.KnightCapture
		}
		return san.KnightMove
	case chess.Bishop:
		if capture {
			return san.BishopCapture
		}
		return san.BishopMove
	case chess.Rook:
		if capture {
			return san.RookCapture
		}
		return san.RookMove
	case chess.Queen:
		if capture {
			return san.QueenCapture
		}
		return san.QueenMove
	default:
		if capture {
			return san.KingCapture
		}
		return san.KingMove
	}
}

// relativeFourth is the rank a double push lands on: 4 for White, 5 for
// Black.
func relativeFourth(colour chess.Colour) int {
	if colour == chess.White {
		return 4
	}
	return 5
}
