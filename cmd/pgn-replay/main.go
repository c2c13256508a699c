// pgn-replay reads a single PGN game, replays it move by move from the
// standard starting position, and reports the resulting positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dgough/pgn-replay-go/internal/display"
	"github.com/dgough/pgn-replay-go/internal/fen"
	"github.com/dgough/pgn-replay-go/internal/pgn"
	"github.com/dgough/pgn-replay-go/internal/replay"
)

const programVersion = "0.1.0"

var (
	showFEN   = flag.Bool("fen", false, "print the FEN of every position as the game is replayed")
	showBoard = flag.Bool("board", false, "print the final board")
	coloured  = flag.Bool("color", false, "use ANSI colours when printing the board")
	svgFile   = flag.String("svg", "", "write an SVG diagram of the final position to `file`")
	version   = flag.Bool("version", false, "print the version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [game.pgn]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Reads a PGN game from the given file (or stdin) and replays it.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("pgn-replay version %s\n", programVersion)
		os.Exit(0)
	}

	text, err := readInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	game, err := pgn.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing PGN: %v\n", err)
		os.Exit(1)
	}

	history := replay.New(game.Moves())
	if *showFEN {
		fmt.Println(fen.Encode(history.Current()))
	}
	for !history.Done() {
		board, err := history.Advance()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error replaying game: %v\n", err)
			os.Exit(1)
		}
		if *showFEN {
			fmt.Println(fen.Encode(board))
		}
	}

	white, black := game.Score()
	fmt.Printf("%s vs %s: %d-%d after %d plies\n",
		game.White(), game.Black(), white, black, game.PlyCount())

	final := history.Current()
	if *showBoard {
		if *coloured {
			fmt.Print(display.ColourText(final))
		} else {
			fmt.Print(display.Text(final))
		}
	}

	if *svgFile != "" {
		if err := writeSVG(*svgFile, history); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing SVG: %v\n", err)
			os.Exit(1)
		}
	}
}

// readInput reads the PGN text from the file argument, or stdin when no
// argument is given.
func readInput() (string, error) {
	if flag.NArg() > 1 {
		return "", fmt.Errorf("expected at most one input file, got %d", flag.NArg())
	}
	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(flag.Arg(0))
	return string(data), err
}

// writeSVG renders the final position to the named file.
func writeSVG(path string, history *replay.History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return display.SVG(f, history.Current())
}
