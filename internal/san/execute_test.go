package san

import (
	goerrors "errors"
	"testing"

	"github.com/dgough/pgn-replay-go/internal/chess"
	"github.com/dgough/pgn-replay-go/internal/errors"
	"github.com/dgough/pgn-replay-go/internal/testutil"
)

func TestExecutePawnPush(t *testing.T) {
	b := chess.InitialBoard()

	next, err := Move{Kind: PawnDoublePush, Colour: chess.White, To: coord(t, "e4")}.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "e4")).Piece, chess.NewPiece(chess.Pawn, chess.White))
	testutil.AssertTrue(t, next.At(coord(t, "e2")).Empty())
	testutil.AssertEqual(t, next.EnPassant, coord(t, "e3"))

	next, err = Move{Kind: PawnPush, Colour: chess.Black, To: coord(t, "e6")}.Execute(next)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "e6")).Piece, chess.NewPiece(chess.Pawn, chess.Black))
	testutil.AssertEqual(t, next.EnPassant, chess.Coord{}, "single push sets no target")
}

func TestExecutePieceCapture(t *testing.T) {
	b := board(t, map[string]chess.Piece{
		"f3": chess.NewPiece(chess.Knight, chess.White),
		"e5": chess.NewPiece(chess.Pawn, chess.Black),
	})

	next, err := Move{Kind: KnightCapture, Colour: chess.White, To: coord(t, "e5")}.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "e5")).Piece, chess.NewPiece(chess.Knight, chess.White))
	testutil.AssertTrue(t, next.At(coord(t, "f3")).Empty())
	testutil.AssertEqual(t, next.HalfmoveClock, uint(0), "capture resets the clock")
}

func TestExecuteCaptureWithoutTarget(t *testing.T) {
	b := board(t, map[string]chess.Piece{
		"f3": chess.NewPiece(chess.Knight, chess.White),
	})

	_, err := Move{Kind: KnightCapture, Colour: chess.White, To: coord(t, "e5")}.Execute(b)
	testutil.AssertTrue(t, goerrors.Is(err, errors.ErrNoCaptureTarget), "empty destination")

	// A friendly piece on the destination is not a capture target either.
	b2 := board(t, map[string]chess.Piece{
		"f3": chess.NewPiece(chess.Knight, chess.White),
		"e5": chess.NewPiece(chess.Pawn, chess.White),
	})
	_, err = Move{Kind: KnightCapture, Colour: chess.White, To: coord(t, "e5")}.Execute(b2)
	testutil.AssertTrue(t, goerrors.Is(err, errors.ErrNoCaptureTarget))
}

func TestExecutePawnCapture(t *testing.T) {
	b := board(t, map[string]chess.Piece{
		"e4": chess.NewPiece(chess.Pawn, chess.White),
		"d5": chess.NewPiece(chess.Pawn, chess.Black),
	})

	m := Move{Kind: PawnCapture, Colour: chess.White, From: chess.FileCoord(5), To: coord(t, "d5")}
	next, err := m.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "d5")).Piece, chess.NewPiece(chess.Pawn, chess.White))
	testutil.AssertTrue(t, next.At(coord(t, "e4")).Empty())
}

func TestExecutePawnCaptureEnPassant(t *testing.T) {
	b := board(t, map[string]chess.Piece{
		"e5": chess.NewPiece(chess.Pawn, chess.White),
		"d5": chess.NewPiece(chess.Pawn, chess.Black),
	})
	b.EnPassant = coord(t, "d6")

	m := Move{Kind: PawnCapture, Colour: chess.White, From: chess.FileCoord(5), To: coord(t, "d6")}
	next, err := m.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "d6")).Piece, chess.NewPiece(chess.Pawn, chess.White))
	testutil.AssertTrue(t, next.At(coord(t, "d5")).Empty(), "the bypassed pawn is removed")

	// The same capture without the en-passant target fails.
	b.EnPassant = chess.Coord{}
	_, err = m.Execute(b)
	testutil.AssertTrue(t, goerrors.Is(err, errors.ErrNoCaptureTarget))
}

func TestExecutePromotion(t *testing.T) {
	b := board(t, map[string]chess.Piece{
		"g7": chess.NewPiece(chess.Pawn, chess.White),
		"h8": chess.NewPiece(chess.Rook, chess.Black),
	})

	push := Move{Kind: PawnPush, Colour: chess.White, To: coord(t, "g8"), Promotion: chess.Queen}
	next, err := push.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "g8")).Piece, chess.NewPiece(chess.Queen, chess.White))

	capture := Move{Kind: PawnCapture, Colour: chess.White, From: chess.FileCoord(7), To: coord(t, "h8"), Promotion: chess.Knight}
	next, err = capture.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "h8")).Piece, chess.NewPiece(chess.Knight, chess.White))
}

func TestExecuteCastle(t *testing.T) {
	b := chess.InitialBoard()
	b.Tiles[coord(t, "f1").Index()] = chess.Tile{}
	b.Tiles[coord(t, "g1").Index()] = chess.Tile{}

	next, err := Move{Kind: CastleKingside, Colour: chess.White}.Execute(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.At(coord(t, "g1")).Piece, chess.NewPiece(chess.King, chess.White))
	testutil.AssertEqual(t, next.At(coord(t, "f1")).Piece, chess.NewPiece(chess.Rook, chess.White))
	testutil.AssertFalse(t, next.WKingside)
	testutil.AssertFalse(t, next.WQueenside)
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"pawn push", Move{Kind: PawnPush, To: coord(t, "e3")}, "e3"},
		{"double push", Move{Kind: PawnDoublePush, To: coord(t, "e4")}, "e4"},
		{"pawn capture", Move{Kind: PawnCapture, From: chess.FileCoord(5), To: coord(t, "d5")}, "exd5"},
		{"promotion", Move{Kind: PawnPush, To: coord(t, "e8"), Promotion: chess.Queen}, "e8=Q"},
		{"capture promotion", Move{Kind: PawnCapture, From: chess.FileCoord(7), To: coord(t, "h8"), Promotion: chess.Knight}, "gxh8=N"},
		{"knight move", Move{Kind: KnightMove, To: coord(t, "f3")}, "Nf3"},
		{"knight with file hint", Move{Kind: KnightMove, From: chess.FileCoord(2), To: coord(t, "d2")}, "Nbd2"},
		{"rook with rank hint", Move{Kind: RookMove, From: chess.RankCoord(1), To: coord(t, "e1")}, "R1e1"},
		{"queen capture", Move{Kind: QueenCapture, To: coord(t, "f7")}, "Qxf7"},
		{"check suffix", Move{Kind: BishopMove, To: coord(t, "b5"), Check: true}, "Bb5+"},
		{"checkmate suffix", Move{Kind: QueenCapture, To: coord(t, "f7"), Checkmate: true}, "Qxf7#"},
		{"kingside castle", Move{Kind: CastleKingside}, "O-O"},
		{"queenside castle", Move{Kind: CastleQueenside}, "O-O-O"},
		{"castle with check", Move{Kind: CastleKingside, Check: true}, "O-O+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.move.String(), tt.want)
		})
	}
}
