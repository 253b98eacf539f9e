package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// gameFrom builds a game from a piece placement with team to move.
func gameFrom(t *testing.T, placement string, team chess.Team) *Game {
	t.Helper()
	g := NewGame()
	g.SetBoard(testutil.MustBoard(t, placement))
	g.SetTeamTurn(team)
	return g
}

// play applies coordinate moves in order and fails the test on the first
// rejected one.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := g.MakeMove(testutil.Mv(text)); err != nil {
			t.Fatalf("MakeMove(%s) error: %v", text, err)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.TeamTurn(), chess.White)
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertBoardEqual(t, g.Board(), chess.NewInitialBoard())

	_, ok := g.LastMove()
	testutil.AssertFalse(t, ok)

	moves, err := g.AllValidMoves(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 20)
}

// TestGame_PawnOpening: a fresh game's e-pawn can advance one or two squares.
func TestGame_PawnOpening(t *testing.T) {
	g := NewGame()
	moves, err := g.ValidMoves(chess.NewSquare(2, 5))
	testutil.AssertNoError(t, err)
	testutil.AssertSameMoves(t, moves, []chess.Move{
		chess.NewMove(chess.NewSquare(2, 5), chess.NewSquare(3, 5)),
		chess.NewMove(chess.NewSquare(2, 5), chess.NewSquare(4, 5)),
	})
}

// TestGame_LoneRook: a rook on a1 reaches all 14 squares of its rank and file.
func TestGame_LoneRook(t *testing.T) {
	g := gameFrom(t, "7K/8/8/8/8/8/8/R7", chess.White)
	moves, err := g.ValidMoves(testutil.Sq("a1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 14)

	seen := make(map[chess.Square]bool)
	for _, m := range moves {
		testutil.AssertTrue(t, m.To.Row == 1 || m.To.Col == 1, "move %s leaves rank and file", m)
		seen[m.To] = true
	}
	testutil.AssertEqual(t, len(seen), 14)
}

// TestGame_RookChecksKing: a rook on the open e-file checks the king.
func TestGame_RookChecksKing(t *testing.T) {
	board := chess.NewBoard()
	board.Set(chess.NewSquare(1, 5), chess.W(chess.King))
	board.Set(chess.NewSquare(8, 5), chess.B(chess.Rook))

	g := NewGame()
	g.SetBoard(board)

	inCheck, err := g.IsInCheck(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, inCheck)
}

// TestGame_PromotionChoices: a pawn on the seventh rank has one move per
// promotion kind.
func TestGame_PromotionChoices(t *testing.T) {
	g := gameFrom(t, "8/P7/8/8/8/8/8/4K3", chess.White)
	moves, err := g.ValidMoves(chess.NewSquare(7, 1))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 4)

	kinds := make(map[chess.Kind]bool)
	for _, m := range moves {
		testutil.AssertEqual(t, m.To, chess.NewSquare(8, 1))
		kinds[m.Promotion] = true
	}
	testutil.AssertEqual(t, kinds, map[chess.Kind]bool{
		chess.Queen: true, chess.Rook: true, chess.Bishop: true, chess.Knight: true,
	})
}

// TestGame_WrongTurn: moving out of turn fails and leaves the game unchanged.
func TestGame_WrongTurn(t *testing.T) {
	g := NewGame()
	before := g.Board()

	err := g.MakeMove(testutil.Mv("e7e5"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	testutil.AssertBoardEqual(t, g.Board(), before)
	testutil.AssertEqual(t, g.TeamTurn(), chess.White)
	testutil.AssertEqual(t, g.Ply(), 0)
}

func TestGame_MakeMoveRejections(t *testing.T) {
	tests := []struct {
		name   string
		move   chess.Move
		reason string
	}{
		{"empty start square", testutil.Mv("e4e5"), "no piece"},
		{"wrong team", testutil.Mv("e7e5"), "turn"},
		{"friendly destination", testutil.Mv("a1a2"), "friendly"},
		{"impossible geometry", testutil.Mv("e2e5"), "not a legal move"},
		{"knight moved like a rook", testutil.Mv("g1g3"), "not a legal move"},
		{"promotion without reaching back rank", testutil.Mv("e2e4q"), "not a legal move"},
		{"off the board", chess.NewMove(chess.NewSquare(2, 5), chess.NewSquare(9, 5)), "off the board"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame()
			before := g.Board()

			err := g.MakeMove(tt.move)
			testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("MakeMove() error = %T, want *MoveError", err)
			}
			testutil.AssertContains(t, moveErr.Reason, tt.reason)
			testutil.AssertEqual(t, moveErr.PlyNum, 1)
			testutil.AssertEqual(t, moveErr.Team, "White")

			testutil.AssertBoardEqual(t, g.Board(), before)
			testutil.AssertEqual(t, g.TeamTurn(), chess.White)
		})
	}
}

func TestGame_MakeMoveIntoCheck(t *testing.T) {
	g := gameFrom(t, "k3r3/8/8/8/8/8/4R3/4K3", chess.White)
	before := g.Board()

	err := g.MakeMove(testutil.Mv("e2d2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertBoardEqual(t, g.Board(), before)

	testutil.AssertNoError(t, g.MakeMove(testutil.Mv("e2e8")))
	testutil.AssertEqual(t, g.Board().Get(testutil.Sq("e8")), chess.W(chess.Rook))
}

func TestGame_MakeMoveAdvances(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	testutil.AssertEqual(t, g.TeamTurn(), chess.Black)
	testutil.AssertEqual(t, g.Ply(), 1)
	testutil.AssertEqual(t, g.Board().Get(testutil.Sq("e4")), chess.W(chess.Pawn))
	testutil.AssertTrue(t, g.Board().Get(testutil.Sq("e2")).IsEmpty())

	play(t, g, "e7e5", "g1f3", "b8c6")
	testutil.AssertEqual(t, g.TeamTurn(), chess.White)
	testutil.AssertEqual(t, g.History(), testutil.Mvs("e2e4", "e7e5", "g1f3", "b8c6"))

	last, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last, testutil.Mv("b8c6"))

	pos := g.Position()
	testutil.AssertNoError(t, pos.Validate())
}

func TestGame_HistoryIsCopy(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")
	h := g.History()
	h[0] = testutil.Mv("d2d4")
	testutil.AssertEqual(t, g.History(), testutil.Mvs("e2e4"))
}

func TestGame_Promotion(t *testing.T) {
	g := gameFrom(t, "k7/4P3/8/8/8/8/8/4K3", chess.White)

	err := g.MakeMove(testutil.Mv("e7e8"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove, "promotion kind is required")

	play(t, g, "e7e8n")
	testutil.AssertEqual(t, g.Board().Get(testutil.Sq("e8")), chess.W(chess.Knight))
}

func TestGame_FoolsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	inCheck, err := g.IsInCheck(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, inCheck)

	mate, err := g.IsInCheckmate(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, mate)

	stale, err := g.IsInStalemate(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, stale)

	mate, err = g.IsInCheckmate(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, mate)

	status, err := g.Status()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, Checkmated)

	moves, err := g.AllValidMoves(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 0)
}

func TestGame_Stalemate(t *testing.T) {
	g := gameFrom(t, "7k/5Q2/6K1/8/8/8/8/8", chess.Black)

	stale, err := g.IsInStalemate(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, stale)

	inCheck, err := g.IsInCheck(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, inCheck)

	mate, err := g.IsInCheckmate(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, mate)

	status, err := g.Status()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, Stalemated)
}

func TestGame_StalemateReachedByMove(t *testing.T) {
	g := gameFrom(t, "7k/8/6K1/5Q2/8/8/8/8", chess.White)
	play(t, g, "f5f7")

	status, err := g.Status()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, Stalemated)
}

// TestGame_QueriesDoNotMutate runs every query on every square and checks the
// game is unchanged afterwards.
func TestGame_QueriesDoNotMutate(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6")

	board := g.Board()
	pos := g.Position()
	turn := g.TeamTurn()

	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareAt(i)
		if g.Board().Get(sq).IsEmpty() {
			continue
		}
		_, err := g.ValidMoves(sq)
		testutil.AssertNoError(t, err)
	}
	for team := chess.White; team < chess.NumTeams; team++ {
		_, _ = g.IsInCheck(team)
		_, _ = g.IsInCheckmate(team)
		_, _ = g.IsInStalemate(team)
		_, _ = g.AllValidMoves(team)
	}
	_, _ = g.Status()

	testutil.AssertBoardEqual(t, g.Board(), board)
	testutil.AssertTrue(t, g.Position() == pos, "position changed")
	testutil.AssertEqual(t, g.TeamTurn(), turn)
}

func TestGame_BoardIsCopy(t *testing.T) {
	g := NewGame()
	b := g.Board()
	b.Clear()
	testutil.AssertEqual(t, g.Board().Count(), 32)
}

func TestGame_SetBoard(t *testing.T) {
	g := NewGame()
	board := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/R3K3")
	g.SetBoard(board)

	// Later changes to the caller's board are not seen.
	board.Clear()
	testutil.AssertEqual(t, g.Board().Count(), 3)
	testutil.AssertEqual(t, g.TeamTurn(), chess.White)

	pos := g.Position()
	testutil.AssertNoError(t, pos.Validate())
	testutil.AssertEqual(t, pos.Pieces(chess.White).Len(), 2)

	king, ok := pos.King(chess.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, king, testutil.Sq("e8"))
}

func TestGame_SetBoardClearsHistory(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5")

	g.SetBoard(chess.NewInitialBoard())

	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, len(g.History()), 0)
	_, ok := g.LastMove()
	testutil.AssertFalse(t, ok, "no last move after SetBoard")
	testutil.AssertEqual(t, g.FEN(), InitialFEN)

	// Moves after the replacement are counted from the new board.
	play(t, g, "e2e4")
	testutil.AssertEqual(t, g.History(), testutil.Mvs("e2e4"))
}

func TestGame_ValidMovesErrors(t *testing.T) {
	g := NewGame()

	_, err := g.ValidMoves(testutil.Sq("e4"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoPiece)

	_, err = g.ValidMoves(chess.NewSquare(0, 3))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)
}

func TestGame_MissingKing(t *testing.T) {
	g := gameFrom(t, "8/8/8/8/8/8/4P3/8", chess.White)

	_, err := g.IsInCheck(chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrCorruptState)

	_, err = g.ValidMoves(testutil.Sq("e2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrCorruptState)

	_, err = g.IsInCheckmate(chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrCorruptState)

	_, err = g.IsInStalemate(chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrCorruptState)

	err = g.MakeMove(testutil.Mv("e2e4"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrCorruptState)
	testutil.AssertEqual(t, g.Ply(), 0)
}

// TestGame_CheckAndStalemateExclusive walks a short game and checks that no
// team is ever reported as both in check and stalemated.
func TestGame_CheckAndStalemateExclusive(t *testing.T) {
	g := NewGame()
	for _, text := range []string{"e2e4", "f7f6", "d2d4", "g7g5", "d1h5"} {
		play(t, g, text)
		for team := chess.White; team < chess.NumTeams; team++ {
			inCheck, err := g.IsInCheck(team)
			testutil.AssertNoError(t, err)
			stale, err := g.IsInStalemate(team)
			testutil.AssertNoError(t, err)
			testutil.AssertFalse(t, inCheck && stale, "after %s", text)

			mate, err := g.IsInCheckmate(team)
			testutil.AssertNoError(t, err)
			if mate {
				testutil.AssertTrue(t, inCheck, "mate without check after %s", text)
			}
		}
	}

	mate, err := g.IsInCheckmate(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, mate)
}
