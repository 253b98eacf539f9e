package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position. Castling
// and en passant are not supported, so those fields are always "-".
const InitialFEN = chess.InitialPlacement + " w - - 0 1"

// NewGameFromFEN creates a game from a FEN record. Only the piece placement
// and side-to-move fields are used; castling rights, en passant square and the
// clocks are accepted and ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := chess.ParseBoard(parts[0])
	if err != nil {
		return nil, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	g := &Game{turn: turn}
	g.SetBoard(board)
	return g, nil
}

// parseSideToMove parses the side to move field of a FEN string.
func parseSideToMove(parts []string) (chess.Team, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// FEN returns a FEN record for pos with turn to move. The castling and en
// passant fields are "-" and the move counters are given by ply.
func FEN(pos *Position, turn chess.Team, ply int) string {
	side := "w"
	if turn == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", pos.board.Placement(), side, ply/2+1)
}

// FEN returns a FEN record for the current game.
func (g *Game) FEN() string {
	return FEN(&g.pos, g.turn, len(g.history))
}
