package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game owns a position and the turn marker. MakeMove is the only operation
// that changes the position.
//
// A Game is not safe for concurrent mutation. Query methods do not modify the
// Game, so they may run concurrently with each other but not with MakeMove,
// SetBoard or SetTeamTurn.
type Game struct {
	pos     Position
	turn    chess.Team
	history []chess.Move
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		pos:  NewPosition(chess.NewInitialBoard()),
		turn: chess.White,
	}
}

// TeamTurn returns the team to move.
func (g *Game) TeamTurn() chess.Team {
	return g.turn
}

// SetTeamTurn sets the team to move.
func (g *Game) SetTeamTurn(team chess.Team) {
	g.turn = team
}

// Ply returns the number of moves made with MakeMove.
func (g *Game) Ply() int {
	return len(g.history)
}

// History returns a copy of the moves made with MakeMove, oldest first.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// LastMove returns the most recent move, and false if no move has been made.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Board returns a copy of the current board. Changes to it do not affect the
// game; use SetBoard to replace the board.
func (g *Game) Board() *chess.Board {
	return g.pos.Board()
}

// SetBoard replaces the board with a copy of board and rebuilds the piece and
// king indexes from it. The move history is cleared, so the new board is ply
// 0. The turn marker is not changed.
func (g *Game) SetBoard(board *chess.Board) {
	g.pos = NewPosition(board)
	g.history = nil
}

// Position returns a snapshot of the current position.
func (g *Game) Position() Position {
	return g.pos
}

// ValidMoves returns the legal moves of the piece on sq, whichever team it
// belongs to. It returns ErrNoPiece if sq is empty.
func (g *Game) ValidMoves(sq chess.Square) ([]chess.Move, error) {
	if !sq.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "%s", sq)
	}
	return g.pos.LegalMoves(sq)
}

// MakeMove validates move and applies it, then passes the turn. A rejected
// move returns a *errors.MoveError wrapping ErrIllegalMove and leaves the game
// unchanged.
func (g *Game) MakeMove(move chess.Move) error {
	if !move.From.Valid() || !move.To.Valid() {
		return g.illegal(move, "square off the board")
	}

	piece := g.pos.Get(move.From)
	switch {
	case piece.IsEmpty():
		return g.illegal(move, "no piece on the start square")
	case piece.Team != g.turn:
		return g.illegal(move, "it is "+g.turn.String()+"'s turn")
	}

	if target := g.pos.Get(move.To); !target.IsEmpty() && target.Team == piece.Team {
		return g.illegal(move, "destination holds a friendly piece")
	}

	legal, err := g.pos.LegalMoves(move.From)
	if err != nil {
		return err
	}
	if !slices.Contains(legal, move) {
		return g.illegal(move, "not a legal move")
	}

	g.pos = g.pos.Apply(move)
	g.turn = g.turn.Opposite()
	g.history = append(g.history, move)
	return nil
}

// illegal builds the error returned for a rejected move.
func (g *Game) illegal(move chess.Move, reason string) error {
	return &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		MoveText: move.String(),
		Team:     g.turn.String(),
		Reason:   reason,
		PlyNum:   len(g.history) + 1,
	}
}

// IsInCheck returns true if team's king is attacked.
func (g *Game) IsInCheck(team chess.Team) (bool, error) {
	return g.pos.InCheck(team)
}

// IsInCheckmate returns true if team is in check and has no legal moves.
func (g *Game) IsInCheckmate(team chess.Team) (bool, error) {
	inCheck, err := g.pos.InCheck(team)
	if err != nil || !inCheck {
		return false, err
	}
	hasMoves, err := g.pos.HasLegalMoves(team)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// IsInStalemate returns true if team has no legal moves and is not in check.
// With no legal moves while in check the position is checkmate instead.
func (g *Game) IsInStalemate(team chess.Team) (bool, error) {
	inCheck, err := g.pos.InCheck(team)
	if err != nil || inCheck {
		return false, err
	}
	hasMoves, err := g.pos.HasLegalMoves(team)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// AllValidMoves returns every legal move of team.
func (g *Game) AllValidMoves(team chess.Team) ([]chess.Move, error) {
	return g.pos.AllLegalMoves(team)
}
