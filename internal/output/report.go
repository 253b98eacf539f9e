// Package output renders positions, move lists and perft results as text or
// JSON.
package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report is a snapshot of a game for output.
type Report struct {
	Board   *chess.Board
	Turn    chess.Team
	Status  engine.Status
	FEN     string
	History []chess.Move
	// Moves holds the legal moves of Turn, or nil when not requested.
	Moves []chess.Move
}

// NewReport captures the current state of g. With withMoves set, the legal
// moves of the side to move are included.
func NewReport(g *engine.Game, withMoves bool) (*Report, error) {
	status, err := g.Status()
	if err != nil {
		return nil, err
	}
	r := &Report{
		Board:   g.Board(),
		Turn:    g.TeamTurn(),
		Status:  status,
		FEN:     g.FEN(),
		History: g.History(),
	}
	if withMoves {
		if r.Moves, err = g.AllValidMoves(r.Turn); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Headline describes the side to move and its status, e.g. "Black to move
// (check)".
func (r *Report) Headline() string {
	switch r.Status {
	case engine.Checkmated:
		return r.Turn.String() + " is checkmated"
	case engine.Stalemated:
		return r.Turn.String() + " is stalemated"
	case engine.InCheck:
		return r.Turn.String() + " to move (check)"
	}
	return r.Turn.String() + " to move"
}
