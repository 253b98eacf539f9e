package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a board together with its derived indexes: the squares held by
// each team and each team's king square. It is a value; Apply returns a new
// Position and never modifies the receiver, so any copy is a snapshot.
type Position struct {
	board  chess.Board
	pieces [chess.NumTeams]chess.SquareSet
	// kings holds the zero Square when a team has no king on the board.
	kings [chess.NumTeams]chess.Square
}

// NewPosition copies board and builds the indexes by scanning it. When a team
// has more than one king, the last one found (row 1 to 8, file a to h) is
// indexed.
func NewPosition(board *chess.Board) Position {
	p := Position{board: *board}
	p.reindex()
	return p
}

// reindex rebuilds both indexes from the board.
func (p *Position) reindex() {
	p.pieces = [chess.NumTeams]chess.SquareSet{}
	p.kings = [chess.NumTeams]chess.Square{}

	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareAt(i)
		piece := p.board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		p.pieces[piece.Team] = p.pieces[piece.Team].Add(sq)
		if piece.Kind == chess.King {
			p.kings[piece.Team] = sq
		}
	}
}

// Board returns a copy of the position's board.
func (p *Position) Board() *chess.Board {
	return p.board.Clone()
}

// Get returns the piece on sq.
func (p *Position) Get(sq chess.Square) chess.Piece {
	return p.board.Get(sq)
}

// Pieces returns the set of squares held by team.
func (p *Position) Pieces(team chess.Team) chess.SquareSet {
	return p.pieces[team]
}

// King returns team's king square, and false if the team has no king.
func (p *Position) King(team chess.Team) (chess.Square, bool) {
	sq := p.kings[team]
	return sq, sq.Valid()
}

// Validate checks the indexes against the board.
func (p *Position) Validate() error {
	fresh := NewPosition(&p.board)
	for team := chess.White; team < chess.NumTeams; team++ {
		if fresh.pieces[team] != p.pieces[team] {
			return errors.Wrapf(errors.ErrCorruptState, "%s piece index disagrees with the board", team)
		}
		if fresh.kings[team] != p.kings[team] {
			return errors.Wrapf(errors.ErrCorruptState, "%s king index is %s, board has %s",
				team, p.kings[team], fresh.kings[team])
		}
	}
	return nil
}

// kingSquare returns team's indexed king or an ErrCorruptState error.
func (p *Position) kingSquare(team chess.Team) (chess.Square, error) {
	sq, ok := p.King(team)
	if !ok {
		return chess.Square{}, errors.Wrapf(errors.ErrCorruptState, "no %s king on the board", team)
	}
	return sq, nil
}
