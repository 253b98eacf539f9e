package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LegalMoves returns the moves of the piece on from that do not leave its
// own king in check. Each candidate is tried on a new Position from Apply;
// the receiver is never modified.
func (p *Position) LegalMoves(from chess.Square) ([]chess.Move, error) {
	piece := p.board.Get(from)
	if piece.IsEmpty() {
		return nil, errors.Wrapf(errors.ErrNoPiece, "square %s", from)
	}
	if _, err := p.kingSquare(piece.Team); err != nil {
		return nil, err
	}
	return p.filterLegal(PieceMoves(&p.board, from), piece.Team, nil)
}

// AllLegalMoves returns every legal move of team, piece by piece in square
// index order.
func (p *Position) AllLegalMoves(team chess.Team) ([]chess.Move, error) {
	if _, err := p.kingSquare(team); err != nil {
		return nil, err
	}
	var moves []chess.Move
	var candidates []chess.Move
	for _, sq := range p.pieces[team].Squares() {
		candidates = appendPieceMoves(candidates[:0], &p.board, sq)
		var err error
		moves, err = p.filterLegal(candidates, team, moves)
		if err != nil {
			return nil, err
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if team has at least one legal move. It stops
// at the first one found.
func (p *Position) HasLegalMoves(team chess.Team) (bool, error) {
	if _, err := p.kingSquare(team); err != nil {
		return false, err
	}
	var candidates []chess.Move
	for _, sq := range p.pieces[team].Squares() {
		candidates = appendPieceMoves(candidates[:0], &p.board, sq)
		for _, m := range candidates {
			ok, err := p.leavesKingSafe(m, team)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// filterLegal appends to dst the candidates that keep team's king safe.
func (p *Position) filterLegal(candidates []chess.Move, team chess.Team, dst []chess.Move) ([]chess.Move, error) {
	for _, m := range candidates {
		ok, err := p.leavesKingSafe(m, team)
		if err != nil {
			return nil, err
		}
		if ok {
			dst = append(dst, m)
		}
	}
	return dst, nil
}

// leavesKingSafe applies m to a copy of the position and reports whether
// team's king is not attacked afterwards.
func (p *Position) leavesKingSafe(m chess.Move, team chess.Team) (bool, error) {
	next := p.Apply(m)
	inCheck, err := next.InCheck(team)
	if err != nil {
		return false, err
	}
	return !inCheck, nil
}
