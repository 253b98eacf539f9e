package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if team's king is attacked by any opposing piece.
//
// Only raw piece geometry is consulted, never the legality filter, so check
// detection cannot recurse into itself. A missing king is reported as
// ErrCorruptState.
func (p *Position) InCheck(team chess.Team) (bool, error) {
	king, err := p.kingSquare(team)
	if err != nil {
		return false, err
	}
	return p.IsAttacked(king, team.Opposite()), nil
}

// IsAttacked returns true if any piece of team by has a raw move ending on
// target.
func (p *Position) IsAttacked(target chess.Square, by chess.Team) bool {
	for _, sq := range p.pieces[by].Squares() {
		if attacksFrom(&p.board, sq, target) {
			return true
		}
	}
	return false
}
