package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status describes the situation of the team to move.
type Status int

const (
	Ongoing    Status = iota // Legal moves available, not in check
	InCheck                  // In check with legal moves available
	Checkmated               // In check with no legal moves
	Stalemated               // Not in check with no legal moves
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case InCheck:
		return "check"
	case Checkmated:
		return "checkmate"
	case Stalemated:
		return "stalemate"
	}
	return "unknown"
}

// Terminal reports whether no further moves can be made.
func (s Status) Terminal() bool {
	return s == Checkmated || s == Stalemated
}

// StatusOf returns the status of team in pos.
func StatusOf(pos *Position, team chess.Team) (Status, error) {
	inCheck, err := pos.InCheck(team)
	if err != nil {
		return Ongoing, err
	}
	hasMoves, err := pos.HasLegalMoves(team)
	if err != nil {
		return Ongoing, err
	}

	switch {
	case inCheck && !hasMoves:
		return Checkmated, nil
	case !hasMoves:
		return Stalemated, nil
	case inCheck:
		return InCheck, nil
	}
	return Ongoing, nil
}

// Status returns the status of the team to move. The game does not stop
// itself; callers check for a terminal status after each move.
func (g *Game) Status() (Status, error) {
	return StatusOf(&g.pos, g.turn)
}
