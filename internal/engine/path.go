package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// appendSlides walks each ray from the origin one square at a time. Empty
// squares are recorded and the walk continues; an opposing piece is recorded
// as a capture and ends the ray; a friendly piece or the board edge ends the
// ray without recording.
func appendSlides(moves []chess.Move, board *chess.Board, from chess.Square, team chess.Team, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Team != team {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
