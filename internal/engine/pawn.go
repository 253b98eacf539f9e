package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// captureCols are the column deltas of a pawn's two forward diagonals.
var captureCols = [...]int{-1, 1}

// appendPawnMoves adds the pawn's forward, double-forward and diagonal
// capture moves. En passant is not supported.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, team chess.Team) []chess.Move {
	dir := team.Direction()

	// Forward one, and two from the starting rank when both squares are empty.
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = appendPawnMove(moves, from, one, team)

		if from.Row == team.PawnRow() {
			two := one.Offset(dir, 0)
			if two.Valid() && board.Get(two).IsEmpty() {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	// Diagonal captures only.
	for _, dc := range captureCols {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Team != team {
			moves = appendPawnMove(moves, from, to, team)
		}
	}

	return moves
}

// appendPawnMove adds a pawn move, expanded to one move per promotion kind
// when it lands on the opponent's back rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, team chess.Team) []chess.Move {
	if to.Row != team.PromotionRow() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.NewPromotion(from, to, kind))
	}
	return moves
}
