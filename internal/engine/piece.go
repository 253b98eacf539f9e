// Package engine implements the rules of chess: per-piece move geometry,
// legality filtering against self-check, move application, and check,
// checkmate and stalemate detection.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables as (row, col) deltas.
var (
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

// PieceMoves returns the geometrically possible moves of the piece on from.
// It does not consider whether a move leaves the mover's own king in check.
//
// The caller must ensure from holds a piece; for an empty square PieceMoves
// returns nil.
func PieceMoves(board *chess.Board, from chess.Square) []chess.Move {
	return appendPieceMoves(nil, board, from)
}

// appendPieceMoves dispatches on the piece kind, one arm per kind.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)

	switch piece.Kind {
	case chess.Bishop:
		return appendSlides(moves, board, from, piece.Team, diagonalDirs)
	case chess.Rook:
		return appendSlides(moves, board, from, piece.Team, straightDirs)
	case chess.Queen:
		return appendSlides(moves, board, from, piece.Team, queenDirs)
	case chess.Knight:
		return appendLeaps(moves, board, from, piece.Team, knightOffsets)
	case chess.King:
		// Single steps only; castling is not supported.
		return appendLeaps(moves, board, from, piece.Team, kingOffsets)
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, piece.Team)
	case chess.NoKind:
		return moves
	}

	return moves
}

// appendLeaps adds each in-board offset target not held by a friendly piece.
func appendLeaps(moves []chess.Move, board *chess.Board, from chess.Square, team chess.Team, offsets [][2]int) []chess.Move {
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Team != team {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// attacksFrom reports whether the piece on from has a raw move ending on target.
func attacksFrom(board *chess.Board, from, target chess.Square) bool {
	for _, m := range PieceMoves(board, from) {
		if m.To == target {
			return true
		}
	}
	return false
}
