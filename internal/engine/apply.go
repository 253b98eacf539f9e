package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Apply returns the position after move. The receiver is not modified.
//
// Apply does not check legality. The board and both indexes are updated
// together: a captured piece leaves the opponent's index, the mover is
// relocated in its own index, a moving king updates the king index, and a
// promotion replaces the pawn with the promoted kind.
func (p *Position) Apply(move chess.Move) Position {
	next := *p

	piece := next.board.Get(move.From)
	captured := next.board.Get(move.To)

	if !captured.IsEmpty() {
		next.pieces[captured.Team] = next.pieces[captured.Team].Remove(move.To)
		if captured.Kind == chess.King && next.kings[captured.Team] == move.To {
			next.kings[captured.Team] = chess.Square{}
		}
	}

	next.pieces[piece.Team] = next.pieces[piece.Team].Remove(move.From).Add(move.To)
	if piece.Kind == chess.King {
		next.kings[piece.Team] = move.To
	}

	if move.Promotion != chess.NoKind {
		piece.Kind = move.Promotion
	}
	next.board.Set(move.From, chess.NoPiece)
	next.board.Set(move.To, piece)

	return next
}
