package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a start square, an end square and an optional promotion kind.
// Promotion is NoKind unless a pawn reaches the opponent's back rank.
// Moves are compared structurally.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promoting move.
func NewPromotion(from, to Square, kind Kind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// String returns the coordinate form of the move, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// ParseMove parses the coordinate form produced by Move.String.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = KindFromLetter(text[4])
		if m.Promotion == NoKind || m.Promotion == King || m.Promotion == Pawn {
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
	}
	return m, nil
}
