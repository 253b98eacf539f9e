package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sq parses a square name such as "e2". It panics on a bad name, so use it
// only with constant names.
func Sq(name string) chess.Square {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// Mv builds a move from coordinate text such as "e2e4" or "a7a8q". It
// panics on bad input, so use it only with constants.
func Mv(text string) chess.Move {
	m, err := chess.ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// Mvs builds a list of moves with Mv.
func Mvs(texts ...string) []chess.Move {
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		moves = append(moves, Mv(text))
	}
	return moves
}

// MustBoard parses a FEN piece placement and calls t.Fatal on failure.
func MustBoard(t *testing.T, placement string) *chess.Board {
	t.Helper()
	b, err := chess.ParseBoard(placement)
	if err != nil {
		t.Fatalf("ParseBoard(%q) error: %v", placement, err)
	}
	return b
}

// BoardWith builds a board holding exactly the given pieces, keyed by square
// name.
func BoardWith(pieces map[string]chess.Piece) *chess.Board {
	b := chess.NewBoard()
	for name, p := range pieces {
		b.Set(Sq(name), p)
	}
	return b
}
