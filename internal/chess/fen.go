package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialPlacement is the piece placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParseBoard builds a board from the piece placement field of a FEN record.
// Ranks are listed from 8 down to 1, files from a to h.
func ParseBoard(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return nil, fmt.Errorf("expected %d ranks, got %d: %w", BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	board := NewBoard()
	for i, rank := range ranks {
		row := BoardSize - i
		col := 1
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := KindFromLetter(c)
				if kind == NoKind {
					return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col > BoardSize {
					return nil, fmt.Errorf("rank %d overflows: %w", row, errors.ErrInvalidFEN)
				}
				team := White
				if c >= 'a' && c <= 'z' {
					team = Black
				}
				board.Set(NewSquare(row, col), Piece{Team: team, Kind: kind})
				col++
			}
		}
		if col != BoardSize+1 {
			return nil, fmt.Errorf("rank %d has %d files: %w", row, col-1, errors.ErrInvalidFEN)
		}
	}
	return board, nil
}

// MustParseBoard is like ParseBoard but panics on error. Intended for
// fixtures built from constant strings.
func MustParseBoard(placement string) *Board {
	b, err := ParseBoard(placement)
	if err != nil {
		panic(err)
	}
	return b
}

// Placement returns the FEN piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := BoardSize; row >= 1; row-- {
		empty := 0
		for col := 1; col <= BoardSize; col++ {
			p := b.Get(NewSquare(row, col))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
