package chess

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase  = 'a'
	RankBase = '1'
)

// Square is a (row, column) pair, both 1-based. Row 1 is White's back rank.
type Square struct {
	Row int
	Col int
}

// NewSquare creates a square. It does not check bounds.
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 1 && s.Row <= BoardSize && s.Col >= 1 && s.Col <= BoardSize
}

// Offset returns the square dr rows and dc columns away. The result may be off
// the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Index maps a valid square to 0..63, a1 = 0, h8 = 63.
func (s Square) Index() int {
	return (s.Row-1)*BoardSize + (s.Col - 1)
}

// SquareAt is the inverse of Index.
func SquareAt(index int) Square {
	return Square{Row: index/BoardSize + 1, Col: index%BoardSize + 1}
}

// String returns the coordinate name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(ColBase + s.Col - 1), byte(RankBase + s.Row - 1)})
}

// ParseSquare parses a coordinate name such as "e2".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	s := Square{
		Row: int(name[1]) - RankBase + 1,
		Col: int(name[0]) - ColBase + 1,
	}
	if !s.Valid() {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return s, nil
}

// SquareSet is a set of squares, one bit per square. It is a plain value, so
// copies are independent.
type SquareSet uint64

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return s&(1<<uint(sq.Index())) != 0
}

// Add returns the set with sq added.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq.Index())
}

// Remove returns the set with sq removed.
func (s SquareSet) Remove(sq Square) SquareSet {
	return s &^ (1 << uint(sq.Index()))
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the members in index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, SquareAt(bits.TrailingZeros64(rest)))
	}
	return out
}
