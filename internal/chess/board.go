package chess

import "strings"

// Board is an 8x8 grid of pieces. Squares[row-1][col-1] holds the piece on
// (row, col), or NoPiece. Board is a value: assignment copies it and == compares
// every square.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the piece layout of both back ranks, file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// Get returns the piece on sq. sq must be on the board.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Row-1][sq.Col-1]
}

// Set places piece on sq, overwriting whatever was there. Setting NoPiece
// clears the square. sq must be on the board.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Row-1][sq.Col-1] = piece
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Reset sets up the standard chess starting position.
func (b *Board) Reset() {
	b.Clear()
	for col := 1; col <= BoardSize; col++ {
		b.Set(NewSquare(1, col), W(backRank[col-1]))
		b.Set(NewSquare(White.PawnRow(), col), W(Pawn))
		b.Set(NewSquare(Black.PawnRow(), col), B(Pawn))
		b.Set(NewSquare(BoardSize, col), B(backRank[col-1]))
	}
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold equal pieces on every square.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return *b == *other
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for row := range b.Squares {
		for col := range b.Squares[row] {
			if !b.Squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of eight characters, rank 8 first
// and file a first on each line. White pieces are KQRBNP, Black pieces are
// kqrbnp, and an empty square is a space.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(NumSquares + BoardSize)
	for row := BoardSize; row >= 1; row-- {
		for col := 1; col <= BoardSize; col++ {
			sb.WriteByte(b.Get(NewSquare(row, col)).Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
