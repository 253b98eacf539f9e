// Package chess provides the core chess types: teams, pieces, squares,
// moves and the board.
package chess

// Team represents one of the two sides.
type Team int

const (
	White Team = iota
	Black
	NumTeams
)

// String returns the string representation of a team.
func (t Team) String() string {
	if t == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing team.
func (t Team) Opposite() Team {
	if t == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (pawn direction).
func (t Team) Direction() int {
	if t == White {
		return 1
	}
	return -1
}

// PawnRow returns the row the team's pawns start on.
func (t Team) PawnRow() int {
	if t == White {
		return 2
	}
	return BoardSize - 1
}

// PromotionRow returns the row on which the team's pawns promote.
func (t Team) PromotionRow() int {
	if t == White {
		return BoardSize
	}
	return 1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Absent (empty square, or no promotion)
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumKinds
)

// PromotionKinds lists the kinds a pawn may promote to, in emission order.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'B', 'N', 'R', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Piece is a team and a kind. Two pieces with the same team and kind are
// interchangeable. The zero value, NoPiece, marks an empty square.
type Piece struct {
	Team Team
	Kind Kind
}

// NoPiece is the value held by an empty square.
var NoPiece = Piece{}

// NewPiece creates a piece.
func NewPiece(team Team, kind Kind) Piece {
	return Piece{Team: team, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Team: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Team: Black, Kind: kind}
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the display letter: uppercase for White, lowercase for
// Black, a space for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	c := p.Kind.Letter()
	if p.Team == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Team.String() + " " + p.Kind.String()
}
