package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Square shades.
const (
	darkSquare = iota
	lightSquare
)

var (
	teamColours  = [chess.NumTeams]color.Attribute{color.FgHiWhite, color.FgBlack}
	shadeColours = [2]color.Attribute{color.BgGreen, color.BgYellow}
)

// BoardWriter renders boards with rank and file labels, either as plain text
// or with terminal colours.
type BoardWriter struct {
	w      io.Writer
	colour bool
	cells  [chess.NumTeams][2]*color.Color
}

// NewBoardWriter creates a board writer. With colour set, squares are drawn
// with ANSI colours whether or not w is a terminal; the caller decides.
func NewBoardWriter(w io.Writer, colour bool) *BoardWriter {
	bw := &BoardWriter{w: w, colour: colour}
	for team := chess.White; team < chess.NumTeams; team++ {
		for shade := range shadeColours {
			c := color.New(teamColours[team], shadeColours[shade])
			if colour {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
			bw.cells[team][shade] = c
		}
	}
	return bw
}

// WriteBoard writes the board, rank 8 at the top.
func (bw *BoardWriter) WriteBoard(b *chess.Board) error {
	var sb strings.Builder
	for row := chess.BoardSize; row >= 1; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 1; col <= chess.BoardSize; col++ {
			piece := b.Get(chess.NewSquare(row, col))
			if bw.colour {
				bw.writeCell(&sb, piece, shadeOf(row, col))
				continue
			}
			if col > 1 {
				sb.WriteByte(' ')
			}
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(bw.fileLabels())

	_, err := io.WriteString(bw.w, sb.String())
	return err
}

// writeCell writes one three-character coloured square.
func (bw *BoardWriter) writeCell(sb *strings.Builder, piece chess.Piece, shade int) {
	team := piece.Team
	if piece.IsEmpty() {
		team = chess.White
	}
	bw.cells[team][shade].Fprint(sb, " "+string(piece.Letter())+" ")
}

// fileLabels returns the line of file letters under the board.
func (bw *BoardWriter) fileLabels() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		letter := string(rune(chess.ColBase + col))
		if bw.colour {
			sb.WriteString(" " + letter + " ")
		} else {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(letter)
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// shadeOf returns the shade of a square; a1 is dark.
func shadeOf(row, col int) int {
	if (row+col)%2 == 0 {
		return darkSquare
	}
	return lightSquare
}
