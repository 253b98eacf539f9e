package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	FEN        string     `json:"fen"`
	Turn       string     `json:"turn"`
	Status     string     `json:"status"`
	Board      []string   `json:"board"` // Ranks 8 to 1, '.' for empty
	History    []string   `json:"history,omitempty"`
	LegalMoves []JSONMove `json:"legalMoves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Move      string `json:"move"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Check     bool   `json:"check,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		FEN:    r.FEN,
		Turn:   strings.ToLower(r.Turn.String()),
		Status: r.Status.String(),
		Board:  boardRanks(r.Board),
	}
	for _, m := range r.History {
		jr.History = append(jr.History, m.String())
	}

	pos := engine.NewPosition(r.Board)
	for _, m := range r.Moves {
		jr.LegalMoves = append(jr.LegalMoves, convertMove(&pos, m))
	}
	return jr
}

// convertMove describes m as played in pos.
func convertMove(pos *engine.Position, m chess.Move) JSONMove {
	piece := pos.Get(m.From)
	jm := JSONMove{
		Move:  m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: piece.Kind.String(),
	}
	if captured := pos.Get(m.To); !captured.IsEmpty() {
		jm.Captured = captured.Kind.String()
	}
	if m.Promotion != chess.NoKind {
		jm.Promotion = m.Promotion.String()
	}

	next := pos.Apply(m)
	if inCheck, err := next.InCheck(piece.Team.Opposite()); err == nil {
		jm.Check = inCheck
	}
	return jm
}

// boardRanks returns one string per rank, rank 8 first.
func boardRanks(b *chess.Board) []string {
	ranks := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize; row >= 1; row-- {
		var sb strings.Builder
		for col := 1; col <= chess.BoardSize; col++ {
			p := b.Get(chess.NewSquare(row, col))
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		ranks = append(ranks, sb.String())
	}
	return ranks
}
