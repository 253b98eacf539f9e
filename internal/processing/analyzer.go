// Package processing replays move sequences on a game and collects
// statistics about them.
package processing

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying moves.
type GameAnalysis struct {
	Plies      int
	Captures   int
	Checks     int // Moves that left the opponent in check
	Promotions int

	HasUnderpromotion bool
	Positions         []uint64 // Zobrist key of each position, the start position first

	FinalStatus engine.Status
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// Summary returns a one-line description of the counts.
func (ga *GameAnalysis) Summary() string {
	return fmt.Sprintf("%d plies, %d captures, %d checks, %d promotions, %s",
		ga.Plies, ga.Captures, ga.Checks, ga.Promotions, ga.FinalStatus)
}

// Analyzer plays moves on a game and records what happens.
type Analyzer struct {
	game     *engine.Game
	analysis GameAnalysis
}

// NewAnalyzer creates an analyzer for g, recording its current position as
// the start.
func NewAnalyzer(g *engine.Game) *Analyzer {
	a := &Analyzer{game: g}
	a.recordPosition()
	return a
}

// Play makes move on the game. An illegal move is returned as the game's
// error and not recorded.
func (a *Analyzer) Play(move chess.Move) error {
	pos := a.game.Position()
	captured := pos.Get(move.To)

	if err := a.game.MakeMove(move); err != nil {
		return err
	}

	a.analysis.Plies++
	if !captured.IsEmpty() {
		a.analysis.Captures++
	}
	if move.Promotion != chess.NoKind {
		a.analysis.Promotions++
		if move.Promotion != chess.Queen {
			a.analysis.HasUnderpromotion = true
		}
	}

	// The side now to move is the one the move was made against.
	inCheck, err := a.game.IsInCheck(a.game.TeamTurn())
	if err != nil {
		return err
	}
	if inCheck {
		a.analysis.Checks++
	}

	a.recordPosition()
	return nil
}

// Result returns the analysis so far, with the status of the side to move.
func (a *Analyzer) Result() (*GameAnalysis, error) {
	status, err := a.game.Status()
	if err != nil {
		return nil, err
	}
	result := a.analysis
	result.FinalStatus = status
	result.Positions = append([]uint64(nil), a.analysis.Positions...)
	return &result, nil
}

func (a *Analyzer) recordPosition() {
	pos := a.game.Position()
	a.analysis.Positions = append(a.analysis.Positions, hashing.Key(pos.Board(), a.game.TeamTurn()))
}

// AnalyzeMoves plays moves on g in order and analyses them. It stops at the
// first illegal move and returns its error.
func AnalyzeMoves(g *engine.Game, moves []chess.Move) (*GameAnalysis, error) {
	a := NewAnalyzer(g)
	for _, m := range moves {
		if err := a.Play(m); err != nil {
			return nil, err
		}
	}
	return a.Result()
}

// ValidationResult holds the result of move validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// Resolver turns a move as written into the move to play on g, e.g. by
// filling in a promotion kind.
type Resolver func(g *engine.Game, move chess.Move) chess.Move

// ValidateMoves checks that moves can be played in order from fen, without
// touching any caller's game. A non-nil resolve is applied to each move
// before it is played.
func ValidateMoves(fen string, moves []chess.Move, resolve Resolver) *ValidationResult {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return &ValidationResult{ErrorMsg: fmt.Sprintf("invalid FEN: %v", err)}
	}

	for i, m := range moves {
		if resolve != nil {
			m = resolve(g, m)
		}
		if err := g.MakeMove(m); err != nil {
			return &ValidationResult{
				ErrorPly: i + 1,
				ErrorMsg: fmt.Sprintf("illegal move at ply %d: %s", i+1, m),
			}
		}
	}
	return &ValidationResult{Valid: true}
}
