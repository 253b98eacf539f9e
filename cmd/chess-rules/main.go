// chess-rules applies moves to a chess position and reports the result:
// the board, the status of the side to move and its legal moves. It can also
// count the nodes of the legal move tree (perft).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitError = 1 // Illegal move, bad position or failed output
	exitUsage = 2 // Bad flags
)

// runOptions holds what to play and report.
type runOptions struct {
	fen      string // Start position
	play     string // Comma-separated coordinate moves
	square   string // Restrict the listed moves to this square
	trace    bool   // Report after every move
	validate bool   // Only check that the moves are legal
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	colour := cfg.Output.UseColour && cfg.OutputFilename == "" && !color.NoColor
	if err := run(context.Background(), cfg, optionsFromFlags(), colour); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(exitError)
	}
	cfg.SetLog(file)
	cfg.LogFilename = *logFile
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitError)
	}
	cfg.SetOutput(file)
	cfg.OutputFilename = *outputFile
}

// run sets up the game, applies the moves and writes the reports.
func run(ctx context.Context, cfg *config.Config, opts runOptions, colour bool) error {
	game, err := engine.NewGameFromFEN(opts.fen)
	if err != nil {
		return err
	}
	moves, err := parseMoveList(opts.play)
	if err != nil {
		return err
	}

	if opts.validate {
		return validate(cfg, opts.fen, moves)
	}

	var square *chess.Square
	if opts.square != "" {
		sq, err := chess.ParseSquare(opts.square)
		if err != nil {
			return err
		}
		square = &sq
	}

	w := output.NewReportWriter(cfg.OutputFile, cfg, colour)
	if opts.trace {
		if err := writeReport(w, cfg, game, square); err != nil {
			return err
		}
	}

	analyzer := processing.NewAnalyzer(game)
	for i, m := range moves {
		team := game.TeamTurn()
		m = resolveMove(game, m)
		if err := analyzer.Play(m); err != nil {
			return err
		}
		cfg.Logf(2, "%d. %s plays %s", i+1, team, m)

		if opts.trace {
			if err := writeReport(w, cfg, game, square); err != nil {
				return err
			}
		}
	}
	if len(moves) > 0 {
		analysis, err := analyzer.Result()
		if err != nil {
			return err
		}
		cfg.Logf(1, "Applied %s", analysis.Summary())
	}

	if !opts.trace {
		if err := writeReport(w, cfg, game, square); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	if cfg.Perft.Depth > 0 {
		return runPerft(ctx, cfg, game)
	}
	return nil
}

// validate writes whether moves can be played from fen, resolved the same way
// as for play. An illegal move is
// returned as an error after the verdict is written.
func validate(cfg *config.Config, fen string, moves []chess.Move) error {
	result := processing.ValidateMoves(fen, moves, resolveMove)
	if result.Valid {
		_, err := fmt.Fprintf(cfg.OutputFile, "valid: %d moves\n", len(moves))
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "invalid: %s\n", result.ErrorMsg)
	return errors.Wrap(errors.ErrIllegalMove, result.ErrorMsg)
}

// writeReport reports the current position. With square set, only the moves
// of the piece on it are listed.
func writeReport(w output.ReportWriter, cfg *config.Config, game *engine.Game, square *chess.Square) error {
	r, err := output.NewReport(game, cfg.Output.ShowLegalMoves && square == nil)
	if err != nil {
		return err
	}
	if square != nil {
		if r.Moves, err = game.ValidMoves(*square); err != nil {
			return err
		}
	}
	return w.WriteReport(r)
}

// parseMoveList parses comma-separated coordinate moves. Blank entries are
// skipped.
func parseMoveList(s string) ([]chess.Move, error) {
	var moves []chess.Move
	for _, text := range strings.Split(s, ",") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// resolveMove lets a pawn move to the last rank without a promotion suffix
// promote to a queen. Other moves are returned unchanged.
func resolveMove(game *engine.Game, m chess.Move) chess.Move {
	if m.Promotion != chess.NoKind {
		return m
	}
	legal, err := game.ValidMoves(m.From)
	if err != nil {
		return m
	}
	queen := chess.NewPromotion(m.From, m.To, chess.Queen)
	if slices.IndexFunc(legal, func(l chess.Move) bool { return l == queen }) >= 0 {
		return queen
	}
	return m
}

// cacheStats is satisfied by both node caches.
type cacheStats interface {
	Len() int
	Stats() (hits, misses int)
}

// runPerft counts nodes from the current position and writes the result.
// Divide runs on the worker pool and shares a thread-safe cache; a plain
// count uses an unsynchronised one.
func runPerft(ctx context.Context, cfg *config.Config, game *engine.Game) error {
	pos := game.Position()
	turn := game.TeamTurn()
	depth := cfg.Perft.Depth

	var (
		result *perft.Result
		stats  cacheStats
		err    error
	)
	if cfg.Perft.Divide {
		opts := perft.Options{Workers: cfg.Perft.Workers}
		if cfg.Perft.CacheSize > 0 {
			cache := hashing.NewThreadSafeNodeCache(cfg.Perft.CacheSize)
			opts.Cache, stats = cache, cache
		}
		result, err = perft.Divide(ctx, pos, turn, depth, opts)
	} else {
		var c perft.Cache
		if cfg.Perft.CacheSize > 0 {
			cache := hashing.NewNodeCache(cfg.Perft.CacheSize)
			c, stats = cache, cache
		}
		start := time.Now()
		var nodes uint64
		nodes, err = perft.Count(&pos, turn, depth, c)
		result = &perft.Result{Depth: depth, Nodes: nodes, Elapsed: time.Since(start)}
	}
	if err != nil {
		return err
	}

	if stats != nil {
		hits, misses := stats.Stats()
		cfg.Logf(2, "Perft cache: %d entries, %d hits, %d misses", stats.Len(), hits, misses)
	}
	return output.WritePerft(cfg.OutputFile, result)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(out, "Applies moves to a chess position and reports the board and its status.\n\n")
	fmt.Fprintf(out, "Options:\n")
	flag.PrintDefaults()
	printExamples(out)
}

func printExamples(out io.Writer) {
	fmt.Fprintf(out, "\nExamples:\n")
	fmt.Fprintf(out, "  chess-rules -play e2e4,e7e5 -legal\n")
	fmt.Fprintf(out, "  chess-rules -fen '4k3/P7/8/8/8/8/8/4K3 w - - 0 1' -moves a7\n")
	fmt.Fprintf(out, "  chess-rules -perft 4 -divide\n")
}
