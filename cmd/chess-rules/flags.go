// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	// Position and moves
	fenString   = flag.String("fen", engine.InitialFEN, "Start position in FEN")
	playMoves   = flag.String("play", "", "Comma-separated coordinate moves to apply (e.g. e2e4,e7e5)")
	squareMoves = flag.String("moves", "", "List the legal moves of the piece on this square")
	listLegal   = flag.Bool("legal", false, "List all legal moves of the side to move")
	traceMoves  = flag.Bool("trace", false, "Report the position after every applied move")
	checkOnly   = flag.Bool("validate", false, "Only check that the -play moves are legal")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide     = flag.Bool("divide", false, "Report perft counts per root move")
	workers    = flag.Int("workers", runtime.NumCPU(), "Number of perft divide workers")
	cacheSize  = flag.Int("cache", config.DefaultCacheSize, "Perft cache entries (0 = no cache)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	logFile      = flag.String("l", "", "Log file (default: stderr)")
	outputFormat = flag.String("format", "text", "Output format: text, json")
	lineLength   = flag.Int("width", 80, "Maximum line length of move lists")
	noColour     = flag.Bool("nocolor", false, "Don't colour the board")

	// Verbosity
	verbose = flag.Bool("v", false, "Report every applied move")
	quiet   = flag.Bool("q", false, "No diagnostics")

	// Misc
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyVerbosityFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)
	return nil
}

// applyVerbosityFlags configures the diagnostic level.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.MaxLineLength = *lineLength
	cfg.Output.UseColour = !*noColour
	cfg.Output.ShowLegalMoves = *listLegal || *squareMoves != ""
	return nil
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.CacheSize = *cacheSize
}

// optionsFromFlags collects the position flags.
func optionsFromFlags() runOptions {
	return runOptions{
		fen:      *fenString,
		play:     *playMoves,
		square:   *squareMoves,
		trace:    *traceMoves,
		validate: *checkOnly,
	}
}
