// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how positions are reported.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Board diagram and status lines
	JSONFormat                     // One JSON document per report
)

// String returns the flag spelling of a format.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat parses a format name as given on the command line.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// File names, empty for the standard streams
	OutputFilename string
	LogFilename    string

	Output *OutputConfig
	Perft  *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
	}
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	case c.OutputFile == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "no output writer")
	case c.LogFile == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "no log writer")
	case c.Output == nil || c.Perft == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "missing section")
	}
	if c.Output.MaxLineLength < MinLineLength {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length %d is below %d",
			c.Output.MaxLineLength, MinLineLength)
	}
	if c.Output.Format != TextFormat && c.Output.Format != JSONFormat {
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %d", c.Output.Format)
	}
	if c.Output.Format == JSONFormat && c.Perft.Depth > 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "perft results are only written as text")
	}
	return c.Perft.Validate()
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
