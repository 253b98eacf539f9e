package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// ReportWriter is the interface for writing reports in different formats.
type ReportWriter interface {
	WriteReport(r *Report) error
	Flush() error
	Close() error
}

// NewReportWriter creates a writer for the configured output format.
// colour enables ANSI colours in text output.
func NewReportWriter(w io.Writer, cfg *config.Config, colour bool) ReportWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg, colour)
}

// TextWriter writes reports as a labelled board followed by details.
type TextWriter struct {
	w     io.Writer
	cfg   *config.Config
	board *BoardWriter
	count int
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer, cfg *config.Config, colour bool) *TextWriter {
	return &TextWriter{
		w:     w,
		cfg:   cfg,
		board: NewBoardWriter(w, colour),
	}
}

// WriteReport writes a report.
func (tw *TextWriter) WriteReport(r *Report) error {
	if tw.count > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.count++

	if err := tw.board.WriteBoard(r.Board); err != nil {
		return err
	}
	if _, err := io.WriteString(tw.w, "\nFEN: "+r.FEN+"\n"+r.Headline()+"\n"); err != nil {
		return err
	}

	width := tw.cfg.Output.MaxLineLength
	if len(r.History) > 0 {
		WriteMoves(tw.w, "Moves:", r.History, width)
	}
	if tw.cfg.Output.ShowLegalMoves {
		WriteMoves(tw.w, "Legal:", r.Moves, width)
	}
	return nil
}

// Flush is a no-op; text is written as it is produced.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format. A single report is written as
// one object; several are wrapped in a "reports" array.
type JSONWriter struct {
	w       io.Writer
	reports []*JSONReport
}

// NewJSONWriter creates a new JSON report writer. Reports are buffered until
// Flush.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport adds a report.
func (jw *JSONWriter) WriteReport(r *Report) error {
	jw.reports = append(jw.reports, ReportToJSON(r))
	return nil
}

// Flush writes all buffered reports.
func (jw *JSONWriter) Flush() error {
	if len(jw.reports) == 0 {
		return nil
	}

	encoder := json.NewEncoder(jw.w)
	encoder.SetIndent("", "  ")

	var err error
	if len(jw.reports) == 1 {
		err = encoder.Encode(jw.reports[0])
	} else {
		err = encoder.Encode(JSONOutput{Reports: jw.reports})
	}
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes remaining reports.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
