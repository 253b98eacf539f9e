package output

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// WritePerft writes a perft result, one line per root move when the result
// was divided, then the total. Counts are grouped by thousands.
func WritePerft(w io.Writer, r *perft.Result) error {
	p := message.NewPrinter(language.English)
	for _, mc := range r.Moves {
		if _, err := p.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "perft(%d) = %d nodes in %.3fs\n", r.Depth, r.Nodes, r.Elapsed.Seconds())
	return err
}
