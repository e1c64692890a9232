package render

import (
	"encoding/json"
	"io"

	"github.com/livp123/logstat/internal/stats"
)

// JSONRenderer emits the summary as an indented JSON array of
// {"type": ..., "size": ...} objects in first-seen order.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, tally *stats.Tally) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tally.Entries())
}
