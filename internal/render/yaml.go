package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/livp123/logstat/internal/stats"
)

// YAMLRenderer emits the summary as a YAML sequence of type/size mappings in
// first-seen order.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, tally *stats.Tally) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(tally.Entries()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
