// Package render writes a finished tally to an output stream.
package render

import (
	"io"

	"github.com/livp123/logstat/internal/stats"
	apperrors "github.com/livp123/logstat/pkg/errors"
)

// Format names understood by New.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer writes the summary for one run.
type Renderer interface {
	Render(w io.Writer, tally *stats.Tally) error
}

// New returns the renderer for the named format. The empty string selects
// the default table format.
func New(format string) (Renderer, error) {
	switch format {
	case "", FormatTable:
		return TableRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, apperrors.NewFormatError(format)
	}
}
