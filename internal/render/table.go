package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/livp123/logstat/internal/stats"
)

const (
	typeHeader = "Type"
	sizeHeader = "Size"
	columnSep  = " | "
)

// TableRenderer emits the default pipe-separated text table: a Type | Size
// header, a dash separator sized to the header width, then one row per type
// in first-seen order.
type TableRenderer struct{}

// Render writes the table. An empty tally yields header and separator only.
func (TableRenderer) Render(w io.Writer, tally *stats.Tally) error {
	entries := tally.Entries()

	typeWidth := len(typeHeader)
	sizeWidth := len(sizeHeader)
	for _, e := range entries {
		if n := len(e.Type); n > typeWidth {
			typeWidth = n
		}
		if n := len(strconv.FormatUint(e.Size, 10)); n > sizeWidth {
			sizeWidth = n
		}
	}

	var b strings.Builder
	writeRow := func(typeCol, sizeCol string) {
		row := fmt.Sprintf("%-*s%s%-*s", typeWidth, typeCol, columnSep, sizeWidth, sizeCol)
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}

	writeRow(typeHeader, sizeHeader)
	b.WriteString(strings.Repeat("-", typeWidth+len(columnSep)+sizeWidth))
	b.WriteByte('\n')
	for _, e := range entries {
		writeRow(e.Type, strconv.FormatUint(e.Size, 10))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
