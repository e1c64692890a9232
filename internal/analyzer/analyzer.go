// Package analyzer runs the one-pass summarization pipeline:
// read -> extract -> filter -> tally.
package analyzer

import (
	"context"

	"github.com/livp123/logstat/internal/extract"
	"github.com/livp123/logstat/internal/reader"
	"github.com/livp123/logstat/internal/stats"
	"github.com/livp123/logstat/internal/utils/logger"
)

// Options configures a single run.
type Options struct {
	Path   string
	Filter string // optional expr expression; empty means no filtering
}

// Result is the outcome of one pass over a log file.
type Result struct {
	Tally     *stats.Tally
	Lines     int // lines read from the file
	Tallied   int // well-formed lines accounted for
	Malformed int // lines skipped by the malformed-line policy
	Filtered  int // well-formed lines excluded by the filter
}

// Run streams the file at opts.Path exactly once and returns the tally.
//
// File-level failures (open, read) abort with an error and no partial
// result. Malformed lines are skipped with a warning naming the line number;
// their bytes never reach the tally. A filter evaluation error on a line
// excludes that line the same way.
func Run(ctx context.Context, opts Options) (*Result, error) {
	l := logger.Get(ctx)

	var filter *extract.Filter
	if opts.Filter != "" {
		var err error
		filter, err = extract.CompileFilter(opts.Filter)
		if err != nil {
			return nil, err
		}
	}

	r, err := reader.Open(opts.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	res := &Result{Tally: stats.New()}
	for r.Scan() {
		line := r.Line()
		res.Lines++

		record, err := extract.Parse(line.Text)
		if err != nil {
			res.Malformed++
			l.Warnf("skipping malformed line %d: %v", line.Number, err)
			continue
		}

		if filter != nil {
			matched, err := filter.Match(extract.Env{
				Type:   record.Type,
				Size:   line.Size,
				Line:   line.Text,
				Fields: record.Fields,
			})
			if err != nil {
				res.Filtered++
				l.Warnf("excluding line %d: %v", line.Number, err)
				continue
			}
			if !matched {
				res.Filtered++
				continue
			}
		}

		res.Tally.Add(record.Type, line.Size)
		res.Tallied++
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	l.Debugf("processed %s: %d line(s), %d tallied, %d malformed, %d filtered",
		opts.Path, res.Lines, res.Tallied, res.Malformed, res.Filtered)
	return res, nil
}
