// Package reader streams a log file line by line with byte accounting.
package reader

import (
	"bufio"
	"os"

	apperrors "github.com/livp123/logstat/pkg/errors"
)

const (
	initialBufSize = 64 * 1024
	// maxLineSize bounds a single line; anything larger fails the scan.
	maxLineSize = 10 * 1024 * 1024
)

// Line is one record from a log file.
type Line struct {
	Text   string
	Size   int // byte length of the content, excluding the line terminator
	Number int // 1-based position in the file
}

// LineReader walks a file one line at a time, in the bufio.Scanner idiom:
//
//	r, err := reader.Open(path)
//	...
//	defer r.Close()
//	for r.Scan() {
//		line := r.Line()
//		...
//	}
//	if err := r.Err(); err != nil { ... }
//
// Both LF and CRLF terminators are recognized and excluded from Size. A final
// line without a trailing newline is still yielded; a trailing newline does
// not yield an empty final record.
type LineReader struct {
	f       *os.File
	scanner *bufio.Scanner
	current Line
	n       int
}

// Open opens path for a single streaming pass.
func Open(path string) (*LineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewFileNotFoundError(path)
		}
		return nil, apperrors.NewFileUnreadableError(path, err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineSize)

	return &LineReader{f: f, scanner: scanner}, nil
}

// Scan advances to the next line. It returns false at end of file or on a
// read error; call Err to distinguish the two.
func (r *LineReader) Scan() bool {
	if !r.scanner.Scan() {
		return false
	}
	r.n++
	text := r.scanner.Text()
	r.current = Line{Text: text, Size: len(text), Number: r.n}
	return true
}

// Line returns the line read by the last successful call to Scan.
func (r *LineReader) Line() Line {
	return r.current
}

// Err returns the first error encountered while scanning, wrapped as a
// file-level failure. It is nil on clean end of file.
func (r *LineReader) Err() error {
	if err := r.scanner.Err(); err != nil {
		return apperrors.NewFileUnreadableError(r.f.Name(), err)
	}
	return nil
}

// Close releases the underlying file handle.
func (r *LineReader) Close() error {
	return r.f.Close()
}
