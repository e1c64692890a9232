package errors

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrFileUnreadable = errors.New("file unreadable")
	ErrNotJSON        = errors.New("line is not valid JSON")
	ErrNotObject      = errors.New("line is not a JSON object")
	ErrNoTypeField    = errors.New(`missing "type" field`)
	ErrTypeNotString  = errors.New(`"type" field is not a string`)
	ErrBadFilter      = errors.New("invalid filter expression")
	ErrBadFormat      = errors.New("unknown output format")
	ErrStrictViolated = errors.New("malformed lines encountered in strict mode")
)

func NewFileNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

func NewFileUnreadableError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, reason)
}

func NewJSONError(reason error) error {
	return fmt.Errorf("%w: %v", ErrNotJSON, reason)
}

func NewFilterError(src string, reason error) error {
	return fmt.Errorf("%w: %q: %v", ErrBadFilter, src, reason)
}

func NewFormatError(format string) error {
	return fmt.Errorf("%w: %q (expected table, json or yaml)", ErrBadFormat, format)
}

func NewStrictError(skipped int) error {
	return fmt.Errorf("%w: %d line(s) skipped", ErrStrictViolated, skipped)
}

// IsMalformedLine reports whether err is one of the per-line conditions that
// the skip-and-warn policy recovers from, as opposed to a fatal file error.
func IsMalformedLine(err error) bool {
	return errors.Is(err, ErrNotJSON) ||
		errors.Is(err, ErrNotObject) ||
		errors.Is(err, ErrNoTypeField) ||
		errors.Is(err, ErrTypeNotString)
}
