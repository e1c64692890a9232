package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"file not found", NewFileNotFoundError("/no/such/file"), ErrFileNotFound},
		{"file unreadable", NewFileUnreadableError("/dev/x", errors.New("permission denied")), ErrFileUnreadable},
		{"not json", NewJSONError(errors.New("unexpected end of JSON input")), ErrNotJSON},
		{"bad filter", NewFilterError("Type ==", errors.New("unexpected token")), ErrBadFilter},
		{"bad format", NewFormatError("csv"), ErrBadFormat},
		{"strict", NewStrictError(3), ErrStrictViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.NotEqual(t, tt.sentinel.Error(), tt.err.Error(), "constructor should add context")
		})
	}
}

func TestIsMalformedLine(t *testing.T) {
	malformed := []error{
		ErrNotJSON,
		ErrNotObject,
		ErrNoTypeField,
		ErrTypeNotString,
		NewJSONError(errors.New("bad input")),
		fmt.Errorf("%w: got float64", ErrTypeNotString),
	}
	for _, err := range malformed {
		assert.True(t, IsMalformedLine(err), "expected %v to be a malformed-line condition", err)
	}

	fatal := []error{
		ErrFileNotFound,
		ErrFileUnreadable,
		ErrBadFilter,
		ErrBadFormat,
		errors.New("something else"),
	}
	for _, err := range fatal {
		assert.False(t, IsMalformedLine(err), "expected %v not to be a malformed-line condition", err)
	}
}
