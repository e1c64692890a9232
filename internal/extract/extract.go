// Package extract decodes log lines and pulls out the grouping type.
package extract

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/livp123/logstat/pkg/errors"
)

// typeKey is the JSON key whose string value groups the output.
const typeKey = "type"

// Record is one decoded log line.
type Record struct {
	Type   string
	Fields map[string]interface{}
}

// Parse decodes a single log line as a JSON object and extracts its type.
// Key order, nesting, escape sequences and multi-byte content in the other
// fields are all irrelevant; only the top-level "type" key matters.
//
// Every failure mode is a malformed-line condition wrapping one of the
// pkg/errors sentinels, so callers can branch with errors.Is.
func Parse(text string) (Record, error) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return Record{}, apperrors.NewJSONError(err)
	}

	fields, ok := decoded.(map[string]interface{})
	if !ok {
		return Record{}, apperrors.ErrNotObject
	}

	value, ok := fields[typeKey]
	if !ok {
		return Record{}, apperrors.ErrNoTypeField
	}

	typeName, ok := value.(string)
	if !ok {
		return Record{}, fmt.Errorf("%w: got %T", apperrors.ErrTypeNotString, value)
	}

	return Record{Type: typeName, Fields: fields}, nil
}
