package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/livp123/logstat/pkg/errors"
)

func TestParseValidLines(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"simple", `{"type": "Foo", "id": 3, "cluster": -3}`, "Foo"},
		{"type key last", `{"error": 1, "type": "Bar"}`, "Bar"},
		{"nested structures", `{"type": "Baz", "meta": {"type": "inner", "list": [1, {"a": 2}]}}`, "Baz"},
		{"escaped quotes in other field", `{"name": "say \"hi\"", "type": "Quoted"}`, "Quoted"},
		{"escaped quotes in type", `{"type": "we\"ird"}`, `we"ird`},
		{"unicode escape in type", `{"type": "Foo"}`, "Foo"},
		{"multi-byte type", `{"type": "日本語", "n": 1}`, "日本語"},
		{"braces inside strings", `{"payload": "{not: json}", "type": "Raw"}`, "Raw"},
		{"empty type string", `{"type": ""}`, ""},
		{"case sensitive value", `{"type": "foo"}`, "foo"},
		{"only type", `{"type":"X"}`, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.Type)
			assert.NotNil(t, record.Fields)
		})
	}
}

func TestParseMalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		sentinel error
	}{
		{"empty line", "", apperrors.ErrNotJSON},
		{"garbage", "not json at all", apperrors.ErrNotJSON},
		{"truncated object", `{"type": "Foo"`, apperrors.ErrNotJSON},
		{"top level array", `[{"type": "Foo"}]`, apperrors.ErrNotObject},
		{"top level string", `"type"`, apperrors.ErrNotObject},
		{"top level number", `42`, apperrors.ErrNotObject},
		{"missing type key", `{"kind": "Foo", "id": 1}`, apperrors.ErrNoTypeField},
		{"uppercase key does not match", `{"Type": "Foo"}`, apperrors.ErrNoTypeField},
		{"numeric type", `{"type": 7}`, apperrors.ErrTypeNotString},
		{"null type", `{"type": null}`, apperrors.ErrTypeNotString},
		{"object type", `{"type": {"name": "Foo"}}`, apperrors.ErrTypeNotString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, apperrors.IsMalformedLine(err))
		})
	}
}

func TestParseExposesFields(t *testing.T) {
	record, err := Parse(`{"type": "Foo", "id": 3, "name": "titan"}`)
	require.NoError(t, err)

	assert.Equal(t, "Foo", record.Fields["type"])
	assert.Equal(t, float64(3), record.Fields["id"])
	assert.Equal(t, "titan", record.Fields["name"])
}
