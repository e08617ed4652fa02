package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDiff(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    string
		changed bool
	}{
		{name: "same", a: "x\ny\n", b: "x\ny\n", want: " x\n y\n"},
		{name: "replace", a: "x\ny\n", b: "x\nz\n", want: " x\n-y\n+z\n", changed: true},
		{name: "insert", a: "x\n", b: "x\ny\n", want: " x\n+y\n", changed: true},
		{name: "no trailing newline", a: "x", b: "y", want: "-x\n+y\n", changed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			changed, err := writeDiff(&buf, lineDiff(tt.a, tt.b), false)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteDiff_Color(t *testing.T) {
	var buf bytes.Buffer
	_, err := writeDiff(&buf, lineDiff("x\n", "y\n"), true)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[31m-x\n")
	assert.Contains(t, buf.String(), "\x1b[32m+y\n")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, (&MainConfig{}).useColor(&buf))
	assert.True(t, (&MainConfig{Color: true}).useColor(&buf))
	assert.False(t, (&MainConfig{NoColor: true}).useColor(&buf))
}

func TestMergePatch(t *testing.T) {
	tests := []struct {
		name          string
		before, after any
		want          string
	}{
		{
			name:   "renamed key",
			before: map[string]any{"UserID": 1, "keep": "x"},
			after:  map[string]any{"user_id": 1, "keep": "x"},
			want:   `{"UserID":null,"user_id":1}`,
		},
		{
			name:   "nested",
			before: map[string]any{"a": map[string]any{"B": 1}},
			after:  map[string]any{"a": map[string]any{"b": 1}},
			want:   `{"a":{"B":null,"b":1}}`,
		},
		{
			name:   "category change",
			before: map[string]any{"a": 1, "b": 2},
			after:  [2]any{map[string]any{"a": 1}, map[string]any{"b": 2}},
			want:   `[{"a":1},{"b":2}]`,
		},
		{
			name:   "sequence",
			before: []any{"A"},
			after:  []any{"a"},
			want:   `["a"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mergePatch(tt.before, tt.after)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
			assert.True(t, json.Valid(got))
		})
	}
}
