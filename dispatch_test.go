package naru_test

import (
	"testing"

	"github.com/Gobd/naru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name   string
		op     naru.Operation
		item   any
		params []any
		want   any
	}{
		{
			name:   "add prefix to map",
			op:     naru.OpAddPrefix,
			item:   map[string]int{"a": 1, "b": 2},
			params: []any{"x", "_"},
			want:   map[string]int{"x_a": 1, "x_b": 2},
		},
		{
			name:   "divider is optional",
			op:     naru.OpAddSuffix,
			item:   "a",
			params: []any{"b"},
			want:   "ab",
		},
		{
			name:   "options mixed into params",
			op:     naru.OpAddPrefix,
			item:   []any{"a", 1},
			params: []any{"x", naru.WithRaiseError(false), "-"},
			want:   []any{"x-a", 1},
		},
		{
			name:   "drop substring",
			op:     naru.OpDropSubstring,
			item:   []string{"foo_bar_foo", "bar"},
			params: []any{"foo"},
			want:   []string{"_bar_", "bar"},
		},
		{
			name:   "empty substring",
			op:     naru.OpDropSubstring,
			item:   "abc",
			params: []any{""},
			want:   "abc",
		},
		{
			name: "snakify set",
			op:   naru.OpSnakify,
			item: map[string]struct{}{"AB": {}},
			want: map[string]struct{}{"ab": {}},
		},
		{
			name: "drop dunders",
			op:   naru.OpDropDunders,
			item: map[string]int{"__init__": 1, "value": 2},
			want: map[string]int{"value": 2},
		},
		{
			name:   "cleave",
			op:     naru.OpCleave,
			item:   "a_b",
			params: []any{"_"},
			want:   [2]any{"a", "b"},
		},
		{
			name:   "separate",
			op:     naru.OpSeparate,
			item:   []int{1, 0, 2},
			params: []any{0},
			want:   []any{[]int{1}, []int{2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := naru.Dispatch(tt.op, tt.item, tt.params...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatchErrors(t *testing.T) {
	tests := []struct {
		name   string
		op     naru.Operation
		item   any
		params []any
		err    error
	}{
		{name: "unknown op", op: "reverse", item: "a", err: naru.ErrUnsupportedOperation},
		{name: "int item", op: naru.OpSnakify, item: 1, err: naru.ErrUnsupportedCategory},
		{name: "missing affix", op: naru.OpAddPrefix, item: "a", err: naru.ErrInvalidArgument},
		{name: "too many params", op: naru.OpSnakify, item: "a", params: []any{"x"}, err: naru.ErrInvalidArgument},
		{name: "affix not text", op: naru.OpAddPrefix, item: "a", params: []any{1}, err: naru.ErrInvalidArgument},
		{name: "object not supported", op: naru.OpAddPrefix, item: &record{}, params: []any{"x"}, err: naru.ErrUnsupportedCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := naru.Dispatch(tt.op, tt.item, tt.params...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDispatchUnsupportedCategoryError(t *testing.T) {
	_, err := naru.Dispatch(naru.OpCapitalify, 3.5, naru.WithRaiseError(false))
	var catErr *naru.UnsupportedCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, naru.OpCapitalify, catErr.Op)
	assert.Equal(t, naru.CategoryUnknown, catErr.Category)
	assert.Equal(t, "float64", catErr.Type.String())
	assert.Equal(t, "naru: capitalify does not support unknown items (float64)", err.Error())
}

func TestDispatchInvalidArgumentFields(t *testing.T) {
	_, err := naru.Dispatch(naru.OpAddPrefix, "a", 1, 2)
	var verrs naru.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "affix")
	assert.Contains(t, verrs, "divider")
}

func TestDispatchName(t *testing.T) {
	got, err := naru.DispatchName("add-prefix", []string{"a"}, "x", "_")
	require.NoError(t, err)
	assert.Equal(t, []string{"x_a"}, got)

	_, err = naru.DispatchName("nope", "a")
	assert.ErrorIs(t, err, naru.ErrUnsupportedOperation)
}

func TestEveryOperationRejectsInt(t *testing.T) {
	for _, op := range naru.Operations() {
		t.Run(op.String(), func(t *testing.T) {
			_, err := naru.Dispatch(op, 42)
			assert.ErrorIs(t, err, naru.ErrUnsupportedCategory)
		})
	}
}

func TestDispatchKeepsType(t *testing.T) {
	got, err := naru.Snakify(tags{"FooBar"})
	require.NoError(t, err)
	assert.IsType(t, tags{}, got)
	assert.Equal(t, tags{"foo_bar"}, got)
}
