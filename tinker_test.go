package naru_test

import (
	"testing"

	"github.com/Gobd/naru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakifyString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "HTTPServerError", want: "http_server_error"},
		{in: "userID", want: "user_id"},
		{in: "already_snake", want: "already_snake"},
		{in: "Kebab-Case Words", want: "kebab_case_words"},
		{in: "a__b", want: "a_b"},
		{in: "__init__", want: "__init__"},
		{in: "_privateField", want: "_private_field"},
		{in: "Version2Beta", want: "version2_beta"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := naru.SnakifyString(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, naru.SnakifyString(got), "idempotent")
		})
	}
}

func TestCapitalifyString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "http_server_error", want: "HttpServerError"},
		{in: "user_id", want: "UserId"},
		{in: "HTTPServer", want: "HttpServer"},
		{in: "already", want: "Already"},
		{in: "kebab-case", want: "KebabCase"},
		{in: "a_b", want: "Ab"},
		{in: "x_y_coord", want: "XyCoord"},
		{in: "a_b_c", want: "AbC"},
		{in: "a_v2", want: "Av2"},
		{in: "a_cd", want: "ACd"},
		{in: "ABcD", want: "ABcD"},
		{in: "a_1_b", want: "A1B"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := naru.CapitalifyString(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, naru.CapitalifyString(got), "idempotent")
		})
	}
}

func TestSnakifyCategories(t *testing.T) {
	m, err := naru.Snakify(map[string]int{"UserID": 1, "createdAt": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"user_id": 1, "created_at": 2}, m)

	s, err := naru.SnakifySlice([]string{"FooBar", "baz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"foo_bar", "baz"}, s)

	set, err := naru.SnakifySet(map[string]struct{}{"FooBar": {}, "foo_bar": {}})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"foo_bar": {}}, set)

	arr, err := naru.SnakifyArray([2]string{"AB", "aB"})
	require.NoError(t, err)
	assert.Equal(t, [2]string{"ab", "a_b"}, arr)

	vals, err := naru.SnakifyValues(map[int]string{1: "FooBar"})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "foo_bar"}, vals)
}

func TestCapitalifyCategories(t *testing.T) {
	m, err := naru.Capitalify(map[string]int{"user_id": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"UserId": 1}, m)

	s, err := naru.CapitalifySlice([]string{"foo_bar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"FooBar"}, s)

	arr, err := naru.CapitalifyArray([1]string{"a_b"})
	require.NoError(t, err)
	assert.Equal(t, [1]string{"Ab"}, arr)

	vals, err := naru.CapitalifyValues(map[string]string{"k": "a_b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "Ab"}, vals)

	set, err := naru.CapitalifySet(map[string]struct{}{"x_y": {}})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"Xy": {}}, set)

	_, err = naru.Capitalify(map[string]int{"a_b": 1, "A_B": 2})
	assert.ErrorIs(t, err, naru.ErrKeyCollision)
}

func TestWindowify(t *testing.T) {
	tests := []struct {
		name   string
		in     []int
		length int
		step   int
		want   [][]int
	}{
		{name: "step one", in: []int{1, 2, 3}, length: 2, step: 1, want: [][]int{{1, 2}, {2, 3}}},
		{name: "exact step", in: []int{1, 2, 3, 4, 5}, length: 3, step: 2, want: [][]int{{1, 2, 3}, {3, 4, 5}}},
		{name: "padded tail", in: []int{1, 2, 3, 4}, length: 3, step: 2, want: [][]int{{1, 2, 3}, {3, 4, 0}}},
		{name: "short item", in: []int{1}, length: 3, step: 1, want: [][]int{{1, 0, 0}}},
		{name: "empty item", in: nil, length: 2, step: 1, want: [][]int{{0, 0}}},
		{name: "zero length", in: []int{1, 2}, length: 0, step: 1, want: [][]int{{}}},
		{name: "step past window", in: []int{1, 2, 3, 4, 5}, length: 2, step: 3, want: [][]int{{1, 2}, {4, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := naru.Windowify(tt.in, tt.length, 0, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowifyInvalid(t *testing.T) {
	tests := []struct {
		name   string
		length int
		step   int
		errStr string
	}{
		{name: "negative length", length: -1, step: 1, errStr: "length: must be no less than 0."},
		{name: "zero step", length: 2, step: 0, errStr: "step: cannot be blank."},
		{name: "negative step", length: 2, step: -2, errStr: "step: must be no less than 1."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := naru.Windowify([]int{1, 2}, tt.length, 0, tt.step)
			require.ErrorIs(t, err, naru.ErrInvalidArgument)
			var verrs naru.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.errStr, verrs.Error())
		})
	}
}
