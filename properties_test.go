package naru_test

import (
	"testing"

	"github.com/Gobd/naru"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyItems = []any{
	"",
	"HTTPServerError",
	"already_snake_case",
	"a_b",
	"x_y_coord",
	"a_b_c_d",
	"Point3D",
	[]string{"UserID", "user_id", "a-b", "__init__", "x_y"},
	map[string]int{"FooBar": 1, "baz": 2},
	map[string]struct{}{"XMLParser": {}, "json": {}},
	[3]string{"One", "two_three", "FourFive"},
}

func TestModifiersKeepType(t *testing.T) {
	ops := []struct {
		op     naru.Operation
		params []any
	}{
		{op: naru.OpAddPrefix, params: []any{"p", "_"}},
		{op: naru.OpAddSuffix, params: []any{"s", "."}},
		{op: naru.OpDropPrefix, params: []any{"p", "_"}},
		{op: naru.OpDropSuffix, params: []any{"s", "."}},
		{op: naru.OpDropSubstring, params: []any{"_"}},
		{op: naru.OpCapitalify},
		{op: naru.OpSnakify},
	}
	for _, o := range ops {
		for _, item := range propertyItems {
			got, err := naru.Dispatch(o.op, item, o.params...)
			if err != nil {
				// Key collisions are the only expected failures.
				assert.ErrorIs(t, err, naru.ErrKeyCollision, "%s on %s", o.op, spew.Sdump(item))
				continue
			}
			assert.IsType(t, item, got, "%s on %s", o.op, spew.Sdump(item))
			assert.Equal(t, naru.Classify(item), naru.Classify(got))
		}
	}
}

func TestIdempotentOperations(t *testing.T) {
	for _, op := range []naru.Operation{naru.OpSnakify, naru.OpCapitalify} {
		for _, item := range propertyItems {
			once, err := naru.Dispatch(op, item)
			require.NoError(t, err, "%s on %s", op, spew.Sdump(item))
			twice, err := naru.Dispatch(op, once)
			require.NoError(t, err)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("%s not idempotent on %s (-once +twice):\n%s", op, spew.Sdump(item), diff)
			}
		}
	}
}

func TestDropAbsentSubstringIsIdentity(t *testing.T) {
	for _, item := range propertyItems {
		got, err := naru.DropSubstring(item, "\x00")
		require.NoError(t, err)
		assert.Equal(t, item, got)
	}
}
