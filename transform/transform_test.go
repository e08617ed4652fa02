package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/naru/transform"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Label string
}

type column struct {
	Name    string
	Aliases []string
	Tags    map[string]string
	Parent  *inner
	Pair    [2]string
	Nested  inner
	Members map[string]inner
	Any     any
	Count   int
	hidden  string
}

func newColumn() *column {
	return &column{
		Name:    "UserID",
		Aliases: []string{"AccountID"},
		Tags:    map[string]string{"KeepKey": "TagValue"},
		Parent:  &inner{Label: "ParentTable"},
		Pair:    [2]string{"LeftSide", "RightSide"},
		Nested:  inner{Label: "NestedLabel"},
		Members: map[string]inner{"m": {Label: "MemberName"}},
		Any:     "LeftAlone",
		Count:   3,
		hidden:  "HiddenValue",
	}
}

func TestStructSnakify(t *testing.T) {
	c := newColumn()
	transform.StructSnakify(c)

	assert.Equal(t, &column{
		Name:    "user_id",
		Aliases: []string{"account_id"},
		Tags:    map[string]string{"KeepKey": "tag_value"},
		Parent:  &inner{Label: "parent_table"},
		Pair:    [2]string{"left_side", "right_side"},
		Nested:  inner{Label: "nested_label"},
		Members: map[string]inner{"m": {Label: "member_name"}},
		Any:     "LeftAlone",
		Count:   3,
		hidden:  "HiddenValue",
	}, c)
}

func TestStructCapitalify(t *testing.T) {
	c := &column{Name: "user_id", Aliases: []string{"a_b"}}
	transform.StructCapitalify(c)
	assert.Equal(t, "UserId", c.Name)
	assert.Equal(t, []string{"Ab"}, c.Aliases)
}

func TestStructDropSubstring(t *testing.T) {
	c := &column{Name: "tmp_name_tmp", Nested: inner{Label: "tmp"}}
	transform.StructDropSubstring(c, "tmp")
	assert.Equal(t, "_name_", c.Name)
	assert.Equal(t, "", c.Nested.Label)
}

func TestStructMulti(t *testing.T) {
	c := &column{Name: "OldUserID"}
	transform.StructMulti(c, transform.StructSnakify, transform.DropSubstring("old_"))
	assert.Equal(t, "user_id", c.Name)
}

func TestStructStringFunc(t *testing.T) {
	upper := transform.Func(strings.TrimSpace).Then(strings.ToUpper)
	c := &column{Name: "  a  ", Parent: &inner{Label: " b"}}
	transform.StructStringFunc(c, upper)
	assert.Equal(t, "A", c.Name)
	assert.Equal(t, "B", c.Parent.Label)
}

func TestNonStructIgnored(t *testing.T) {
	s := "UserID"
	transform.StructSnakify(&s)
	assert.Equal(t, "UserID", s)

	var nilCol *column
	assert.NotPanics(t, func() { transform.StructSnakify(nilCol) })
	assert.NotPanics(t, func() { transform.StructSnakify(column{}) })
}
