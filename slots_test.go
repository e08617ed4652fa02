package naru_test

import (
	"reflect"
	"testing"

	"github.com/Gobd/naru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Audit struct {
	CreatedBy string `json:"created_by"`
}

type account struct {
	*Audit
	ID      int    `json:"id"`
	Owner   string `json:"owner,omitempty"`
	Skipped string `json:"-"`
	Balance float64
	note    string
}

func TestAddSlots(t *testing.T) {
	in := account{Audit: &Audit{CreatedBy: "ops"}, ID: 7, Owner: "ann", Balance: 1.5, note: "n"}
	s, err := naru.AddSlots(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"created_by", "id", "owner", "Balance"}, s.Names())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, reflect.TypeOf(account{}), s.Type())
	assert.Equal(t, map[string]any{"created_by": "ops", "id": 7, "owner": "ann", "Balance": 1.5}, s.Map())

	v, ok := s.Get("id")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = s.Get("note")
	assert.False(t, ok)
}

func TestAddSlotsFromType(t *testing.T) {
	s, err := naru.AddSlots(reflect.TypeOf(&account{}))
	require.NoError(t, err)
	v, ok := s.Get("owner")
	assert.True(t, ok)
	assert.Nil(t, v)

	s, err = naru.AddSlots((*account)(nil))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	_, err = naru.AddSlots(map[string]int{})
	assert.ErrorIs(t, err, naru.ErrUnsupportedCategory)
}

func TestAddSlotsTwice(t *testing.T) {
	s, err := naru.AddSlots(&account{})
	require.NoError(t, err)

	_, err = naru.AddSlots(s)
	assert.ErrorIs(t, err, naru.ErrSlotsDeclared)

	same, err := naru.AddSlots(s, naru.WithRaiseError(false))
	require.NoError(t, err)
	assert.Same(t, s, same)
}

func TestSlotsSetAndDecode(t *testing.T) {
	s, err := naru.AddSlots(account{})
	require.NoError(t, err)

	require.NoError(t, s.Set("id", 42))
	require.NoError(t, s.Set("created_by", "me"))
	assert.ErrorIs(t, s.Set("missing", 1), naru.ErrUnknownSlot)
	assert.ErrorIs(t, s.Set("id", "42"), naru.ErrInvalidArgument)

	var out account
	require.NoError(t, s.Decode(&out))
	assert.Equal(t, 42, out.ID)
	require.NotNil(t, out.Audit)
	assert.Equal(t, "me", out.CreatedBy)
	assert.Empty(t, out.Owner)

	assert.ErrorIs(t, s.Decode(out), naru.ErrInvalidArgument)
}
