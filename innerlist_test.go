package sf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnerListEncode(t *testing.T) {
	a, err := NewToken("a")
	require.NoError(t, err)
	b, err := NewToken("b")
	require.NoError(t, err)
	params, err := NewParameters(KV{Key: "x", Value: Boolean(true)})
	require.NoError(t, err)

	il := NewInnerList([]Item{NewItem(a, Parameters{}), NewItem(b, Parameters{})}, params)
	assert.Equal(t, "(a b);x", il.Encode())
}

func TestInnerListEmptyEncode(t *testing.T) {
	il := NewInnerList(nil, Parameters{})
	assert.Equal(t, "()", il.Encode())
}

func TestInnerListPushUnshiftGet(t *testing.T) {
	a, err := NewToken("a")
	require.NoError(t, err)
	b, err := NewToken("b")
	require.NoError(t, err)
	il := NewInnerList(nil, Parameters{})
	il = il.Push(NewItem(a, Parameters{}))
	il = il.Unshift(NewItem(b, Parameters{}))

	assert.Equal(t, 2, il.Len())
	first, err := il.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "b", first.Encode())

	_, err = il.Get(5)
	require.Error(t, err)
}

func TestInnerListWithItemsIdentityShortCircuit(t *testing.T) {
	a, err := NewToken("a")
	require.NoError(t, err)
	il := NewInnerList([]Item{NewItem(a, Parameters{})}, Parameters{})

	same, err := NewToken("a")
	require.NoError(t, err)
	updated := il.WithItems([]Item{NewItem(same, Parameters{})})
	assert.Equal(t, il, updated)

	other, err := NewToken("c")
	require.NoError(t, err)
	changed := il.WithItems([]Item{NewItem(other, Parameters{})})
	assert.Equal(t, "(c)", changed.Encode())
}

func TestInnerListRemoveByIndex(t *testing.T) {
	a, err := NewToken("a")
	require.NoError(t, err)
	b, err := NewToken("b")
	require.NoError(t, err)
	c, err := NewToken("c")
	require.NoError(t, err)
	il := NewInnerList([]Item{NewItem(a, Parameters{}), NewItem(b, Parameters{}), NewItem(c, Parameters{})}, Parameters{})

	out, err := il.RemoveByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "(a c)", out.Encode())
}
