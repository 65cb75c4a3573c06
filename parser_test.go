package sf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionaryScenario(t *testing.T) {
	d, err := ParseDictionary([]byte("a=1, b=2;x=?0, c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())

	c, err := d.Get("c")
	require.NoError(t, err)
	it, ok := c.(Item)
	require.True(t, ok)
	assert.Equal(t, Boolean(true), it.Bare())
	assert.True(t, it.Parameters().IsEmpty())

	assert.Equal(t, "a=1, b=2;x=?0, c", d.Encode())
}

func TestParseListOfTokens(t *testing.T) {
	l, err := ParseList([]byte("sugar, tea, rum"))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	for _, m := range l.Members() {
		_, ok := m.(Item)
		require.True(t, ok)
	}
	assert.Equal(t, "sugar, tea, rum", l.Encode())
}

func TestParseInnerListWithParameters(t *testing.T) {
	l, err := ParseList([]byte(`("foo" "bar");a=1`))
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())
	m, err := l.Get(0)
	require.NoError(t, err)
	il, ok := m.(InnerList)
	require.True(t, ok)
	assert.Equal(t, 2, il.Len())

	v, err := il.Parameters().Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v.Encode())

	assert.Equal(t, `("foo" "bar");a=1`, l.Encode())
}

func TestParseItemByteSequence(t *testing.T) {
	it, err := ParseItem([]byte(`:cHJldGVuZCB0aGlzIGlzIGJpbmFyeQ==:`))
	require.NoError(t, err)
	bs, ok := it.Bare().(ByteSequence)
	require.True(t, ok)
	assert.Equal(t, "pretend this is binary", string(bs))
}

func TestParseItemBooleanFalse(t *testing.T) {
	it, err := ParseItem([]byte("?0"))
	require.NoError(t, err)
	assert.Equal(t, Boolean(false), it.Bare())
}

func TestParseItemInvalidBooleanDigit(t *testing.T) {
	_, err := ParseItem([]byte("?2"))
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestParseDictionaryCanonicalizesSpacing(t *testing.T) {
	d, err := ParseDictionary([]byte("a=1,b=2"))
	require.NoError(t, err)
	assert.Equal(t, "a=1, b=2", d.Encode())
}

func TestParseIntegerBoundaries(t *testing.T) {
	it, err := ParseItem([]byte("999999999999999"))
	require.NoError(t, err)
	assert.Equal(t, Integer{v: 999_999_999_999_999}, it.Bare())

	_, err = ParseItem([]byte("1000000000000000"))
	require.Error(t, err)
}

func TestParseDecimalBoundaries(t *testing.T) {
	it, err := ParseItem([]byte("999999999999.999"))
	require.NoError(t, err)
	assert.Equal(t, "999999999999.999", it.Bare().Encode())

	_, err = ParseItem([]byte("1000000000000.0"))
	require.Error(t, err)
}

func TestParseEmptyAndTrailingComma(t *testing.T) {
	l, err := ParseList([]byte(""))
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	_, err = ParseList([]byte(","))
	require.Error(t, err)

	_, err = ParseList([]byte("a,"))
	require.Error(t, err)
}

func TestParseInnerListExtraSpaceCanonicalizes(t *testing.T) {
	l, err := ParseList([]byte("(a  b)"))
	require.NoError(t, err)
	assert.Equal(t, "(a b)", l.Encode())
}

func TestParseDateLiteral(t *testing.T) {
	it, err := ParseItem([]byte("@1659578233"))
	require.NoError(t, err)
	d, ok := it.Bare().(Date)
	require.True(t, ok)
	assert.Equal(t, int64(1659578233), d.Unix())
	assert.Equal(t, "@1659578233", it.Encode())
}

func TestParseDisplayStringLiteral(t *testing.T) {
	it, err := ParseItem([]byte(`%"f%c3%bc%c3%bc"`))
	require.NoError(t, err)
	ds, ok := it.Bare().(DisplayString)
	require.True(t, ok)
	assert.Equal(t, "füü", string(ds))
}

func TestParseItemLinesJoinsFoldedHeaders(t *testing.T) {
	it, err := ParseItemLines([]string{"1", "", "  "})
	require.NoError(t, err)
	assert.Equal(t, "1", it.Encode())

	l, err := ParseListLines([]string{"a, b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "a, b, c", l.Encode())
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseItem([]byte("1 garbage"))
	require.Error(t, err)
}

func TestParseRejectsOutOfRangeByte(t *testing.T) {
	_, err := ParseItem([]byte{0x01})
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}
