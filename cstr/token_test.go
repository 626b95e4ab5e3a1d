package cstr

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gocrt/unit"
)

func TestTokenize(t *testing.T) {
	widths(t, testTokenize[uint8], testTokenize[uint16], testTokenize[uint32])
}

func testTokenize[T unit.Unit](t *testing.T) {
	s := From[T]("a,,b,")
	delims := From[T](",")
	var c Cursor

	start := Tokenize(s, delims, &c)
	require.Equal(t, 0, start)
	assert.Equal(t, "a", ToString(s[start:]))

	start = Tokenize(s, delims, &c)
	require.Equal(t, 3, start)
	assert.Equal(t, "b", ToString(s[start:]))

	assert.Equal(t, -1, Tokenize(s, delims, &c))
	assert.Equal(t, 5, c.Pos)
	assert.Equal(t, -1, Tokenize(s, delims, &c))
}

func TestTokenizeLastToken(t *testing.T) {
	s := From[byte]("  one two")
	delims := From[byte](" ")
	var c Cursor

	assert.Equal(t, 2, Tokenize(s, delims, &c))
	assert.Equal(t, 6, Tokenize(s, delims, &c))
	assert.Equal(t, 9, c.Pos)
	assert.Equal(t, "two", ToString(s[6:]))
	assert.Equal(t, -1, Tokenize(s, delims, &c))
}

func TestTokenizeOnlyDelimiters(t *testing.T) {
	s := From[byte](";;;")
	var c Cursor
	assert.Equal(t, -1, Tokenize(s, From[byte](";"), &c))
	assert.Equal(t, 3, c.Pos)
}

func TestFields(t *testing.T) {
	s := From[uint16](" alpha, beta ,gamma ")
	var got []string
	for tok := range Fields(s, From[uint16](" ,")) {
		got = append(got, ToString(tok))
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)

	t.Run("early stop", func(t *testing.T) {
		s := From[byte]("a b c")
		next, stop := iter.Pull(Fields(s, From[byte](" ")))
		defer stop()
		tok, ok := next()
		require.True(t, ok)
		assert.Equal(t, "a", ToString(tok))
	})

	t.Run("collect", func(t *testing.T) {
		s := From[byte]("x|y")
		toks := slices.Collect(Fields(s, From[byte]("|")))
		assert.Len(t, toks, 2)
	})
}
