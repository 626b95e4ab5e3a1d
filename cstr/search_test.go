package cstr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gocrt/mem"
	"github.com/hupe1980/gocrt/unit"
)

func TestIndexChar(t *testing.T) {
	widths(t, testIndexChar[uint8], testIndexChar[uint16], testIndexChar[uint32])
}

func testIndexChar[T unit.Unit](t *testing.T) {
	s := From[T]("hello")
	assert.Equal(t, 2, IndexChar(s, 'l'))
	assert.Equal(t, 0, IndexChar(s, 'h'))
	assert.Equal(t, 5, IndexChar(s, 0))
	assert.Equal(t, -1, IndexChar(s, 'z'))

	// Units after the terminator are not part of the string.
	junk := []T{'a', 0, 'z', 0}
	assert.Equal(t, -1, IndexChar(junk, 'z'))
}

func TestLastIndexChar(t *testing.T) {
	widths(t, testLastIndexChar[uint8], testLastIndexChar[uint16], testLastIndexChar[uint32])
}

func testLastIndexChar[T unit.Unit](t *testing.T) {
	s := From[T]("hello")
	assert.Equal(t, 3, LastIndexChar(s, 'l'))
	assert.Equal(t, 4, LastIndexChar(s, 'o'))
	assert.Equal(t, 5, LastIndexChar(s, 0))
	assert.Equal(t, -1, LastIndexChar(s, 'z'))
	assert.Equal(t, 0, LastIndexChar(From[T](""), 0))
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name      string
		s, needle string
		want      int
	}{
		{"empty needle", "abc", "", 0},
		{"empty both", "", "", 0},
		{"at start", "hello world", "hello", 0},
		{"at end", "hello world", "world", 6},
		{"overlapping prefix", "aaab", "aab", 1},
		{"absent", "hello world", "worlds", -1},
		{"needle longer", "ab", "abc", -1},
		{"case sensitive", "Hello", "hello", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Index(From[byte](tc.s), From[byte](tc.needle)))
			assert.Equal(t, tc.want, Index(From[uint16](tc.s), From[uint16](tc.needle)))
			assert.Equal(t, tc.want, Index(From[uint32](tc.s), From[uint32](tc.needle)))
		})
	}
}

func TestIndexEmptyNeedleConventions(t *testing.T) {
	// Buffer search never finds an empty needle; string search finds it at 0.
	assert.Equal(t, -1, mem.Index([]byte("abc"), nil))
	assert.Equal(t, 0, Index(From[byte]("abc"), From[byte]("")))
}

func TestIndexBounded(t *testing.T) {
	s := From[byte]("hello world")
	assert.Equal(t, 6, IndexBounded(s, From[byte]("world"), 11))
	assert.Equal(t, 6, IndexBounded(s, From[byte]("world"), 100))
	assert.Equal(t, -1, IndexBounded(s, From[byte]("world"), 10))
	assert.Equal(t, 0, IndexBounded(s, From[byte]("hello"), 5))
	assert.Equal(t, -1, IndexBounded(s, From[byte]("hello"), 4))
	assert.Equal(t, 0, IndexBounded(s, From[byte](""), 0))
	assert.Equal(t, -1, IndexBounded(s, From[byte]("h"), 0))
}

func TestIndexInsensitive(t *testing.T) {
	assert.Equal(t, 6, IndexInsensitive(From[byte]("Hello World"), From[byte]("WORLD")))
	assert.Equal(t, 0, IndexInsensitive(From[uint16]("ABC"), From[uint16]("abc")))
	assert.Equal(t, 0, IndexInsensitive(From[byte]("x"), From[byte]("")))
	assert.Equal(t, -1, IndexInsensitive(From[byte]("Hello"), From[byte]("help")))
}
