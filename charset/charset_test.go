package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrowSet(t *testing.T) {
	s := New([]byte(" ,;\t\xff\x00ignored"))

	assert.Equal(t, 5, s.Len())
	for _, c := range []byte(" ,;\t\xff") {
		assert.True(t, s.Contains(c), "%q", c)
	}
	for _, c := range []byte("ignored\x00a\x80") {
		assert.False(t, s.Contains(c), "%q", c)
	}
}

func TestSetWithoutTerminator(t *testing.T) {
	s := New([]byte("aab"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains('b'))
}

func TestWideSet(t *testing.T) {
	s := New([]uint32{',', 0x3001, 0x1F600, 0x3001, 0})

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(','))
	assert.True(t, s.Contains(0x3001))
	assert.True(t, s.Contains(0x1F600))
	assert.False(t, s.Contains(0x1F601))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains('.'))
}

func TestWideSetLowOnly(t *testing.T) {
	s := New([]uint16{'a', 0xFF, 0})
	assert.Nil(t, s.high, "no roaring container for units below 256")
	assert.True(t, s.Contains(0xFF))
	assert.False(t, s.Contains(0x1FF))
}

func TestEmptySet(t *testing.T) {
	s := New([]uint16{0, 'x'})
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains('x'))
}
