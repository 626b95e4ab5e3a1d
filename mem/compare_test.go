package mem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		n    int
		want int
	}{
		{"zero length", "abc", "xyz", 0, 0},
		{"equal", "hello", "hello", 5, 0},
		{"prefix only", "hello", "help!", 3, 0},
		{"less", "abc", "abd", 3, 'c' - 'd'},
		{"greater", "abd", "abc", 3, 'd' - 'c'},
		{"first mismatch wins", "axz", "bxa", 3, 'a' - 'b'},
		{"unsigned bytes", "\xff", "\x01", 1, 0xff - 0x01},
		{"unsigned bytes reversed", "\x00", "\x80", 1, -0x80},
		{"word step", "0123456789abcdef", "0123456789abcdeF", 16, 'f' - 'F'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare([]byte(tc.a), []byte(tc.b), tc.n))
		})
	}
}

func TestCompareMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n <= 257; n++ {
		a := make([]byte, n)
		_, _ = rng.Read(a)
		b := append([]byte(nil), a...)
		assert.Zero(t, Compare(a, b, n), "n=%d", n)

		for p := 0; p < n; p += 1 + n/9 {
			b[p] = a[p] + byte(1+rng.Intn(255))
			want := int(a[p]) - int(b[p])
			assert.Equal(t, want, Compare(a, b, n), "n=%d p=%d", n, p)
			assert.Equal(t, -want, Compare(b, a, n), "n=%d p=%d", n, p)
			// A later mismatch never changes the answer.
			if p+1 < n {
				b[n-1] ^= 0xFF
				assert.Equal(t, sign(want), sign(Compare(a, b, n)), "n=%d p=%d", n, p)
				b[n-1] ^= 0xFF
			}
			b[p] = a[p]
		}
	}
}

func TestCompareOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Compare(make([]byte, 3), make([]byte, 8), 4) })
}

func TestEqualConstantTime(t *testing.T) {
	assert.True(t, EqualConstantTime([]byte("secret!"), []byte("secret?"), 6))
	assert.False(t, EqualConstantTime([]byte("secret!"), []byte("secret?"), 7))
	assert.True(t, EqualConstantTime(nil, nil, 0))
}
