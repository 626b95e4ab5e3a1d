package mem

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Every primitive is reentrant: concurrent calls on disjoint memory must not
// interfere with each other.
func TestConcurrentDisjointBuffers(t *testing.T) {
	const (
		workers = 8
		size    = 4096
		rounds  = 50
	)

	src := make([]byte, workers*size)
	dst := make([]byte, workers*size)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		s := src[w*size : (w+1)*size]
		d := dst[w*size : (w+1)*size]
		g.Go(func() error {
			for r := 0; r < rounds; r++ {
				Fill(s, byte(w+r), size)
				Copy(d, s, size)
				if Compare(d, s, size) != 0 {
					return assertionError("copy mismatch")
				}
				Move(d[1:], d, size-1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := 0; w < workers; w++ {
		last := byte(w + rounds - 1)
		want := bytes.Repeat([]byte{last}, size)
		require.Equal(t, want, dst[w*size:(w+1)*size], "worker %d", w)
	}
}

type assertionError string

func (e assertionError) Error() string { return string(e) }
