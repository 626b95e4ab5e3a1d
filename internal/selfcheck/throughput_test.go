package selfcheck

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gocrt/internal/simd"
)

func TestThroughput(t *testing.T) {
	rec := &BasicRecorder{}
	var buf bytes.Buffer

	results, err := Throughput(context.Background(),
		WithKernels(genericFamily(t)),
		WithBufferSize(4096),
		WithIterations(4),
		WithWorkers(3),
		WithRecorder(rec),
		WithLogger(NewJSONLogger(&buf, slog.LevelInfo)),
	)
	require.NoError(t, err)
	ops := append(append([]kernelOp(nil), kernelOps...), memOps...)
	require.Len(t, results, len(ops))

	for i, r := range results {
		assert.Equal(t, ops[i].name, r.Op)
		assert.Equal(t, 3, r.Workers)
		assert.Equal(t, int64(3*4*4096), r.Bytes)
	}
	for _, r := range results[len(kernelOps):] {
		assert.Equal(t, simd.ActiveISA(), r.ISA, "op %s", r.Op)
	}

	stats := rec.Stats()
	assert.Equal(t, int64(len(ops)), stats.ThroughputRuns)
	assert.Equal(t, int64(len(ops)*3*4*4096), stats.ThroughputBytes)

	out := buf.String()
	assert.Contains(t, out, `"msg":"throughput"`)
	assert.Contains(t, out, `"isa":"generic","op":"copy"`)
	assert.Contains(t, out, `"op":"mem.copy"`)
}

func TestThroughputCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Throughput(ctx, WithKernels(genericFamily(t)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestResultMiBPerSecond(t *testing.T) {
	r := Result{Bytes: 4 << 20, Duration: 2 * time.Second}
	assert.InDelta(t, 2.0, r.MiBPerSecond(), 1e-9)
	assert.Zero(t, Result{Bytes: 1}.MiBPerSecond())
}
