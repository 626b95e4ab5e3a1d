package selfcheck

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gocrt/internal/align"
	"github.com/hupe1980/gocrt/internal/simd"
	"github.com/hupe1980/gocrt/mem"
)

// Result is one throughput measurement.
type Result struct {
	Op       string
	ISA      simd.ISA
	Workers  int
	Bytes    int64
	Duration time.Duration
}

// MiBPerSecond returns the aggregate rate over all workers.
func (r Result) MiBPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Bytes) / (1 << 20) / r.Duration.Seconds()
}

type kernelOp struct {
	name string
	run  func(k simd.Kernels, dst, src []byte)
}

var kernelOps = []kernelOp{
	{"fill", func(k simd.Kernels, dst, _ []byte) { k.Fill(dst, fillByte) }},
	{"copy", func(k simd.Kernels, dst, src []byte) { k.Copy(dst, src) }},
	{"compare", func(k simd.Kernels, dst, src []byte) { k.Compare(dst, src) }},
}

// memOps run the full cascade of the public byte primitives, which always
// use the active family.
var memOps = []kernelOp{
	{"mem.fill", func(_ simd.Kernels, dst, _ []byte) { mem.Fill(dst, fillByte, len(dst)) }},
	{"mem.copy", func(_ simd.Kernels, dst, src []byte) { mem.Copy(dst, src, len(dst)) }},
	{"mem.move", func(_ simd.Kernels, dst, src []byte) { mem.Move(dst, src, len(dst)) }},
	{"mem.compare", func(_ simd.Kernels, dst, src []byte) { mem.Compare(dst, src, len(dst)) }},
}

// Throughput runs each kernel of every selected family on per-worker
// buffers, then the public mem primitives on the active family. Workers
// never share memory; their number is bounded by WithWorkers.
func Throughput(ctx context.Context, opts ...Option) ([]Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var results []Result
	run := func(k simd.Kernels, ops []kernelOp) error {
		for _, op := range ops {
			r, err := measure(ctx, o, k, op)
			if err != nil {
				return err
			}
			o.recorder.RecordThroughput(r.Op, r.ISA, r.Bytes, r.Duration)
			o.logger.WithISA(r.ISA).WithOp(r.Op).LogThroughput(ctx, r)
			results = append(results, r)
		}
		return nil
	}

	for _, k := range o.kernels {
		if err := run(k, kernelOps); err != nil {
			return results, err
		}
	}
	if err := run(simd.Active(), memOps); err != nil {
		return results, err
	}
	return results, nil
}

func measure(ctx context.Context, o options, k simd.Kernels, op kernelOp) (Result, error) {
	var total atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	start := time.Now()
	for range o.workers {
		g.Go(func() error {
			src := align.Bytes(o.bufferSize)
			dst := align.Bytes(o.bufferSize)
			pattern(src, 0)
			copy(dst, src)

			for range o.iterations {
				if err := gctx.Err(); err != nil {
					return err
				}
				op.run(k, dst, src)
				total.Add(int64(o.bufferSize))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		Op:       op.name,
		ISA:      k.ISA,
		Workers:  o.workers,
		Bytes:    total.Load(),
		Duration: time.Since(start),
	}, nil
}
