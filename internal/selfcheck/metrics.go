package selfcheck

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/gocrt/internal/simd"
)

// Recorder collects operational metrics from Run and Throughput.
// Implement this interface to integrate with monitoring systems.
type Recorder interface {
	// RecordCheck is called after each kernel family is verified.
	// checks is the number of comparisons made, err is nil if all passed.
	RecordCheck(isa simd.ISA, checks int, duration time.Duration, err error)

	// RecordThroughput is called after each throughput measurement.
	RecordThroughput(op string, isa simd.ISA, bytes int64, duration time.Duration)
}

// NoopRecorder is a no-op implementation of Recorder.
type NoopRecorder struct{}

func (NoopRecorder) RecordCheck(simd.ISA, int, time.Duration, error)           {}
func (NoopRecorder) RecordThroughput(string, simd.ISA, int64, time.Duration) {}

// BasicRecorder provides simple in-memory metrics collection.
type BasicRecorder struct {
	CheckFamilies   atomic.Int64
	CheckCount      atomic.Int64
	CheckFailures   atomic.Int64
	CheckTotalNanos atomic.Int64
	ThroughputRuns  atomic.Int64
	ThroughputBytes atomic.Int64
	ThroughputNanos atomic.Int64
}

// RecordCheck implements Recorder.
func (b *BasicRecorder) RecordCheck(_ simd.ISA, checks int, duration time.Duration, err error) {
	b.CheckFamilies.Add(1)
	b.CheckCount.Add(int64(checks))
	b.CheckTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CheckFailures.Add(1)
	}
}

// RecordThroughput implements Recorder.
func (b *BasicRecorder) RecordThroughput(_ string, _ simd.ISA, bytes int64, duration time.Duration) {
	b.ThroughputRuns.Add(1)
	b.ThroughputBytes.Add(bytes)
	b.ThroughputNanos.Add(duration.Nanoseconds())
}

// Stats returns a snapshot of current metrics.
func (b *BasicRecorder) Stats() BasicStats {
	return BasicStats{
		CheckFamilies:   b.CheckFamilies.Load(),
		CheckCount:      b.CheckCount.Load(),
		CheckFailures:   b.CheckFailures.Load(),
		CheckAvgNanos:   avg(b.CheckTotalNanos.Load(), b.CheckFamilies.Load()),
		ThroughputRuns:  b.ThroughputRuns.Load(),
		ThroughputBytes: b.ThroughputBytes.Load(),
		ThroughputNanos: b.ThroughputNanos.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicStats is a snapshot of BasicRecorder state.
type BasicStats struct {
	CheckFamilies   int64
	CheckCount      int64
	CheckFailures   int64
	CheckAvgNanos   int64
	ThroughputRuns  int64
	ThroughputBytes int64
	ThroughputNanos int64
}
