package selfcheck

import (
	"runtime"

	"github.com/hupe1980/gocrt/internal/simd"
)

const (
	// DefaultMaxSize is the largest buffer size verified by Run.
	DefaultMaxSize = 300
	// DefaultBufferSize is the per-worker buffer used by Throughput.
	DefaultBufferSize = 64 << 10
	// DefaultIterations is the number of passes each throughput worker makes.
	DefaultIterations = 256
	// MaxOffset bounds the alignment offsets swept by Run.
	MaxOffset = 16
)

type options struct {
	maxSize    int
	bufferSize int
	iterations int
	workers    int
	logger     *Logger
	recorder   Recorder
	kernels    []simd.Kernels
}

// Option configures Run and Throughput.
type Option func(*options)

// WithMaxSize sets the largest buffer size Run verifies.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithBufferSize sets the per-worker buffer size Throughput moves.
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufferSize = n
	}
}

// WithIterations sets the passes each throughput worker makes over its buffer.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithWorkers bounds the number of concurrent throughput workers.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithRecorder sets the metrics recorder. If nil is passed, nothing is recorded.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r == nil {
			r = NoopRecorder{}
		}
		o.recorder = r
	}
}

// WithKernels restricts checking to the given families instead of every
// family available on this CPU.
func WithKernels(ks ...simd.Kernels) Option {
	return func(o *options) {
		o.kernels = ks
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{
		maxSize:    DefaultMaxSize,
		bufferSize: DefaultBufferSize,
		iterations: DefaultIterations,
		workers:    runtime.GOMAXPROCS(0),
		logger:     NoopLogger(),
		recorder:   NoopRecorder{},
		kernels:    simd.Available(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.maxSize < 0:
		return o, invalidOption("max size", o.maxSize)
	case o.bufferSize <= 0:
		return o, invalidOption("buffer size", o.bufferSize)
	case o.iterations <= 0:
		return o, invalidOption("iterations", o.iterations)
	case o.workers <= 0:
		return o, invalidOption("workers", o.workers)
	case len(o.kernels) == 0:
		return o, ErrNoKernels
	}
	return o, nil
}
