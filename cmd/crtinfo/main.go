// crtinfo reports which kernel family this build selected, verifies every
// available family against scalar references and measures throughput.
//
// Exit status is 0 on success, 2 when a kernel disagrees with its reference
// and 1 for any other failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/hupe1980/gocrt/internal/selfcheck"
	"github.com/hupe1980/gocrt/internal/simd"
)

// exitError carries a process exit code without an extra message.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func (e *exitError) ExitCode() int { return e.code }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

type config struct {
	maxSize        int
	bufferSize     int
	iterations     int
	workers        int
	logFormat      string
	verbose        bool
	skipThroughput bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("crtinfo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntVar(&cfg.maxSize, "size", selfcheck.DefaultMaxSize, "largest buffer size to verify")
	flagSet.IntVar(&cfg.bufferSize, "buffer-size", selfcheck.DefaultBufferSize, "per-worker buffer size for throughput")
	flagSet.IntVar(&cfg.iterations, "iterations", selfcheck.DefaultIterations, "passes per throughput worker")
	flagSet.IntVar(&cfg.workers, "workers", 0, "concurrent throughput workers (default GOMAXPROCS)")
	flagSet.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every verified family")
	flagSet.BoolVar(&cfg.skipThroughput, "skip-throughput", false, "only verify, do not measure")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	logger, err := newLogger(stderr, cfg)
	if err != nil {
		return err
	}

	opts := []selfcheck.Option{
		selfcheck.WithLogger(logger),
		selfcheck.WithMaxSize(cfg.maxSize),
		selfcheck.WithBufferSize(cfg.bufferSize),
		selfcheck.WithIterations(cfg.iterations),
	}
	if cfg.workers != 0 {
		opts = append(opts, selfcheck.WithWorkers(cfg.workers))
	}

	printCapabilities(stdout, selfcheck.Detect())

	report, err := selfcheck.Run(ctx, opts...)
	if err != nil {
		if errors.Is(err, selfcheck.ErrMismatch) {
			return &exitError{code: 2, err: err}
		}
		return err
	}
	fmt.Fprintf(stdout, "\nself-check: ok (%d families, %d checks, %s)\n",
		len(report.Families), report.Checks, report.Duration.Round(time.Millisecond))

	if cfg.skipThroughput {
		return nil
	}

	results, err := selfcheck.Throughput(ctx, opts...)
	if err != nil {
		return err
	}
	printResults(stdout, results)
	return nil
}

func newLogger(w io.Writer, cfg config) (*selfcheck.Logger, error) {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	switch cfg.logFormat {
	case "text":
		return selfcheck.NewTextLogger(w, level), nil
	case "json":
		return selfcheck.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.logFormat)
	}
}

func printCapabilities(w io.Writer, c selfcheck.Capabilities) {
	fmt.Fprintf(w, "active:      %s (%d-byte chunks)\n", c.Active, c.ChunkWidth)
	if c.Overridden {
		fmt.Fprintf(w, "override:    %s\n", simd.EnvOverride)
	}
	fmt.Fprint(w, "available:  ")
	for _, isa := range c.Available {
		fmt.Fprintf(w, " %s", isa)
	}
	fmt.Fprintln(w)

	names := make([]string, 0, len(c.Features))
	for name := range c.Features {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprint(w, "cpu:        ")
	for _, name := range names {
		mark := "-"
		if c.Features[name] {
			mark = "+"
		}
		fmt.Fprintf(w, " %s%s", mark, name)
	}
	fmt.Fprintln(w)
}

func printResults(w io.Writer, results []selfcheck.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nISA\tOP\tWORKERS\tMiB/s")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\n", r.ISA, r.Op, r.Workers, r.MiBPerSecond())
	}
	tw.Flush()
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `crtinfo: kernel selection report, self-check and throughput.

Set %s to force a kernel family the CPU supports.

Usage:
  crtinfo [flags]

Flags:
`, simd.EnvOverride)
	flagSet.PrintDefaults()
}
