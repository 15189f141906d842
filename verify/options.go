package verify

import (
	"runtime"
	"time"

	"github.com/hupe1980/bittersweet"
)

// Options configures a Checker.
type Options struct {
	// Widths lists the word widths to check. Defaults to all five.
	Widths []int

	// Samples is the number of random words drawn for widths that are not
	// enumerated exhaustively. The edge words are always checked in addition.
	Samples int

	// Exhaustive32 enumerates all 2^32 words of width 32 instead of sampling.
	Exhaustive32 bool

	// Seed seeds the sample generator. Runs with the same seed check the
	// same words.
	Seed int64

	// Concurrency bounds the number of laws checked in parallel.
	Concurrency int

	// ProgressInterval is the minimum time between progress log lines of a
	// single task. Zero disables progress logging.
	ProgressInterval time.Duration

	// Logger receives per-law results at debug level, failures at error
	// level and the run summary.
	Logger *bittersweet.Logger

	// Metrics receives one record per checked law and one per run.
	Metrics bittersweet.MetricsCollector
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Widths:           []int{8, 16, 32, 64, 128},
		Samples:          100_000,
		Seed:             4711,
		Concurrency:      runtime.GOMAXPROCS(0),
		ProgressInterval: 5 * time.Second,
		Logger:           bittersweet.NoopLogger(),
		Metrics:          bittersweet.NoopMetricsCollector{},
	}
}

// Option configures a Checker.
type Option func(*Options)

// WithWidths restricts the check to the given widths.
func WithWidths(widths ...int) Option {
	return func(o *Options) {
		o.Widths = append([]int(nil), widths...)
	}
}

// WithSamples sets the number of random words per sampled width.
// Negative values are treated as zero.
func WithSamples(n int) Option {
	return func(o *Options) {
		o.Samples = max(n, 0)
	}
}

// WithExhaustive32 toggles exhaustive enumeration of 32-bit words.
//
// An exhaustive 32-bit run evaluates every law on 4,294,967,296 words and
// keeps collision sets of up to 512 MiB per bijection law.
func WithExhaustive32(enabled bool) Option {
	return func(o *Options) {
		o.Exhaustive32 = enabled
	}
}

// WithSeed sets the sample generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithConcurrency bounds parallel law checks. n <= 0 selects GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Concurrency = n
	}
}

// WithProgressInterval sets the minimum time between progress log lines.
func WithProgressInterval(d time.Duration) Option {
	return func(o *Options) {
		o.ProgressInterval = d
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *bittersweet.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = bittersweet.NoopLogger()
		}
		o.Logger = l
	}
}

// WithMetrics configures the metrics collector. If nil is passed, metrics
// are discarded.
func WithMetrics(m bittersweet.MetricsCollector) Option {
	return func(o *Options) {
		if m == nil {
			m = bittersweet.NoopMetricsCollector{}
		}
		o.Metrics = m
	}
}
