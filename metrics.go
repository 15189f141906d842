package bittersweet

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting law-check metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: laws are checked in
// parallel and report as they finish.
type MetricsCollector interface {
	// RecordLaw is called after each law has been checked at one width.
	// checked is the number of words evaluated, err is nil if the law held.
	RecordLaw(width int, law string, checked uint64, duration time.Duration, err error)

	// RecordRun is called once per verification run.
	// laws is the number of (width, law) pairs, failed the number violated.
	RecordRun(laws, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLaw(int, string, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LawCount      atomic.Int64
	LawErrors     atomic.Int64
	LawTotalNanos atomic.Int64
	WordsChecked  atomic.Uint64
	RunCount      atomic.Int64
	RunFailed     atomic.Int64
}

// RecordLaw implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLaw(_ int, _ string, checked uint64, duration time.Duration, err error) {
	b.LawCount.Add(1)
	b.LawTotalNanos.Add(duration.Nanoseconds())
	b.WordsChecked.Add(checked)
	if err != nil {
		b.LawErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_, failed int, _ time.Duration) {
	b.RunCount.Add(1)
	if failed > 0 {
		b.RunFailed.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LawCount:     b.LawCount.Load(),
		LawErrors:    b.LawErrors.Load(),
		LawAvgNanos:  b.getAvgLawNanos(),
		WordsChecked: b.WordsChecked.Load(),
		RunCount:     b.RunCount.Load(),
		RunFailed:    b.RunFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLawNanos() int64 {
	count := b.LawCount.Load()
	if count == 0 {
		return 0
	}
	return b.LawTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LawCount     int64
	LawErrors    int64
	LawAvgNanos  int64
	WordsChecked uint64
	RunCount     int64
	RunFailed    int64
}
