package alignedalloc

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    allocCounter   prometheus.Counter
//	    bytesInUse     prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordAlloc(size, align int, duration time.Duration, err error) {
//	    p.allocCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
//
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordAlloc is called after each allocation attempt.
	// duration is the total time taken, err is nil if successful.
	RecordAlloc(size, align int, duration time.Duration, err error)

	// RecordFree is called after each release.
	// size is the length of the released region.
	RecordFree(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	AllocErrors     atomic.Int64
	AllocTotalNanos atomic.Int64
	BytesAllocated  atomic.Int64
	FreeCount       atomic.Int64
	FreeErrors      atomic.Int64
	BytesFreed      atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(size, align int, duration time.Duration, err error) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.BytesAllocated.Add(int64(size))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(size int, duration time.Duration, err error) {
	b.FreeCount.Add(1)
	if err != nil {
		b.FreeErrors.Add(1)
		return
	}
	b.BytesFreed.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocated := b.BytesAllocated.Load()
	freed := b.BytesFreed.Load()

	return BasicMetricsStats{
		AllocCount:       b.AllocCount.Load(),
		AllocErrors:      b.AllocErrors.Load(),
		AllocAvgNanos:    b.getAvgAllocNanos(),
		FreeCount:        b.FreeCount.Load(),
		FreeErrors:       b.FreeErrors.Load(),
		BytesAllocated:   allocated,
		BytesFreed:       freed,
		BytesOutstanding: allocated - freed,
	}
}

// String renders a one-line summary with humanized byte counts.
func (b *BasicMetricsCollector) String() string {
	s := b.GetStats()

	outstanding := s.BytesOutstanding
	if outstanding < 0 {
		outstanding = 0
	}

	return fmt.Sprintf("allocs=%d frees=%d failures=%d outstanding=%s allocated=%s",
		s.AllocCount, s.FreeCount, s.AllocErrors+s.FreeErrors,
		humanize.IBytes(uint64(outstanding)), humanize.IBytes(uint64(s.BytesAllocated)))
}

func (b *BasicMetricsCollector) getAvgAllocNanos() int64 {
	count := b.AllocCount.Load()
	if count == 0 {
		return 0
	}
	return b.AllocTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount       int64
	AllocErrors      int64
	AllocAvgNanos    int64
	FreeCount        int64
	FreeErrors       int64
	BytesAllocated   int64
	BytesFreed       int64
	BytesOutstanding int64
}
