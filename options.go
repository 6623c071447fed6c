package alignedalloc

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures allocator construction behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// allocations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &alignedalloc.BasicMetricsCollector{}
//	a := alignedalloc.NewSystemAllocator(alignedalloc.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Allocs: %d, Outstanding: %d bytes\n", stats.AllocCount, stats.BytesOutstanding)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for allocations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := alignedalloc.NewJSONLogger(slog.LevelDebug)
//	a := alignedalloc.NewSystemAllocator(alignedalloc.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
