package treedist

import "log/slog"

type options struct {
	workers          int
	labels           []string
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures pairwise computation behavior.
type Option func(*options)

// WithWorkers sets the number of parallel workers for the pairwise fill.
// Values <= 0 default to runtime.GOMAXPROCS(0). WithWorkers(1) forces a
// sequential computation, which yields a bit-identical matrix.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLabels sets the tree labels carried by the result matrix, in snapshot
// order. The label count must match the snapshot count. Without this option,
// labels default to "tree_0", "tree_1", ...
func WithLabels(labels []string) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
