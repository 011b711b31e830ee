package xorgo

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Delivery constructor behavior.
type Option func(*options)

// WithLogger configures the logger used for operation logs.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector called around each
// operation.
//
// If nil is passed, metrics stay disabled.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
