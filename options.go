package intbitset

// GrowthPolicy computes the new word capacity when an element write needs
// at least need words and the set currently holds have words.
// Results below need are raised to need.
type GrowthPolicy func(have, need int) int

// GrowthTenth over-allocates by a tenth of the required size.
func GrowthTenth(_, need int) int {
	return need + need/10
}

// GrowthDouble at least doubles the current capacity.
func GrowthDouble(have, need int) int {
	return max(need, 2*have)
}

type options struct {
	capacity         int
	fill             bool
	growth           GrowthPolicy
	logger           *Logger
	metricsCollector MetricsCollector
}

var defaultOptions = options{
	growth:           GrowthTenth,
	logger:           NoopLogger(),
	metricsCollector: NoopMetricsCollector{},
}

// Option configures set construction.
//
// Options other than WithCapacity and WithTrailingFill are inherited by
// clones and by the results of algebra operations.
type Option func(*options)

// WithCapacity preallocates storage for at least bits elements.
func WithCapacity(bits int) Option {
	return func(o *options) {
		o.capacity = bits
	}
}

// WithTrailingFill sets the value of every bit beyond explicit storage.
// true creates a co-finite set containing every element.
func WithTrailingFill(fill bool) Option {
	return func(o *options) {
		o.fill = fill
	}
}

// WithGrowth configures how storage grows on element writes.
//
// If nil is passed, GrowthTenth is used.
func WithGrowth(p GrowthPolicy) Option {
	return func(o *options) {
		if p == nil {
			p = GrowthTenth
		}
		o.growth = p
	}
}

// WithLogger configures the logger for resize and decode events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func buildOptions(optFns []Option) *options {
	o := defaultOptions
	for _, fn := range optFns {
		fn(&o)
	}
	return &o
}

// shared returns the options to hand down to a derived set.
func (o *options) shared() *options {
	if o == nil {
		return &defaultOptions
	}
	if o.capacity == 0 && !o.fill {
		return o
	}
	c := *o
	c.capacity = 0
	c.fill = false
	return &c
}
