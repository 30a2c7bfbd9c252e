package intbitset

import "sync/atomic"

// Op identifies a set algebra operation for metrics.
type Op uint8

const (
	OpUnion Op = iota
	OpXor
	OpIntersection
	OpSubtract
	numOps
)

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpXor:
		return "xor"
	case OpIntersection:
		return "intersection"
	case OpSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    resizeCounter prometheus.Counter
//	    opWords       *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordOp(op intbitset.Op, inPlace bool, words int) {
//	    p.opWords.WithLabelValues(op.String()).Observe(float64(words))
//	}
type MetricsCollector interface {
	// RecordResize is called whenever a set grows its storage.
	RecordResize(oldWords, newWords int)

	// RecordOp is called after each set algebra operation.
	// words is the number of words the operation combined.
	RecordOp(op Op, inPlace bool, words int)

	// RecordDecode is called after each buffer or dump decode.
	// err is nil if successful.
	RecordDecode(bytes int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResize(int, int)   {}
func (NoopMetricsCollector) RecordOp(Op, bool, int)  {}
func (NoopMetricsCollector) RecordDecode(int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// It is safe for concurrent use by sets owned by different goroutines.
type BasicMetricsCollector struct {
	ResizeCount  atomic.Int64
	ResizeWords  atomic.Int64
	OpCount      [numOps]atomic.Int64
	InPlaceCount atomic.Int64
	OpWords      atomic.Int64
	DecodeCount  atomic.Int64
	DecodeBytes  atomic.Int64
	DecodeErrors atomic.Int64
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(oldWords, newWords int) {
	b.ResizeCount.Add(1)
	b.ResizeWords.Add(int64(newWords - oldWords))
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(op Op, inPlace bool, words int) {
	if op < numOps {
		b.OpCount[op].Add(1)
	}
	if inPlace {
		b.InPlaceCount.Add(1)
	}
	b.OpWords.Add(int64(words))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(bytes int, err error) {
	b.DecodeCount.Add(1)
	b.DecodeBytes.Add(int64(bytes))
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		ResizeCount:  b.ResizeCount.Load(),
		ResizeWords:  b.ResizeWords.Load(),
		InPlaceCount: b.InPlaceCount.Load(),
		OpWords:      b.OpWords.Load(),
		DecodeCount:  b.DecodeCount.Load(),
		DecodeBytes:  b.DecodeBytes.Load(),
		DecodeErrors: b.DecodeErrors.Load(),
	}
	for op := Op(0); op < numOps; op++ {
		s.OpCount += b.OpCount[op].Load()
	}
	s.UnionCount = b.OpCount[OpUnion].Load()
	s.XorCount = b.OpCount[OpXor].Load()
	s.IntersectionCount = b.OpCount[OpIntersection].Load()
	s.SubtractCount = b.OpCount[OpSubtract].Load()
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ResizeCount       int64
	ResizeWords       int64
	OpCount           int64
	UnionCount        int64
	XorCount          int64
	IntersectionCount int64
	SubtractCount     int64
	InPlaceCount      int64
	OpWords           int64
	DecodeCount       int64
	DecodeBytes       int64
	DecodeErrors      int64
}
