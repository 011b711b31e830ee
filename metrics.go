package xorgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordClosest is called after each closest-farms lookup.
	// count is the number of neighbors requested, duration the time taken.
	RecordClosest(count int, duration time.Duration)

	// RecordClosestMany is called after each batch lookup. positions is
	// the number of queries attempted, err is nil unless the batch was
	// canceled.
	RecordClosestMany(positions, count int, duration time.Duration, err error)

	// RecordReverse is called after each reverse lookup. found reports
	// whether a witness position existed.
	RecordReverse(listLen int, duration time.Duration, found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClosest(int, time.Duration)                 {}
func (NoopMetricsCollector) RecordClosestMany(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordReverse(int, time.Duration, bool)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClosestCount      atomic.Int64
	ClosestTotalNanos atomic.Int64

	ClosestManyCount  atomic.Int64
	ClosestManyErrors atomic.Int64

	ReverseCount      atomic.Int64
	ReverseNotFound   atomic.Int64
	ReverseTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordClosest(count int, duration time.Duration) {
	c.ClosestCount.Add(1)
	c.ClosestTotalNanos.Add(duration.Nanoseconds())
}

func (c *BasicMetricsCollector) RecordClosestMany(positions, count int, duration time.Duration, err error) {
	c.ClosestManyCount.Add(1)
	if err != nil {
		c.ClosestManyErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordReverse(listLen int, duration time.Duration, found bool) {
	c.ReverseCount.Add(1)
	c.ReverseTotalNanos.Add(duration.Nanoseconds())
	if !found {
		c.ReverseNotFound.Add(1)
	}
}
