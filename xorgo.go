package xorgo

import (
	"context"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/xorgo/xordist"
)

// Delivery resolves the closest farms to customer positions in an
// XOR-distance address space, and reconstructs possible customer
// positions from observed closest-farm lists.
//
// It is a thin domain wrapper around xordist.Engine: arguments and
// results pass through unchanged, with logging and metrics added around
// each operation. A Delivery is safe for concurrent use.
type Delivery[T constraints.Unsigned] struct {
	engine  *xordist.Engine[T]
	logger  *Logger
	metrics MetricsCollector
}

// NewDelivery creates a delivery system over the given farm positions.
func NewDelivery[T constraints.Unsigned](farms []T, optFns ...Option) *Delivery[T] {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	engine := xordist.New(farms, func(o *xordist.Options) {
		o.Logger = opts.logger.Logger
	})

	opts.logger.WithFarms(len(farms)).Debug("delivery system created")

	return &Delivery[T]{
		engine:  engine,
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// ClosestFarms returns up to count farms ordered from the closest to the
// n-th closest to position, where n is the count.
//
// The returned count is lower than the requested one only when count
// exceeds the number of farms.
func (d *Delivery[T]) ClosestFarms(position T, count int) []T {
	start := time.Now()

	farms := d.engine.Closest(position, count)

	d.metrics.RecordClosest(count, time.Since(start))
	d.logger.LogClosest(count, len(farms))

	return farms
}

// ClosestFarmsMany resolves the closest farms for every position in one
// call, fanned out across goroutines. Results are positionally aligned
// with positions. The only error condition is context cancellation.
func (d *Delivery[T]) ClosestFarmsMany(ctx context.Context, positions []T, count int) ([][]T, error) {
	start := time.Now()

	results, err := d.engine.ClosestMany(ctx, positions, count)

	d.metrics.RecordClosestMany(len(positions), count, time.Since(start), err)

	return results, err
}

// ReverseClosestFarms returns a position such that ClosestFarms would
// produce exactly the given ordered farm list, or ok == false when no
// position can produce it.
//
// Many positions can map to the same list; the returned one is the
// canonical witness with every free bit zeroed.
func (d *Delivery[T]) ReverseClosestFarms(closestFarms []T) (position T, ok bool) {
	start := time.Now()

	position, ok = d.engine.Reverse(closestFarms)

	d.metrics.RecordReverse(len(closestFarms), time.Since(start), ok)
	d.logger.LogReverse(len(closestFarms), ok)

	return position, ok
}

// Farms returns a copy of the farm positions.
func (d *Delivery[T]) Farms() []T {
	return d.engine.Points()
}

// Len returns the number of farms.
func (d *Delivery[T]) Len() int {
	return d.engine.Len()
}
