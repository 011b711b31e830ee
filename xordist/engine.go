package xordist

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/xorgo/bitops"
)

// Options contains configuration options for the engine.
type Options struct {
	// Logger receives debug-level operation logs. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for the engine.
var DefaultOptions = Options{
	Logger: nil,
}

// Engine ranks a fixed point set by XOR distance and inverts rankings
// back into query values.
//
// The point set is copied at construction and never mutated afterwards,
// so concurrent Closest and Reverse calls against the same Engine are
// safe without coordination.
type Engine[T constraints.Unsigned] struct {
	points  []T
	bitSize int
	logger  *slog.Logger
}

// New creates an engine over the given point set. The slice is copied;
// duplicate values are tolerated and behave as identical keys.
func New[T constraints.Unsigned](points []T, optFns ...func(o *Options)) *Engine[T] {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine[T]{
		points:  slices.Clone(points),
		bitSize: bitops.Size[T](),
		logger:  opts.Logger,
	}
}

// Closest returns up to count points ordered from the closest to the
// n-th closest to x under the XOR distance metric d(a, b) = a XOR b.
//
// Fewer than count points are returned only when count exceeds the point
// set size; count zero yields an empty result. Ties between duplicate
// point values keep their point-set order.
func (e *Engine[T]) Closest(x T, count int) []T {
	ranked := slices.Clone(e.points)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(a^x, b^x)
	})

	if count < 0 {
		count = 0
	}
	if count < len(ranked) {
		ranked = ranked[:count]
	}

	if e.logger != nil {
		e.logger.Debug("closest computed", "x", uint64(x), "count", count, "returned", len(ranked))
	}

	return ranked
}

// ClosestMany computes Closest for every query, fanned out across
// goroutines. Results are positionally aligned with queries.
//
// The only error condition is context cancellation.
func (e *Engine[T]) ClosestMany(ctx context.Context, queries []T, count int) ([][]T, error) {
	results := make([][]T, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Closest(q, count)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Points returns a copy of the point set.
func (e *Engine[T]) Points() []T {
	return slices.Clone(e.points)
}

// Len returns the number of points in the point set.
func (e *Engine[T]) Len() int {
	return len(e.points)
}

// BitSize returns the width in bits of the point type.
func (e *Engine[T]) BitSize() int {
	return e.bitSize
}
