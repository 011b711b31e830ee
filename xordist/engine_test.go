package xordist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/xorgo/testutil"
)

func TestClosest(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		points := []uint64{0, 1, 2, 4, 6, 8, 12, 18, 19, 20, 21, 22, 406, 407, 408, 409, 410, 444, 445}
		e := New(points)

		assert.Equal(t, []uint64{444, 445, 408, 409}, e.Closest(300, 4))
		assert.Equal(t, []uint64{8, 12, 2, 0, 1, 6, 4, 18, 19, 22}, e.Closest(10, 10))
		assert.Equal(t, []uint64{444, 445, 408, 409, 410, 406, 407, 18, 19, 20, 21, 22}, e.Closest(888, 12))
	})

	t.Run("Uint8", func(t *testing.T) {
		points := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 20, 21, 22, 23, 24, 100, 220, 230, 240, 250}
		e := New(points)

		assert.Equal(t, []uint8{22, 23, 20, 21, 24, 2, 3, 0}, e.Closest(18, 8))
		assert.Equal(t, []uint8{220, 230, 250, 240, 100, 8, 9, 10, 12, 0, 1, 2, 3, 4}, e.Closest(200, 14))
	})

	t.Run("ZeroCount", func(t *testing.T) {
		e := New([]uint64{0, 1, 2, 4, 6, 8, 12})

		assert.Empty(t, e.Closest(10, 0))
		assert.Empty(t, e.Closest(10, -1))
	})

	t.Run("FullCount", func(t *testing.T) {
		points := []uint64{0, 1, 2, 4, 6, 8, 12, 18, 19, 20, 21, 22, 406, 407, 408, 409, 410, 444, 445}
		e := New(points)

		full := []uint64{8, 12, 2, 0, 1, 6, 4, 18, 19, 22, 20, 21, 410, 408, 409, 406, 407, 444, 445}

		result := e.Closest(10, len(points))
		assert.Equal(t, full, result)
		assert.Len(t, result, len(points))
	})

	t.Run("OversizedCount", func(t *testing.T) {
		points := []uint64{0, 1, 2, 4, 6, 8, 12, 18, 19, 20, 21, 22, 406, 407, 408, 409, 410, 444, 445}
		e := New(points)

		assert.Equal(t, e.Closest(10, len(points)), e.Closest(10, len(points)+5))
	})

	t.Run("MonotonicTruncation", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		e := New(rng.Uint64s(100))

		x := rng.Uint64()
		for k := 0; k < e.Len(); k++ {
			assert.Equal(t, e.Closest(x, k), e.Closest(x, k+1)[:k])
		}
	})

	t.Run("DuplicatesKeepOrder", func(t *testing.T) {
		// Duplicate values tie at equal distance; the stable sort keeps
		// their point-set order.
		e := New([]uint64{7, 3, 7, 1})

		assert.Equal(t, []uint64{7, 7, 3, 1}, e.Closest(7, 4))
	})

	t.Run("Pure", func(t *testing.T) {
		points := []uint64{3, 1, 2}
		e := New(points)

		_ = e.Closest(2, 3)
		assert.Equal(t, []uint64{3, 1, 2}, e.Points())
	})
}

func TestClosestMany(t *testing.T) {
	t.Run("MatchesClosest", func(t *testing.T) {
		rng := testutil.NewRNG(1)
		e := New(rng.Uint64s(200))
		queries := rng.Uint64s(32)

		results, err := e.ClosestMany(context.Background(), queries, 5)
		require.NoError(t, err)
		require.Len(t, results, len(queries))

		for i, q := range queries {
			assert.Equal(t, e.Closest(q, 5), results[i])
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		e := New([]uint64{1, 2, 3})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.ClosestMany(ctx, []uint64{1, 2, 3, 4}, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPointsIsCopy(t *testing.T) {
	e := New([]uint64{1, 2, 3})

	p := e.Points()
	p[0] = 99

	assert.Equal(t, []uint64{1, 2, 3}, e.Points())
}

func TestBitSize(t *testing.T) {
	assert.Equal(t, 64, New([]uint64{}).BitSize())
	assert.Equal(t, 8, New([]uint8{}).BitSize())
	assert.Equal(t, 16, New([]uint16{}).BitSize())
}
