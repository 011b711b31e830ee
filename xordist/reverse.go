package xordist

import (
	"errors"
	mathbits "math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/xorgo/bitops"
	"github.com/hupe1980/xorgo/bits"
)

// errEqualPoints marks an inequality between equal points. No query can
// order two equal points strictly, so the whole derivation fails.
var errEqualPoints = errors.New("xordist: equal points cannot be strictly ordered")

// pair asserts the inequality a XOR x < b XOR x for the unknown query x.
type pair[T constraints.Unsigned] struct {
	a T
	b T
}

// Reverse reconstructs a query value x such that Closest(x, len(closest))
// equals closest, or reports that no such value exists.
//
// The ordered list is turned into a system of single-bit constraints:
// every consecutive pair of the list must keep its relative order, and
// the last element must stay strictly closer than every point of the set
// that the list excludes. Each inequality pins exactly one bit of x — the
// highest bit at which its two points differ. The first contradiction
// between two constraints aborts with ok == false.
//
// Bits never pinned by any constraint default to zero, so the returned
// value is a canonical witness, not necessarily the original query: every
// query with the same ranking is equally valid.
//
// An empty list is trivially satisfied by the zero witness.
func (e *Engine[T]) Reverse(closest []T) (x T, ok bool) {
	reg := bits.New[T]()

	for _, p := range e.inequalities(closest) {
		if err := e.applyInequality(p, reg); err != nil {
			if e.logger != nil {
				e.logger.Debug("reverse infeasible", "a", uint64(p.a), "b", uint64(p.b), "error", err)
			}
			return 0, false
		}
	}

	x, err := bits.Number[T](reg)
	if err != nil {
		// The register is sized to T, so the width check cannot fail.
		panic(err)
	}

	if e.logger != nil {
		e.logger.Debug("reverse computed", "x", uint64(x), "list_len", len(closest))
	}

	return x, true
}

// inequalities derives every pairwise inequality the ordered list implies:
// the adjacent pairs of the list itself plus one boundary pair per
// excluded point.
func (e *Engine[T]) inequalities(closest []T) []pair[T] {
	pairs := e.adjacentInequalities(closest)
	return append(pairs, e.boundaryInequalities(closest)...)
}

// adjacentInequalities encodes the strict ordering of the list: for the
// list [c1, ..., cn] it yields (c1, c2), (c2, c3), ..., (c(n-1), cn).
func (e *Engine[T]) adjacentInequalities(closest []T) []pair[T] {
	if len(closest) == 0 {
		return nil
	}

	pairs := make([]pair[T], 0, len(closest)-1)
	for i := 0; i < len(closest)-1; i++ {
		pairs = append(pairs, pair[T]{a: closest[i], b: closest[i+1]})
	}

	return pairs
}

// boundaryInequalities encodes the top-n cut: the last element of the
// list must be strictly closer to the query than every point the list
// excludes, otherwise an excluded point would have displaced it.
func (e *Engine[T]) boundaryInequalities(closest []T) []pair[T] {
	if len(closest) == 0 {
		return nil
	}

	last := closest[len(closest)-1]
	further := e.furtherPoints(closest)

	pairs := make([]pair[T], 0, len(further))
	for _, u := range further {
		pairs = append(pairs, pair[T]{a: last, b: u})
	}

	return pairs
}

// furtherPoints returns the points of the set not present in the list, in
// point-set order.
func (e *Engine[T]) furtherPoints(closest []T) []T {
	excluded := roaring64.New()
	for _, c := range closest {
		excluded.Add(uint64(c))
	}

	var further []T
	for _, p := range e.points {
		if !excluded.Contains(uint64(p)) {
			further = append(further, p)
		}
	}

	return further
}

// applyInequality reduces the inequality a XOR x < b XOR x to a single
// bit constraint on x and records it in the register.
//
// Let m be the highest bit at which a and b differ. Bits above m are
// identical on both sides of the inequality, so the comparison is decided
// at m: the side whose bit m gets cleared by the XOR with x wins. That is
// the case exactly when bit m of x equals bit m of a, which is the
// constraint recorded here.
func (e *Engine[T]) applyInequality(p pair[T], reg *bits.Bits) error {
	d := p.a ^ p.b
	if d == 0 {
		return errEqualPoints
	}

	m := mathbits.Len64(uint64(d)) - 1

	return reg.SetConstrained(m, bitops.IsBitSet(p.a, m))
}
