// Package xorgo locates the nearest points to a query in an XOR-distance
// metric space over fixed-width unsigned integers, and solves the inverse
// problem: reconstructing a query from an ordered nearest-neighbor list.
//
// The root package exposes the food-delivery facade, where points are
// farm positions and queries are customer positions:
//
//	delivery := xorgo.NewDelivery([]uint64{0, 1, 2, 4, 6, 8, 12})
//
//	farms := delivery.ClosestFarms(10, 3)
//	position, ok := delivery.ReverseClosestFarms(farms)
//
// The metric and constraint-solving core lives in package xordist; the
// per-bit constraint register in package bits; generic bit primitives in
// package bitops.
package xorgo
