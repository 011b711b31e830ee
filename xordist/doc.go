// Package xordist provides exact nearest-neighbor queries over fixed-width
// unsigned integers under the XOR distance metric, together with the
// inverse query: reconstructing a query value from an ordered ranking.
//
// XOR distance d(a, b) = a XOR b, compared as unsigned magnitude, is the
// metric Kademlia-style distributed hash tables rank their routing tables
// by. This package isolates the pure metric and constraint-solving logic;
// it does no networking and maintains no routing state.
//
// # Forward Queries
//
//	engine := xordist.New([]uint64{0, 1, 2, 4, 6, 8, 12})
//	closest := engine.Closest(10, 3)
//
// # Reverse Queries
//
// Given an ordered list alleged to be a Closest result, Reverse derives
// the bit constraints any producing query must satisfy and either
// synthesizes a witness or reports that the ordering is unsatisfiable:
//
//	if x, ok := engine.Reverse(closest); ok {
//		// engine.Closest(x, len(closest)) reproduces closest
//	}
//
// Many queries can map to the same ranking; Reverse returns the canonical
// witness with every unconstrained bit zeroed.
package xordist
