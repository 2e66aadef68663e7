// Package knn implements exact k-nearest-neighbour search over a PointSet
// under the Chebyshev metric (other metrics optional). Results are fully
// deterministic: neighbours are ordered by ascending distance with ties
// broken by ascending point index, and the query point itself is always
// excluded before selection. This makes outputs suitable for exact-match
// regression fixtures.
//
// The package also provides the two companion queries used by
// Kraskov-style estimators: KthDistances (each point's k-th neighbour
// distance) and RangeCounts (per-point counts of neighbours strictly inside
// a radius). A Theiler window can additionally exclude temporal neighbours
// from all candidate sets.
package knn
