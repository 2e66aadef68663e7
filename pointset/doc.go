// Package pointset defines the in-memory point-cloud model shared by the
// neighbour search and fixture packages. A PointSet is an ordered, immutable
// collection of fixed-dimension float32 vectors; a point's identity is its
// position in the set. Construction validates shape once so downstream
// queries never re-check dimensions.
package pointset
