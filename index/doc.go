// Package index defines a minimal abstraction for exact neighbour indexes
// that can be built from a point matrix, queried for kNN with the same
// deterministic ordering contract as package knn, and serialized for
// persistence alongside fixtures. Implementations in this module include a
// brute-force baseline and a VP-tree for larger inputs.
package index
