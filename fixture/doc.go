// Package fixture persists point sets and their precomputed neighbour
// matrices in a SQLite database so estimator regression tests can compare
// against exact, replicable results. Point matrices are stored as
// little-endian float32 BLOBs and neighbour matrices as little-endian int32
// BLOBs; shapes live in table columns so the BLOBs stay raw.
//
// Neighbour indices are 0-based in the Go API. Fixtures may be persisted
// 1-based for consumers that expect 1-indexed matrices; the base is recorded
// per fixture and applied on load.
package fixture
