// Package vptree provides an exact vantage-point tree index for metrics that
// satisfy the triangle inequality (Chebyshev, Euclidean). Pruning only skips
// subtrees whose lower distance bound strictly exceeds the current k-th best
// distance, so the results — including the ascending-index resolution of
// equidistant candidates — are identical to a brute-force scan.
package vptree
