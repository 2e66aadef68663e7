// Package metric provides the distance functions used for neighbour search.
// Chebyshev (L∞) is the default metric for fixture generation; Euclidean and
// Cosine are available for cross-checking. The checked entry points validate
// dimensions and report errors; Metric.Func resolves an unchecked fast path
// for inner loops that operate on pre-validated point sets.
package metric
