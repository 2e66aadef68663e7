package metric

import (
	"math"

	"github.com/viant/vec/search"
)

// Metric enumerates the supported distance metrics.
type Metric string

const (
	// Chebyshev is the maximum (L∞) metric, the default for neighbour
	// fixtures: max over dimensions of |a[d]-b[d]|.
	Chebyshev Metric = "chebyshev"
	// Euclidean is the L2 metric.
	Euclidean Metric = "euclidean"
	// Cosine is the cosine distance (1 - cosine similarity). It does not
	// satisfy the triangle inequality, so tree-based indexes reject it.
	Cosine Metric = "cosine"
)

// DistanceFunc computes the distance between two equal-length vectors.
// Implementations assume pre-validated inputs.
type DistanceFunc func(a, b []float32) float64

// Func resolves the callable distance implementation, or nil for an unknown
// metric.
func (m Metric) Func() DistanceFunc {
	switch m {
	case Chebyshev:
		return chebyshev
	case Euclidean:
		return euclidean
	case Cosine:
		return cosine
	default:
		return nil
	}
}

// Triangular reports whether the metric satisfies the triangle inequality,
// a requirement for exact pruning in spatial indexes.
func (m Metric) Triangular() bool {
	return m == Chebyshev || m == Euclidean
}

// Chebyshev is evaluated in float64 with a fixed left-to-right scan so equal
// inputs always produce bit-identical distances; this is what makes fixture
// comparison exact rather than approximate.
func chebyshev(a, b []float32) float64 {
	var max float64
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > max {
			max = d
		}
	}
	return max
}

func euclidean(a, b []float32) float64 {
	return float64(search.Float32s(a).EuclideanDistance(b))
}

// The magnitude-precomputing cosine variants in viant/vec are arm64-only;
// CosineDistance is the portable entry point.
func cosine(a, b []float32) float64 {
	return float64(search.Float32s(a).CosineDistance(b))
}
