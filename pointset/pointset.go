package pointset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalid is the sentinel wrapped by every PointSet construction failure.
var ErrInvalid = errors.New("pointset: invalid point set")

// PointSet is an ordered collection of fixed-dimension vectors. Points are
// identified by their 0-based position. The set is read-only after
// construction; transformations return a new PointSet.
type PointSet struct {
	points [][]float32
	dim    int
}

// New validates and wraps the provided vectors. It fails when the collection
// is empty, any vector is empty, or dimensions differ across vectors. The
// input slice is retained, not copied; callers must not mutate it afterwards.
func New(points [][]float32) (*PointSet, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrInvalid)
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: zero-dimensional point at index 0", ErrInvalid)
	}
	for i := range points {
		if len(points[i]) != dim {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrInvalid, i, len(points[i]), dim)
		}
	}
	return &PointSet{points: points, dim: dim}, nil
}

// Len returns the number of points.
func (s *PointSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// Dim returns the dimension shared by all points.
func (s *PointSet) Dim() int {
	if s == nil {
		return 0
	}
	return s.dim
}

// At returns the i-th point. The returned slice is backing storage and must
// not be mutated.
func (s *PointSet) At(i int) []float32 { return s.points[i] }

// Points exposes the backing vectors for bulk operations such as index
// construction and encoding. Treat the result as read-only.
func (s *PointSet) Points() [][]float32 { return s.points }

// Standardise returns a z-standardised copy: each dimension is shifted to
// zero mean and scaled to unit standard deviation across the set. Dimensions
// with zero variance are left centred but unscaled.
func (s *PointSet) Standardise() *PointSet {
	n := len(s.points)
	out := make([][]float32, n)
	for i := range out {
		out[i] = make([]float32, s.dim)
	}
	for d := 0; d < s.dim; d++ {
		var mean float64
		for i := 0; i < n; i++ {
			mean += float64(s.points[i][d])
		}
		mean /= float64(n)
		var variance float64
		for i := 0; i < n; i++ {
			diff := float64(s.points[i][d]) - mean
			variance += diff * diff
		}
		variance /= float64(n)
		std := math.Sqrt(variance)
		for i := 0; i < n; i++ {
			v := float64(s.points[i][d]) - mean
			if std > 0 {
				v /= std
			}
			out[i][d] = float32(v)
		}
	}
	return &PointSet{points: out, dim: s.dim}
}

// Jitter returns a copy with zero-mean Gaussian noise of the given standard
// deviation added to every coordinate. The seed makes the perturbation
// replicable; level <= 0 returns the receiver unchanged.
func (s *PointSet) Jitter(level float64, seed int64) *PointSet {
	if level <= 0 {
		return s
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float32, len(s.points))
	for i, p := range s.points {
		q := make([]float32, s.dim)
		for d := range p {
			q[d] = p[d] + float32(rng.NormFloat64()*level)
		}
		out[i] = q
	}
	return &PointSet{points: out, dim: s.dim}
}
