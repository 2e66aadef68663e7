package knn

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/EPinzuti/IDTxl/metric"
	"github.com/EPinzuti/IDTxl/pointset"
)

// ErrInvalidInput is the sentinel wrapped by every query validation failure:
// nil or empty point set, non-positive k, unknown metric, negative Theiler
// window, or malformed radii.
var ErrInvalidInput = errors.New("knn: invalid input")

// Result holds the neighbour indices and distances for every query point.
// Indices[i] lists the neighbours of point i ordered by (distance ascending,
// index ascending); Distances[i] holds the matching distances. Indices are
// 0-based and never include i itself.
type Result struct {
	Indices   [][]int
	Distances [][]float64
}

type candidate struct {
	index int
	dist  float64
}

// Find computes the exact k nearest neighbours of every point in the set.
// Each point's neighbour list has length min(k, c) where c is the number of
// admissible candidates (N-1 without a Theiler window). The computation is
// pure: identical inputs always yield identical output.
func Find(points *pointset.PointSet, k int, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	dist, err := validate(points, k, o)
	if err != nil {
		return nil, err
	}
	n := points.Len()
	res := &Result{
		Indices:   make([][]int, n),
		Distances: make([][]float64, n),
	}
	searchPoint := func(i int) {
		cands := collect(points, i, o.TheilerT, dist)
		m := k
		if m > len(cands) {
			m = len(cands)
		}
		idx := make([]int, m)
		d := make([]float64, m)
		for r := 0; r < m; r++ {
			idx[r] = cands[r].index
			d[r] = cands[r].dist
		}
		res.Indices[i] = idx
		res.Distances[i] = d
	}
	forEachPoint(n, o.Workers, searchPoint)
	return res, nil
}

// KthDistances returns, for every point, the distance to its k-th nearest
// neighbour. These are the radii a Kraskov-style estimator feeds into
// RangeCounts. A point with fewer than k admissible candidates reports the
// distance to its farthest one; a point with no admissible candidate at all
// is an error, since no radius exists for it.
func KthDistances(points *pointset.PointSet, k int, opts ...Option) ([]float64, error) {
	res, err := Find(points, k, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(res.Distances))
	for i, d := range res.Distances {
		if len(d) == 0 {
			return nil, fmt.Errorf("%w: point %d has no admissible candidates for a radius", ErrInvalidInput, i)
		}
		out[i] = d[len(d)-1]
	}
	return out, nil
}

// RangeCounts counts, for every point i, the admissible candidates whose
// distance from i is strictly less than radii[i]. The strict inequality
// matches the Kraskov convention where the k-th neighbour itself sits on the
// boundary and is not counted.
func RangeCounts(points *pointset.PointSet, radii []float64, opts ...Option) ([]int, error) {
	o := buildOptions(opts)
	dist, err := validate(points, 1, o)
	if err != nil {
		return nil, err
	}
	n := points.Len()
	if len(radii) != n {
		return nil, fmt.Errorf("%w: %d radii for %d points", ErrInvalidInput, len(radii), n)
	}
	out := make([]int, n)
	count := func(i int) {
		qi := points.At(i)
		c := 0
		for j := 0; j < n; j++ {
			if excluded(i, j, o.TheilerT) {
				continue
			}
			if dist(qi, points.At(j)) < radii[i] {
				c++
			}
		}
		out[i] = c
	}
	forEachPoint(n, o.Workers, count)
	return out, nil
}

func validate(points *pointset.PointSet, k int, o Options) (metric.DistanceFunc, error) {
	if points == nil || points.Len() == 0 {
		return nil, fmt.Errorf("%w: empty point set", ErrInvalidInput)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidInput, k)
	}
	if o.TheilerT < 0 {
		return nil, fmt.Errorf("%w: negative Theiler window %d", ErrInvalidInput, o.TheilerT)
	}
	dist := o.Metric.Func()
	if dist == nil {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, o.Metric)
	}
	return dist, nil
}

// collect gathers all admissible candidates for query point i sorted by
// (distance ascending, index ascending). The secondary index order is what
// makes equidistant results reproducible across runs and platforms.
func collect(points *pointset.PointSet, i, theiler int, dist metric.DistanceFunc) []candidate {
	n := points.Len()
	qi := points.At(i)
	cands := make([]candidate, 0, n-1)
	for j := 0; j < n; j++ {
		if excluded(i, j, theiler) {
			continue
		}
		cands = append(cands, candidate{index: j, dist: dist(qi, points.At(j))})
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].index < cands[b].index
	})
	return cands
}

// excluded reports whether candidate j is outside point i's admissible set:
// always for j == i, and for |i-j| <= theiler when a Theiler window is set.
func excluded(i, j, theiler int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d <= theiler
}

func forEachPoint(n, workers int, fn func(i int)) {
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// Point searches cannot fail; Wait only joins the goroutines.
	_ = g.Wait()
}
