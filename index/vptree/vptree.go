package vptree

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/EPinzuti/IDTxl/index"
	"github.com/EPinzuti/IDTxl/index/bruteforce"
	"github.com/EPinzuti/IDTxl/metric"
)

// Index is an exact VP-tree neighbour index. The zero value indexes under
// the Chebyshev metric; set Metric before Build to change it. Construction
// is deterministic: the vantage point is always the last remaining index and
// the split threshold the median distance, so identical inputs yield
// identical trees.
//
// Serialization reuses the brute-force point-matrix encoding; the tree is
// rebuilt on UnmarshalBinary.
type Index struct {
	Metric metric.Metric

	points [][]float32
	dim    int
	dist   metric.DistanceFunc
	root   *node
}

type node struct {
	idx   int
	thr   float64
	left  *node // distance to vantage point <= thr
	right *node // distance to vantage point >= thr
}

// Build constructs the VP-tree over the point matrix.
func (x *Index) Build(points [][]float32) error {
	if x.Metric == "" {
		x.Metric = metric.Chebyshev
	}
	if !x.Metric.Triangular() {
		return fmt.Errorf("vptree: metric %q does not satisfy the triangle inequality", x.Metric)
	}
	fn := x.Metric.Func()
	if fn == nil {
		return fmt.Errorf("vptree: unknown metric %q", x.Metric)
	}
	if len(points) == 0 {
		x.points, x.dim, x.dist, x.root = nil, 0, fn, nil
		return nil
	}
	dim := len(points[0])
	if dim == 0 {
		return fmt.Errorf("vptree: zero-dimensional points")
	}
	for j := range points {
		if len(points[j]) != dim {
			return fmt.Errorf("vptree: inconsistent vector dims %d vs %d", len(points[j]), dim)
		}
	}
	x.points = points
	x.dim = dim
	x.dist = fn
	idxs := make([]int, len(points))
	for k := range idxs {
		idxs[k] = k
	}
	x.root = x.build(idxs)
	return nil
}

func (x *Index) build(idxs []int) *node {
	if len(idxs) == 0 {
		return nil
	}
	// Last index as vantage point keeps construction free of randomness.
	vp := idxs[len(idxs)-1]
	idxs = idxs[:len(idxs)-1]
	if len(idxs) == 0 {
		return &node{idx: vp}
	}
	dists := make([]float64, len(idxs))
	for k, j := range idxs {
		dists[k] = x.dist(x.points[vp], x.points[j])
	}
	order := make([]int, len(idxs))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
	mid := len(order) / 2
	thr := dists[order[mid]]
	leftIdxs := make([]int, 0, mid+1)
	rightIdxs := make([]int, 0, len(idxs)-(mid+1))
	for rank, k := range order {
		if rank <= mid {
			leftIdxs = append(leftIdxs, idxs[k])
		} else {
			rightIdxs = append(rightIdxs, idxs[k])
		}
	}
	return &node{
		idx:   vp,
		thr:   thr,
		left:  x.build(leftIdxs),
		right: x.build(rightIdxs),
	}
}

// Query returns up to k admissible neighbours ordered by (distance
// ascending, index ascending), identical to a brute-force scan.
func (x *Index) Query(query []float32, k int, exclude index.ExcludeFunc) ([]index.Neighbor, error) {
	if x.dim == 0 || len(x.points) == 0 {
		return nil, nil
	}
	if len(query) != x.dim {
		return nil, fmt.Errorf("vptree: query dim %d != index dim %d", len(query), x.dim)
	}
	if k <= 0 {
		return nil, fmt.Errorf("vptree: k must be positive, got %d", k)
	}
	h := &neighbors{}
	heap.Init(h)
	x.search(x.root, query, k, exclude, h)
	out := make([]index.Neighbor, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(index.Neighbor)
	}
	return out, nil
}

func (x *Index) search(n *node, query []float32, k int, exclude index.ExcludeFunc, h *neighbors) {
	if n == nil {
		return
	}
	d := x.dist(query, x.points[n.idx])
	if exclude == nil || !exclude(n.idx) {
		cand := index.Neighbor{Index: n.idx, Distance: d}
		if h.Len() < k {
			heap.Push(h, cand)
		} else if worse((*h)[0], cand) {
			heap.Pop(h)
			heap.Push(h, cand)
		}
	}
	if n.left == nil && n.right == nil {
		return
	}
	// Lower bounds from the triangle inequality: left holds points within
	// thr of the vantage point, right holds points at least thr away.
	// Prune only on a strictly larger bound so boundary ties stay visible
	// to the index-order resolution.
	near, far := n.left, n.right
	nearBound, farBound := d-n.thr, n.thr-d
	if d > n.thr {
		near, far = n.right, n.left
		nearBound, farBound = n.thr-d, d-n.thr
	}
	if x.admissible(h, k, nearBound) {
		x.search(near, query, k, exclude, h)
	}
	if x.admissible(h, k, farBound) {
		x.search(far, query, k, exclude, h)
	}
}

func (x *Index) admissible(h *neighbors, k int, bound float64) bool {
	if h.Len() < k {
		return true
	}
	return bound <= (*h)[0].Distance
}

// MarshalBinary serializes the point matrix using the brute-force encoding.
func (x *Index) MarshalBinary() ([]byte, error) {
	b := &bruteforce.Index{Metric: x.Metric}
	if err := b.Build(x.points); err != nil {
		return nil, err
	}
	return b.MarshalBinary()
}

// UnmarshalBinary restores the matrix and rebuilds the tree.
func (x *Index) UnmarshalBinary(data []byte) error {
	m, points, err := bruteforce.DecodePoints(data)
	if err != nil {
		return err
	}
	x.Metric = m
	return x.Build(points)
}

var _ index.Index = (*Index)(nil)
