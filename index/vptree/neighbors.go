package vptree

import "github.com/EPinzuti/IDTxl/index"

// neighbors is a bounded max-heap ordered by (distance descending, index
// descending), so the root is always the candidate to evict next. The
// lexicographic order is what preserves the ascending-index tie-break when
// the heap is full and an equidistant candidate arrives.
type neighbors []index.Neighbor

func (h neighbors) Len() int { return len(h) }

func (h neighbors) Less(i, j int) bool {
	if h[i].Distance != h[j].Distance {
		return h[i].Distance > h[j].Distance
	}
	return h[i].Index > h[j].Index
}

func (h neighbors) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *neighbors) Push(x interface{}) {
	*h = append(*h, x.(index.Neighbor))
}

func (h *neighbors) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// worse reports whether candidate a ranks after b in the result order.
func worse(a, b index.Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.Index > b.Index
}
