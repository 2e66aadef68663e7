package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/EPinzuti/IDTxl/index"
	"github.com/EPinzuti/IDTxl/metric"
)

// Index is a brute-force exact neighbour index. The zero value indexes under
// the Chebyshev metric; set Metric before Build to change it.
type Index struct {
	Metric metric.Metric

	points [][]float32
	dim    int
	dist   metric.DistanceFunc
}

// Build loads the point matrix and resolves the distance function.
func (i *Index) Build(points [][]float32) error {
	if i.Metric == "" {
		i.Metric = metric.Chebyshev
	}
	fn := i.Metric.Func()
	if fn == nil {
		return fmt.Errorf("bruteforce: unknown metric %q", i.Metric)
	}
	if len(points) == 0 {
		i.points, i.dim, i.dist = nil, 0, fn
		return nil
	}
	dim := len(points[0])
	if dim == 0 {
		return fmt.Errorf("bruteforce: zero-dimensional points")
	}
	for j := range points {
		if len(points[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(points[j]), dim)
		}
	}
	i.points = points
	i.dim = dim
	i.dist = fn
	return nil
}

// Query scans all points and returns the k nearest admissible ones ordered
// by (distance ascending, index ascending).
func (i *Index) Query(query []float32, k int, exclude index.ExcludeFunc) ([]index.Neighbor, error) {
	if i.dim == 0 || len(i.points) == 0 {
		return nil, nil
	}
	if len(query) != i.dim {
		return nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	if k <= 0 {
		return nil, fmt.Errorf("bruteforce: k must be positive, got %d", k)
	}
	cands := make([]index.Neighbor, 0, len(i.points))
	for j := range i.points {
		if exclude != nil && exclude(j) {
			continue
		}
		cands = append(cands, index.Neighbor{Index: j, Distance: i.dist(query, i.points[j])})
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].Distance != cands[b].Distance {
			return cands[a].Distance < cands[b].Distance
		}
		return cands[a].Index < cands[b].Index
	})
	if k > len(cands) {
		k = len(cands)
	}
	return cands[:k], nil
}

// MarshalBinary stores: metricLen(uint32), metric bytes, dim(uint32),
// n(uint32), then n*dim little-endian float32 values.
func (i *Index) MarshalBinary() ([]byte, error) {
	m := i.Metric
	if m == "" {
		m = metric.Chebyshev
	}
	size := 4 + len(m) + 8 + 4*i.dim*len(i.points)
	out := make([]byte, 0, size)
	putU32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		out = append(out, b[:]...)
	}
	putU32(uint32(len(m)))
	out = append(out, []byte(m)...)
	putU32(uint32(i.dim))
	putU32(uint32(len(i.points)))
	for _, vec := range i.points {
		for _, v := range vec {
			putU32(math.Float32bits(v))
		}
	}
	return out, nil
}

// UnmarshalBinary restores the index from bytes produced by MarshalBinary.
func (i *Index) UnmarshalBinary(data []byte) error {
	m, points, err := DecodePoints(data)
	if err != nil {
		return err
	}
	i.Metric = m
	return i.Build(points)
}

// DecodePoints parses the binary point-matrix format shared by the index
// implementations and returns the metric name and vectors.
func DecodePoints(data []byte) (metric.Metric, [][]float32, error) {
	off := 0
	getU32 := func() (uint32, error) {
		if off+4 > len(data) {
			return 0, errors.New("bruteforce: truncated data")
		}
		v := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		return v, nil
	}
	mlen, err := getU32()
	if err != nil {
		return "", nil, err
	}
	if off+int(mlen) > len(data) {
		return "", nil, errors.New("bruteforce: truncated metric name")
	}
	m := metric.Metric(data[off : off+int(mlen)])
	off += int(mlen)
	dimU, err := getU32()
	if err != nil {
		return "", nil, err
	}
	nU, err := getU32()
	if err != nil {
		return "", nil, err
	}
	dim, n := int(dimU), int(nU)
	if n > 0 && dim == 0 {
		return "", nil, errors.New("bruteforce: zero dim with non-zero count")
	}
	// Bound dim and n against the payload before multiplying so oversized
	// headers cannot overflow the check or drive a huge allocation.
	if n > 0 {
		payload := (len(data) - off) / 4
		if dim < 0 || dim > payload || n > payload/dim {
			return "", nil, errors.New("bruteforce: truncated vectors")
		}
	}
	points := make([][]float32, n)
	for idx := 0; idx < n; idx++ {
		vec := make([]float32, dim)
		for d := 0; d < dim; d++ {
			vec[d] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
			off += 4
		}
		points[idx] = vec
	}
	return m, points, nil
}

var _ index.Index = (*Index)(nil)
