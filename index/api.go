package index

// Neighbor describes a single kNN match: the 0-based position of the point
// in the indexed matrix and its distance from the query.
type Neighbor struct {
	Index    int
	Distance float64
}

// ExcludeFunc reports whether the point at position i must be skipped for
// the current query. Self-exclusion and Theiler windows are expressed this
// way so the index stays oblivious to query identity.
type ExcludeFunc func(i int) bool

// Index is an exact neighbour index over an ordered point matrix.
//
// Query returns up to k neighbours ordered by (distance ascending, index
// ascending); equidistant candidates always resolve to the lower index. An
// implementation that cannot honor this ordering exactly must not implement
// the interface.
type Index interface {
	// Build constructs the index from the given point matrix. All vectors
	// must share one dimension; the matrix must not be mutated afterwards.
	Build(points [][]float32) error

	// Query runs an exact kNN search for the query vector, skipping points
	// for which exclude returns true. A nil exclude admits every point.
	Query(query []float32, k int, exclude ExcludeFunc) ([]Neighbor, error)

	// MarshalBinary serializes the index into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}
