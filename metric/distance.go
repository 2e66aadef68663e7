package metric

import "fmt"

// ChebyshevDistance computes the maximum-coordinate distance between two
// vectors. It returns an error if the vectors have different lengths or are
// empty.
func ChebyshevDistance(a, b []float32) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return chebyshev(a, b), nil
}

// EuclideanDistance computes the L2 distance between two vectors. It returns
// an error if the vectors have different lengths or are empty.
func EuclideanDistance(a, b []float32) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return euclidean(a, b), nil
}

// CosineDistance computes 1 - cosine similarity. It returns an error if the
// vectors have different lengths or are empty.
func CosineDistance(a, b []float32) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return cosine(a, b), nil
}

func checkPair(a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("metric: dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return fmt.Errorf("metric: distance on empty vectors")
	}
	return nil
}
