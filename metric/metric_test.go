package metric

import (
	"math"
	"testing"
)

func TestChebyshevDistance(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, -4}

	d, err := ChebyshevDistance(a, b)
	if err != nil {
		t.Fatalf("ChebyshevDistance failed: %v", err)
	}
	if d != 4 {
		t.Fatalf("ChebyshevDistance((0,0),(3,-4)) = %v, want 4", d)
	}

	if _, err := ChebyshevDistance(a, []float32{1}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	if _, err := ChebyshevDistance(nil, nil); err == nil {
		t.Fatal("expected empty-vector error")
	}
}

func TestEuclideanDistance(t *testing.T) {
	d, err := EuclideanDistance([]float32{0, 0}, []float32{3, 4})
	if err != nil {
		t.Fatalf("EuclideanDistance failed: %v", err)
	}
	if math.Abs(d-5) > 1e-6 {
		t.Fatalf("EuclideanDistance((0,0),(3,4)) = %v, want 5", d)
	}
}

func TestCosineDistance(t *testing.T) {
	// Orthogonal vectors -> distance 1.
	d, err := CosineDistance([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("CosineDistance failed: %v", err)
	}
	if math.Abs(d-1) > 1e-6 {
		t.Fatalf("CosineDistance(orthogonal) = %v, want 1", d)
	}

	// Parallel vectors of different magnitude -> distance 0.
	d, err = CosineDistance([]float32{1, 2}, []float32{2, 4})
	if err != nil {
		t.Fatalf("CosineDistance failed: %v", err)
	}
	if math.Abs(d) > 1e-6 {
		t.Fatalf("CosineDistance(parallel) = %v, want 0", d)
	}
}

func TestMetric_Func(t *testing.T) {
	if Chebyshev.Func() == nil || Euclidean.Func() == nil || Cosine.Func() == nil {
		t.Fatal("known metrics must resolve")
	}
	if Metric("manhattan").Func() != nil {
		t.Fatal("unknown metric must resolve to nil")
	}
}

func TestMetric_Triangular(t *testing.T) {
	if !Chebyshev.Triangular() || !Euclidean.Triangular() {
		t.Fatal("Chebyshev and Euclidean satisfy the triangle inequality")
	}
	if Cosine.Triangular() {
		t.Fatal("Cosine does not satisfy the triangle inequality")
	}
}
