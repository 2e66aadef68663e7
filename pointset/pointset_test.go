package pointset

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("New(nil) error = %v, want ErrInvalid", err)
	}
	if _, err := New([][]float32{{}}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("New with empty vector error = %v, want ErrInvalid", err)
	}
	if _, err := New([][]float32{{1, 2}, {3}}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("New with ragged vectors error = %v, want ErrInvalid", err)
	}

	ps, err := New([][]float32{{0, 0}, {1, 2}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ps.Len() != 2 || ps.Dim() != 2 {
		t.Fatalf("Len/Dim = %d/%d, want 2/2", ps.Len(), ps.Dim())
	}
	if got := ps.At(1); got[0] != 1 || got[1] != 2 {
		t.Fatalf("At(1) = %v, want [1 2]", got)
	}
}

func TestStandardise(t *testing.T) {
	ps, err := New([][]float32{{0, 5}, {2, 5}, {4, 5}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	std := ps.Standardise()

	// First dimension: mean 2, population std sqrt(8/3).
	want := 2.0 / math.Sqrt(8.0/3.0)
	if got := float64(std.At(2)[0]); math.Abs(got-want) > 1e-6 {
		t.Fatalf("standardised [2][0] = %v, want %v", got, want)
	}
	var sum float64
	for i := 0; i < std.Len(); i++ {
		sum += float64(std.At(i)[0])
	}
	if math.Abs(sum) > 1e-6 {
		t.Fatalf("standardised dimension 0 has mean %v, want 0", sum/3)
	}

	// Constant dimension stays centred, not scaled to NaN.
	for i := 0; i < std.Len(); i++ {
		if got := std.At(i)[1]; got != 0 {
			t.Fatalf("constant dimension standardised to %v at point %d, want 0", got, i)
		}
	}
}

func TestJitter_Replicable(t *testing.T) {
	ps, err := New([][]float32{{0, 0}, {1, 1}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a := ps.Jitter(0.5, 42)
	b := ps.Jitter(0.5, 42)
	for i := 0; i < a.Len(); i++ {
		for d := 0; d < a.Dim(); d++ {
			if a.At(i)[d] != b.At(i)[d] {
				t.Fatalf("jitter with same seed differs at [%d][%d]", i, d)
			}
			if a.At(i)[d] == ps.At(i)[d] {
				t.Fatalf("jitter left [%d][%d] unchanged", i, d)
			}
		}
	}
	if ps.Jitter(0, 42) != ps {
		t.Fatal("Jitter(0) should return the receiver")
	}
}
