package fixture

import "testing"

func TestEncodeDecodeMatrix(t *testing.T) {
	points := [][]float32{{0, 1.5}, {-2.25, 3.75}}

	b, err := EncodeMatrix(points)
	if err != nil {
		t.Fatalf("EncodeMatrix failed: %v", err)
	}
	decoded, err := DecodeMatrix(b, 2)
	if err != nil {
		t.Fatalf("DecodeMatrix failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d rows, want 2", len(decoded))
	}
	for i := range points {
		for d := range points[i] {
			if decoded[i][d] != points[i][d] {
				t.Fatalf("decoded[%d][%d] = %v, want %v", i, d, decoded[i][d], points[i][d])
			}
		}
	}

	if _, err := DecodeMatrix(b, 3); err == nil {
		t.Fatal("expected length mismatch error for wrong dimension")
	}
}

func TestEncodeIndexMatrix_RejectsRagged(t *testing.T) {
	if _, _, err := EncodeIndexMatrix([][]int{{1, 2}, {3}}); err == nil {
		t.Fatal("expected ragged matrix error")
	}
}

func TestEncodeDecodeIndexMatrix(t *testing.T) {
	rows := [][]int{{1, 2}, {0, 3}, {2, 1}}

	b, cols, err := EncodeIndexMatrix(rows)
	if err != nil {
		t.Fatalf("EncodeIndexMatrix failed: %v", err)
	}
	if cols != 2 {
		t.Fatalf("cols = %d, want 2", cols)
	}
	decoded, err := DecodeIndexMatrix(b, cols)
	if err != nil {
		t.Fatalf("DecodeIndexMatrix failed: %v", err)
	}
	for i := range rows {
		for j := range rows[i] {
			if decoded[i][j] != rows[i][j] {
				t.Fatalf("decoded[%d][%d] = %d, want %d", i, j, decoded[i][j], rows[i][j])
			}
		}
	}
}
