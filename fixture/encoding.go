package fixture

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeMatrix encodes a point matrix into a BLOB: row-major little-endian
// IEEE 754 float32 values without a length prefix; the shape is persisted
// separately. All rows must share one dimension.
func EncodeMatrix(points [][]float32) ([]byte, error) {
	if len(points) == 0 {
		return nil, nil
	}
	dim := len(points[0])
	b := make([]byte, 0, len(points)*dim*4)
	for i, row := range points {
		if len(row) != dim {
			return nil, fmt.Errorf("fixture: row %d has dimension %d, want %d", i, len(row), dim)
		}
		for _, v := range row {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
			b = append(b, buf[:]...)
		}
	}
	return b, nil
}

// DecodeMatrix decodes a BLOB produced by EncodeMatrix back into a point
// matrix with the given dimension.
func DecodeMatrix(b []byte, dim int) ([][]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if dim <= 0 {
		return nil, fmt.Errorf("fixture: invalid matrix dimension %d", dim)
	}
	if len(b)%(4*dim) != 0 {
		return nil, fmt.Errorf("fixture: invalid matrix blob length %d for dimension %d", len(b), dim)
	}
	n := len(b) / (4 * dim)
	out := make([][]float32, n)
	off := 0
	for i := 0; i < n; i++ {
		row := make([]float32, dim)
		for d := 0; d < dim; d++ {
			row[d] = math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
			off += 4
		}
		out[i] = row
	}
	return out, nil
}

// EncodeIndexMatrix encodes a neighbour-index matrix into a BLOB of
// row-major little-endian int32 values and returns the common row width.
// Ragged matrices are rejected: fixture files hold one rectangular matrix
// per point set.
func EncodeIndexMatrix(rows [][]int) ([]byte, int, error) {
	if len(rows) == 0 {
		return nil, 0, nil
	}
	cols := len(rows[0])
	b := make([]byte, 0, len(rows)*cols*4)
	for i, row := range rows {
		if len(row) != cols {
			return nil, 0, fmt.Errorf("fixture: ragged neighbour matrix: row %d has %d entries, want %d", i, len(row), cols)
		}
		for _, v := range row {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, 0, fmt.Errorf("fixture: neighbour index %d overflows int32", v)
			}
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
			b = append(b, buf[:]...)
		}
	}
	return b, cols, nil
}

// DecodeIndexMatrix decodes a BLOB produced by EncodeIndexMatrix with the
// given row width.
func DecodeIndexMatrix(b []byte, cols int) ([][]int, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if cols <= 0 {
		return nil, fmt.Errorf("fixture: invalid index matrix width %d", cols)
	}
	if len(b)%(4*cols) != 0 {
		return nil, fmt.Errorf("fixture: invalid index matrix blob length %d for width %d", len(b), cols)
	}
	n := len(b) / (4 * cols)
	out := make([][]int, n)
	off := 0
	for i := 0; i < n; i++ {
		row := make([]int, cols)
		for c := 0; c < cols; c++ {
			row[c] = int(int32(binary.LittleEndian.Uint32(b[off:])))
			off += 4
		}
		out[i] = row
	}
	return out, nil
}
