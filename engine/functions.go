package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// RegisterDistanceFunctions registers knn_chebyshev and knn_l2 with the
// driver so they are available on new connections opened after this call.
// Both take two point BLOBs (little-endian float32 sequences) and return the
// distance as a float64.
// Note: existing open connections will not see new functions.
func RegisterDistanceFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("knn_chebyshev", 2, knnChebyshevImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("knn_l2", 2, knnL2Impl)
	return nil
}

func asPoint(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodePoint(v)
	default:
		return nil, fmt.Errorf("knn: unsupported argument type %T for point; want BLOB", arg)
	}
}

func knnChebyshevImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := pointArgs("knn_chebyshev", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("knn_chebyshev: dim mismatch %d vs %d", len(a), len(b))
	}
	var max float64
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > max {
			max = d
		}
	}
	return max, nil
}

func knnL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := pointArgs("knn_l2", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("knn_l2: dim mismatch %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

func pointArgs(fn string, args []driver.Value) ([]float32, []float32, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", fn, len(args))
	}
	a, err := asPoint(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asPoint(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Local minimal decoder to avoid an import cycle with the fixture package.
func decodePoint(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("knn: invalid point blob length %d", len(b))
	}
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
