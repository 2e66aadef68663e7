package fixture

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/EPinzuti/IDTxl/knn"
	"github.com/EPinzuti/IDTxl/metric"
	"github.com/EPinzuti/IDTxl/pointset"
)

// Fixture is one persisted neighbour matrix together with the query
// parameters that produced it. Indices holds one row per query point in the
// base indicated by IndexBase (0 or 1).
type Fixture struct {
	SetName   string
	K         int
	Metric    metric.Metric
	TheilerT  int
	IndexBase int
	Indices   [][]int
}

// ZeroBased returns the neighbour matrix converted to 0-based indices.
func (f Fixture) ZeroBased() [][]int {
	if f.IndexBase == 0 {
		return f.Indices
	}
	out := make([][]int, len(f.Indices))
	for i, row := range f.Indices {
		r := make([]int, len(row))
		for j, v := range row {
			r[j] = v - f.IndexBase
		}
		out[i] = r
	}
	return out
}

// Store persists point sets and neighbour fixtures in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a fixture store over the provided database, ensuring the
// fixture schema exists.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("fixture: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SavePointSet inserts or replaces a named point set.
func (s *Store) SavePointSet(ctx context.Context, name string, ps *pointset.PointSet) error {
	if name == "" {
		return fmt.Errorf("fixture: point set name is empty")
	}
	if ps == nil || ps.Len() == 0 {
		return fmt.Errorf("fixture: point set %q is empty", name)
	}
	blob, err := EncodeMatrix(ps.Points())
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO point_sets(name, dim, n, points) VALUES(?, ?, ?, ?)`,
		name, ps.Dim(), ps.Len(), blob)
	return err
}

// LoadPointSet retrieves a named point set.
func (s *Store) LoadPointSet(ctx context.Context, name string) (*pointset.PointSet, error) {
	row := s.db.QueryRowContext(ctx, `SELECT dim, n, points FROM point_sets WHERE name = ?`, name)
	var dim, n int
	var blob []byte
	if err := row.Scan(&dim, &n, &blob); err != nil {
		return nil, err
	}
	points, err := DecodeMatrix(blob, dim)
	if err != nil {
		return nil, err
	}
	if len(points) != n {
		return nil, fmt.Errorf("fixture: point set %q has %d rows, header says %d", name, len(points), n)
	}
	return pointset.New(points)
}

// ListPointSets returns the names of all stored point sets in name order.
func (s *Store) ListPointSets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM point_sets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveNeighbours inserts or replaces a neighbour fixture. The matrix must be
// rectangular and already in the base indicated by f.IndexBase.
func (s *Store) SaveNeighbours(ctx context.Context, f Fixture) error {
	if f.SetName == "" {
		return fmt.Errorf("fixture: set name is empty")
	}
	if f.IndexBase != 0 && f.IndexBase != 1 {
		return fmt.Errorf("fixture: index base must be 0 or 1, got %d", f.IndexBase)
	}
	blob, cols, err := EncodeIndexMatrix(f.Indices)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO neighbour_fixtures(set_name, k, metric, theiler, index_base, cols, indices)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		f.SetName, f.K, string(f.Metric), f.TheilerT, f.IndexBase, cols, blob)
	return err
}

// LoadNeighbours retrieves the neighbour fixture for the given query
// parameters, with indices in the base they were stored in.
func (s *Store) LoadNeighbours(ctx context.Context, setName string, k int, m metric.Metric, theiler int) (Fixture, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT index_base, cols, indices FROM neighbour_fixtures
		 WHERE set_name = ? AND k = ? AND metric = ? AND theiler = ?`,
		setName, k, string(m), theiler)
	f := Fixture{SetName: setName, K: k, Metric: m, TheilerT: theiler}
	var cols int
	var blob []byte
	if err := row.Scan(&f.IndexBase, &cols, &blob); err != nil {
		return Fixture{}, err
	}
	indices, err := DecodeIndexMatrix(blob, cols)
	if err != nil {
		return Fixture{}, err
	}
	f.Indices = indices
	return f, nil
}

// Rebuild recomputes the neighbour fixture for a stored point set and
// persists it, returning the number of query points covered. It is the
// recovery path when fixture parameters change or a fixture BLOB is suspect.
func (s *Store) Rebuild(ctx context.Context, setName string, k int, indexBase int, opts ...knn.Option) (int, error) {
	ps, err := s.LoadPointSet(ctx, setName)
	if err != nil {
		return 0, err
	}
	res, err := knn.Find(ps, k, opts...)
	if err != nil {
		return 0, err
	}
	o := resolveOptions(opts)
	indices := res.Indices
	if indexBase != 0 {
		shifted := make([][]int, len(indices))
		for i, row := range indices {
			r := make([]int, len(row))
			for j, v := range row {
				r[j] = v + indexBase
			}
			shifted[i] = r
		}
		indices = shifted
	}
	f := Fixture{
		SetName:   setName,
		K:         k,
		Metric:    o.Metric,
		TheilerT:  o.TheilerT,
		IndexBase: indexBase,
		Indices:   indices,
	}
	if err := s.SaveNeighbours(ctx, f); err != nil {
		return 0, err
	}
	return len(indices), nil
}

func resolveOptions(opts []knn.Option) knn.Options {
	o := knn.Options{Metric: metric.Chebyshev}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
