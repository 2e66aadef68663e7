package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EPinzuti/IDTxl/engine"
	"github.com/EPinzuti/IDTxl/knn"
	"github.com/EPinzuti/IDTxl/metric"
	"github.com/EPinzuti/IDTxl/pointset"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestStore_PointSetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ps, err := pointset.New([][]float32{{0, 0}, {1, 0}, {0, 1}, {5, 5}})
	require.NoError(t, err)
	require.NoError(t, store.SavePointSet(ctx, "basic", ps))

	loaded, err := store.LoadPointSet(ctx, "basic")
	require.NoError(t, err)
	require.Equal(t, ps.Len(), loaded.Len())
	require.Equal(t, ps.Dim(), loaded.Dim())
	for i := 0; i < ps.Len(); i++ {
		assert.Equal(t, ps.At(i), loaded.At(i))
	}

	names, err := store.ListPointSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"basic"}, names)
}

func TestStore_RebuildAndLoadNeighbours(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ps, err := pointset.New([][]float32{{0, 0}, {1, 0}, {0, 1}, {5, 5}})
	require.NoError(t, err)
	require.NoError(t, store.SavePointSet(ctx, "basic", ps))

	rows, err := store.Rebuild(ctx, "basic", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, rows)

	f, err := store.LoadNeighbours(ctx, "basic", 2, metric.Chebyshev, 0)
	require.NoError(t, err)
	want, err := knn.Find(ps, 2)
	require.NoError(t, err)
	assert.Equal(t, want.Indices, f.Indices)
	assert.Equal(t, 0, f.IndexBase)
}

func TestStore_OneBasedPersistence(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ps, err := pointset.New([][]float32{{0, 0}, {1, 0}, {0, 1}, {5, 5}})
	require.NoError(t, err)
	require.NoError(t, store.SavePointSet(ctx, "basic", ps))

	_, err = store.Rebuild(ctx, "basic", 2, 1)
	require.NoError(t, err)

	f, err := store.LoadNeighbours(ctx, "basic", 2, metric.Chebyshev, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, f.IndexBase)
	// Stored 1-based: the tie between points 1 and 2 appears as 2, 3.
	assert.Equal(t, []int{2, 3}, f.Indices[0])

	want, err := knn.Find(ps, 2)
	require.NoError(t, err)
	assert.Equal(t, want.Indices, f.ZeroBased())
}

func TestStore_RebuildWithOptions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ps, err := pointset.New([][]float32{{0}, {10}, {20}, {30}, {40}})
	require.NoError(t, err)
	require.NoError(t, store.SavePointSet(ctx, "line", ps))

	_, err = store.Rebuild(ctx, "line", 1, 0, knn.WithTheiler(1), knn.WithWorkers(2))
	require.NoError(t, err)

	f, err := store.LoadNeighbours(ctx, "line", 1, metric.Chebyshev, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2}, {3}, {0}, {1}, {2}}, f.Indices)
}

func TestStore_SaveNeighbours_Validation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SaveNeighbours(ctx, Fixture{SetName: "x", K: 1, Metric: metric.Chebyshev, IndexBase: 2})
	require.Error(t, err)

	err = store.SaveNeighbours(ctx, Fixture{K: 1, Metric: metric.Chebyshev})
	require.Error(t, err)
}
