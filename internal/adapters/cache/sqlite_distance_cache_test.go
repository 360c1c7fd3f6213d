package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"charter-quote-service/internal/ports"
)

func newTestSqliteCache(t *testing.T) *SqliteDistanceCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c := NewSqliteDistanceCache(db)
	require.NoError(t, c.InitSchema(context.Background()))
	return c
}

func TestSqliteDistanceCachePutGet(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	want := ports.DistanceResult{
		DistanceMeters:  16093,
		DurationSeconds: 1200,
		DistanceText:    "10.0 mi",
		DurationText:    "20 mins",
	}

	require.NoError(t, c.Put(ctx, "A", "B", want))

	got, hit, err := c.Get(ctx, "A", "B")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	_, hit, err = c.Get(ctx, "A", "C")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestSqliteDistanceCachePutReplaces(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "A", "B", ports.DistanceResult{DistanceMeters: 1, DurationSeconds: 1}))
	require.NoError(t, c.Put(ctx, "A", "B", ports.DistanceResult{DistanceMeters: 2, DurationSeconds: 2}))

	got, hit, err := c.Get(ctx, "A", "B")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 2, got.DistanceMeters)
}

func TestSqliteDistanceCacheNilDB(t *testing.T) {
	c := &SqliteDistanceCache{}

	_, _, err := c.Get(context.Background(), "A", "B")
	assert.Error(t, err)
	assert.Error(t, c.Put(context.Background(), "A", "B", ports.DistanceResult{}))
}
