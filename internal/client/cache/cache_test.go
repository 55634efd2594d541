package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bcp-audit/internal/client/storage/boltdb"
	"github.com/iudanet/bcp-audit/internal/models"
)

// fakeClock управляемое время для тестов TTL
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(t *testing.T) (*Cache, *fakeClock) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clock := &fakeClock{t: time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)}
	return New(store, WithClock(clock.Now)), clock
}

func TestCache_RoundTripWithinTTL(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(t)

	departments := []models.Department{
		{ID: 1, Name: "Ward 4A", Prepared: true, LastUpdated: clock.Now()},
		{ID: 21, Name: "Theatres", Prepared: false, LastUpdated: clock.Now()},
	}
	require.NoError(t, c.Set(ctx, "departments", departments))

	clock.Advance(DefaultTTL - time.Second)

	var got []models.Department
	require.True(t, c.Get(ctx, "departments", &got))
	require.Len(t, got, 2)
	assert.Equal(t, departments[0].Name, got[0].Name)
	assert.True(t, departments[1].LastUpdated.Equal(got[1].LastUpdated))
}

func TestCache_ExpiredAfterTTL(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(t)

	require.NoError(t, c.Set(ctx, "compliance", models.ComplianceSummary{Score: 32, MaxScore: 40}))

	// Граница: now - timestamp == TTL уже не свежая
	clock.Advance(DefaultTTL)

	var got models.ComplianceSummary
	assert.False(t, c.Get(ctx, "compliance", &got))
}

func TestCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t)

	var got []models.FormOrLabel
	assert.False(t, c.Get(context.Background(), "formsAndLabels", &got))
	assert.Nil(t, got)
}

func TestCache_GetIdempotent(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.Set(ctx, "downtimeEvents", []models.DowntimeEvent{{ID: 1, Department: "Ward 4A", Duration: "2 hours"}}))

	var first, second []models.DowntimeEvent
	require.True(t, c.Get(ctx, "downtimeEvents", &first))
	require.True(t, c.Get(ctx, "downtimeEvents", &second))
	assert.Equal(t, first, second)
}

func TestCache_SetOverwritesAndRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", 1))
	clock.Advance(4 * time.Minute)
	require.NoError(t, c.Set(ctx, "k", 2))
	clock.Advance(4 * time.Minute)

	var got int
	require.True(t, c.Get(ctx, "k", &got))
	assert.Equal(t, 2, got)
}

func TestCache_UnreadableEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", "text"))

	var got []models.Department
	assert.False(t, c.Get(ctx, "k", &got))
}

func TestCache_SetUnmarshalable(t *testing.T) {
	c, _ := newTestCache(t)
	assert.Error(t, c.Set(context.Background(), "k", make(chan int)))
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	for _, key := range []string{"dashboard:departments", "dashboard:compliance", "trend:6"} {
		require.NoError(t, c.Set(ctx, key, key))
	}

	n, err := c.Clear(ctx, "dashboard:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var s string
	assert.False(t, c.Get(ctx, "dashboard:departments", &s))
	assert.True(t, c.Get(ctx, "trend:6", &s))

	n, err = c.Clear(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, c.Get(ctx, "trend:6", &s))
}

func TestCache_PurgeAndStats(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(t)

	require.NoError(t, c.Set(ctx, "old", 1))
	clock.Advance(3 * time.Minute)
	require.NoError(t, c.Set(ctx, "new", 2))
	clock.Advance(3 * time.Minute)

	st, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Fresh: 1}, st)

	n, err := c.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	st, err = c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, Fresh: 1}, st)
}

func TestCache_WithTTL(t *testing.T) {
	c := New(nil, WithTTL(time.Minute), WithTTL(0))
	assert.Equal(t, time.Minute, c.TTL())
}
