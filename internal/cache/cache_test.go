package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

var (
	_ SnapshotCache = NoopSnapshotCache{}
	_ SnapshotCache = (*MemorySnapshotCache)(nil)
	_ SnapshotCache = (*RedisSnapshotCache)(nil)
)

type fakeClock struct{ at time.Time }

func (f *fakeClock) now() time.Time { return f.at }

func TestMemorySnapshotCacheExpires(t *testing.T) {
	clock := &fakeClock{at: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemorySnapshotCache()
	c.now = clock.now
	ctx := context.Background()

	sales := []domain.Sale{{ID: "s1", Items: []domain.SaleItem{{ProductID: "p1", Quantity: 2}}}}
	require.NoError(t, c.SetSales(ctx, "owner", sales, time.Minute))
	require.NoError(t, c.SetMetrics(ctx, "owner", domain.DashboardMetrics{TotalRevenue: decimal.NewFromInt(10)}, time.Minute))

	got, ok, err := c.GetSales(ctx, "owner")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "s1", got[0].ID)

	metrics, ok, err := c.GetMetrics(ctx, "owner")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, metrics.TotalRevenue.Equal(decimal.NewFromInt(10)))

	_, ok, _ = c.GetSales(ctx, "someone-else")
	assert.False(t, ok)

	clock.at = clock.at.Add(time.Minute)
	_, ok, _ = c.GetSales(ctx, "owner")
	assert.False(t, ok)
	_, ok, _ = c.GetMetrics(ctx, "owner")
	assert.False(t, ok)
}

func TestMemorySnapshotCacheIsolatesCallers(t *testing.T) {
	c := NewMemorySnapshotCache()
	ctx := context.Background()

	sales := []domain.Sale{{ID: "s1", Items: []domain.SaleItem{{ProductID: "p1", Quantity: 2}}}}
	require.NoError(t, c.SetSales(ctx, "owner", sales, time.Minute))
	sales[0].Items[0].Quantity = 50

	got, ok, _ := c.GetSales(ctx, "owner")
	require.True(t, ok)
	assert.Equal(t, 2, got[0].Items[0].Quantity)

	got[0].Items[0].Quantity = 70
	again, _, _ := c.GetSales(ctx, "owner")
	assert.Equal(t, 2, again[0].Items[0].Quantity)
}

func TestMemorySnapshotCacheInvalidate(t *testing.T) {
	c := NewMemorySnapshotCache()
	ctx := context.Background()

	require.NoError(t, c.SetSales(ctx, "owner", []domain.Sale{}, time.Minute))
	require.NoError(t, c.SetMetrics(ctx, "owner", domain.DashboardMetrics{}, time.Minute))
	require.NoError(t, c.Invalidate(ctx, "owner"))

	_, ok, _ := c.GetSales(ctx, "owner")
	assert.False(t, ok)
	_, ok, _ = c.GetMetrics(ctx, "owner")
	assert.False(t, ok)
}

func TestMemorySnapshotCacheIgnoresNonPositiveTTL(t *testing.T) {
	c := NewMemorySnapshotCache()
	ctx := context.Background()

	require.NoError(t, c.SetSales(ctx, "owner", []domain.Sale{{ID: "s1"}}, 0))
	_, ok, _ := c.GetSales(ctx, "owner")
	assert.False(t, ok)
}

func TestRedisSnapshotCacheReportsUnreachableServer(t *testing.T) {
	c := NewRedisSnapshotCache("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	_, ok, err := c.GetSales(ctx, "owner")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisKeysAreScoped(t *testing.T) {
	assert.Equal(t, "precificapro:snapshot:owner-1:sales", salesKey("owner-1"))
	assert.Equal(t, "precificapro:snapshot:owner-1:metrics", metricsKey("owner-1"))
}
