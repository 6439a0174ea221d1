package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

const DefaultTTL = 2 * time.Minute

// SnapshotCache keeps recently fetched sales and metrics per scope, typically
// one scope per signed-in account.
type SnapshotCache interface {
	GetSales(ctx context.Context, scope string) ([]domain.Sale, bool, error)
	SetSales(ctx context.Context, scope string, sales []domain.Sale, ttl time.Duration) error
	GetMetrics(ctx context.Context, scope string) (*domain.DashboardMetrics, bool, error)
	SetMetrics(ctx context.Context, scope string, metrics domain.DashboardMetrics, ttl time.Duration) error
	Invalidate(ctx context.Context, scope string) error
}

type NoopSnapshotCache struct{}

func (NoopSnapshotCache) GetSales(_ context.Context, _ string) ([]domain.Sale, bool, error) {
	return nil, false, nil
}

func (NoopSnapshotCache) SetSales(_ context.Context, _ string, _ []domain.Sale, _ time.Duration) error {
	return nil
}

func (NoopSnapshotCache) GetMetrics(_ context.Context, _ string) (*domain.DashboardMetrics, bool, error) {
	return nil, false, nil
}

func (NoopSnapshotCache) SetMetrics(_ context.Context, _ string, _ domain.DashboardMetrics, _ time.Duration) error {
	return nil
}

func (NoopSnapshotCache) Invalidate(_ context.Context, _ string) error {
	return nil
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemorySnapshotCache is an in-process cache. Expired entries are dropped
// lazily on read.
type MemorySnapshotCache struct {
	mu      sync.Mutex
	now     func() time.Time
	sales   map[string]entry[[]domain.Sale]
	metrics map[string]entry[domain.DashboardMetrics]
}

func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{
		now:     time.Now,
		sales:   make(map[string]entry[[]domain.Sale]),
		metrics: make(map[string]entry[domain.DashboardMetrics]),
	}
}

func (c *MemorySnapshotCache) GetSales(_ context.Context, scope string) ([]domain.Sale, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.sales[scope]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.sales, scope)
		return nil, false, nil
	}
	return cloneSales(e.value), true, nil
}

func (c *MemorySnapshotCache) SetSales(_ context.Context, scope string, sales []domain.Sale, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	c.sales[scope] = entry[[]domain.Sale]{value: cloneSales(sales), expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemorySnapshotCache) GetMetrics(_ context.Context, scope string) (*domain.DashboardMetrics, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.metrics[scope]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.metrics, scope)
		return nil, false, nil
	}
	metrics := e.value
	return &metrics, true, nil
}

func (c *MemorySnapshotCache) SetMetrics(_ context.Context, scope string, metrics domain.DashboardMetrics, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	c.metrics[scope] = entry[domain.DashboardMetrics]{value: metrics, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemorySnapshotCache) Invalidate(_ context.Context, scope string) error {
	c.mu.Lock()
	delete(c.sales, scope)
	delete(c.metrics, scope)
	c.mu.Unlock()
	return nil
}

func cloneSales(sales []domain.Sale) []domain.Sale {
	if sales == nil {
		return nil
	}
	out := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		items := make([]domain.SaleItem, len(sale.Items))
		copy(items, sale.Items)
		sale.Items = items
		out[i] = sale
	}
	return out
}
