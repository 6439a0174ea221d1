package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/Wessamoreira/ambiente-precificador/internal/analytics"
	"github.com/Wessamoreira/ambiente-precificador/internal/cache"
	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
	"github.com/Wessamoreira/ambiente-precificador/internal/store"
)

var log = logging.MustGetLogger("log")

const DefaultScope = "default"

type scopeContextKey struct{}

// WithScope tags ctx with the account whose snapshots should be cached.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

func ScopeFromContext(ctx context.Context) string {
	scope, ok := ctx.Value(scopeContextKey{}).(string)
	scope = strings.TrimSpace(scope)
	if !ok || scope == "" {
		return DefaultScope
	}
	return scope
}

type Service struct {
	repo      store.Repository
	snapshots cache.SnapshotCache
	ttl       time.Duration
	now       func() time.Time
}

func New(repo store.Repository, snapshots cache.SnapshotCache, ttl time.Duration) *Service {
	if snapshots == nil {
		snapshots = cache.NoopSnapshotCache{}
	}
	if ttl < 0 {
		ttl = 0
	}

	return &Service{
		repo:      repo,
		snapshots: snapshots,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *Service) CustomerAnalytics(ctx context.Context) ([]domain.CustomerAnalytics, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeCustomerAnalytics(sales), nil
}

func (s *Service) CustomerAnalyticsByID(ctx context.Context, customerID string) (domain.CustomerAnalytics, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return domain.CustomerAnalytics{}, store.ErrNotFound
	}

	sales, err := s.sales(ctx)
	if err != nil {
		return domain.CustomerAnalytics{}, err
	}
	found := analytics.ComputeCustomerAnalyticsByID(sales, customerID)
	if found == nil {
		return domain.CustomerAnalytics{}, fmt.Errorf("customer %s: %w", customerID, store.ErrNotFound)
	}
	return *found, nil
}

// DashboardStats fetches metrics and sales concurrently. Either failure
// cancels the other fetch.
func (s *Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var (
		metrics domain.DashboardMetrics
		sales   []domain.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metrics, err = s.metrics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.sales(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}

	return analytics.ComputeDashboardStats(metrics, sales), nil
}

func (s *Service) SalesChart(ctx context.Context, days int) ([]domain.SalesChartPoint, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeSalesChart(sales, days, s.now()), nil
}

// StockAlerts is never served from the snapshot cache.
func (s *Service) StockAlerts(ctx context.Context) (domain.StockAlerts, error) {
	items, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return domain.StockAlerts{}, err
	}
	return analytics.SplitStockAlerts(items), nil
}

// Refresh drops the cached snapshots of the caller's scope.
func (s *Service) Refresh(ctx context.Context) error {
	scope := ScopeFromContext(ctx)
	if err := s.snapshots.Invalidate(ctx, scope); err != nil {
		return fmt.Errorf("invalidate snapshots: %w", err)
	}
	log.Infof("[service] snapshots refreshed scope=%s", scope)
	return nil
}

func (s *Service) sales(ctx context.Context) ([]domain.Sale, error) {
	scope := ScopeFromContext(ctx)
	cached, ok, err := s.snapshots.GetSales(ctx, scope)
	if err != nil {
		log.Warningf("[service] sales cache read failed scope=%s: %v", scope, err)
	} else if ok {
		return cached, nil
	}

	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.snapshots.SetSales(ctx, scope, sales, s.ttl); err != nil {
		log.Warningf("[service] sales cache write failed scope=%s: %v", scope, err)
	}
	return sales, nil
}

func (s *Service) metrics(ctx context.Context) (domain.DashboardMetrics, error) {
	scope := ScopeFromContext(ctx)
	cached, ok, err := s.snapshots.GetMetrics(ctx, scope)
	if err != nil {
		log.Warningf("[service] metrics cache read failed scope=%s: %v", scope, err)
	} else if ok {
		return *cached, nil
	}

	metrics, err := s.repo.DashboardMetrics(ctx)
	if err != nil {
		return domain.DashboardMetrics{}, err
	}
	if err := s.snapshots.SetMetrics(ctx, scope, metrics, s.ttl); err != nil {
		log.Warningf("[service] metrics cache write failed scope=%s: %v", scope, err)
	}
	return metrics, nil
}
