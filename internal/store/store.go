package store

import (
	"context"
	"errors"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("data source unavailable")
)

// Repository is the read side the dashboard aggregates over.
type Repository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	DashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error)
	// ListLowStock returns items at or below their minimum stock, including
	// items with nothing left.
	ListLowStock(ctx context.Context) ([]domain.Inventory, error)
}
