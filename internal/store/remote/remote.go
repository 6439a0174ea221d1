// Package remote reads dashboard data from the PrecificaPro API.
package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wessamoreira/ambiente-precificador/internal/apiclient"
	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
	"github.com/Wessamoreira/ambiente-precificador/internal/store"
)

type Store struct {
	client *apiclient.Client
}

func New(client *apiclient.Client) *Store {
	return &Store{client: client}
}

func (s *Store) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.client.ListSales(ctx)
	if err != nil {
		return nil, translate(err)
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	return sales, nil
}

func (s *Store) DashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	metrics, err := s.client.DashboardMetrics(ctx)
	if err != nil {
		return domain.DashboardMetrics{}, translate(err)
	}
	return metrics, nil
}

func (s *Store) ListLowStock(ctx context.Context) ([]domain.Inventory, error) {
	items, err := s.client.ListLowStock(ctx)
	if err != nil {
		return nil, translate(err)
	}
	if items == nil {
		items = []domain.Inventory{}
	}
	return items, nil
}

// translate maps API failures onto store errors. Authorization failures and
// cancellations pass through untouched so callers can react to them.
func translate(err error) error {
	switch {
	case errors.Is(err, apiclient.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	case errors.Is(err, apiclient.ErrUnauthorized), errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
}
