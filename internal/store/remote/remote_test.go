package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wessamoreira/ambiente-precificador/internal/apiclient"
	"github.com/Wessamoreira/ambiente-precificador/internal/store"
)

func newRemote(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(apiclient.New(srv.URL))
}

func TestListSalesEmptyBodyYieldsEmptySlice(t *testing.T) {
	s := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	})

	sales, err := s.ListSales(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestErrorsAreTranslated(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusNotFound)
	s := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	})
	ctx := context.Background()

	_, err := s.DashboardMetrics(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, err, apiclient.ErrNotFound)

	status.Store(http.StatusBadGateway)
	_, err = s.ListLowStock(ctx)
	assert.ErrorIs(t, err, store.ErrUnavailable)

	status.Store(http.StatusUnauthorized)
	_, err = s.ListSales(ctx)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
	assert.False(t, errors.Is(err, store.ErrUnavailable))
}

func TestCancelledContextPassesThrough(t *testing.T) {
	s := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListSales(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, store.ErrUnavailable))
}
