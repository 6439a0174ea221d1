package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Wessamoreira/ambiente-precificador/internal/analytics"
	"github.com/Wessamoreira/ambiente-precificador/internal/apiclient"
	"github.com/Wessamoreira/ambiente-precificador/internal/service"
	"github.com/Wessamoreira/ambiente-precificador/internal/session"
	"github.com/Wessamoreira/ambiente-precificador/internal/store"
)

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"scope":         service.ScopeFromContext(r.Context()),
		"theme":         a.session.Theme(),
	})
}

func (a *API) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	theme, err := session.ParseTheme(req.Theme)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.session.SetTheme(r.Context(), theme); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"theme": theme})
}

func (a *API) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := a.session.ToggleTheme(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"theme": theme})
}

func (a *API) handleCustomerAnalytics(w http.ResponseWriter, r *http.Request) {
	rows, err := a.service.CustomerAnalytics(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (a *API) handleCustomerAnalyticsByID(w http.ResponseWriter, r *http.Request) {
	row, err := a.service.CustomerAnalyticsByID(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *API) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.service.DashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (a *API) handleSalesChart(w http.ResponseWriter, r *http.Request) {
	days := parsePositiveLimit(r.URL.Query().Get("days"), analytics.DefaultChartDays, analytics.MaxChartDays)
	points, err := a.service.SalesChart(r.Context(), days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Refresh(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *API) handleStockAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := a.service.StockAlerts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, errors.New("not found"))
	case errors.Is(err, apiclient.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, errors.New("session rejected by upstream"))
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
