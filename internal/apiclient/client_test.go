package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Auth        string
	RequestID   string
	ContentType string
	Body        string
}

type upstream struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (u *upstream) requests() []recordedRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]recordedRequest(nil), u.seen...)
}

// newUpstream serves handler and records every request it sees.
func newUpstream(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *upstream) {
	t.Helper()
	rec := &upstream{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.seen = append(rec.seen, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			Auth:        r.Header.Get("Authorization"),
			RequestID:   r.Header.Get("X-Request-ID"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		rec.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListSalesDecodesBodyAndSendsHeaders(t *testing.T) {
	srv, seen := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, []map[string]any{{
			"id":             "s1",
			"saleDate":       "2024-03-01T10:00:00",
			"totalAmount":    120.5,
			"totalNetProfit": 30,
			"customer":       map[string]any{"id": "c1", "name": "Ana"},
			"items":          []map[string]any{{"productId": "p1", "productName": "Widget", "quantity": 2, "unitPrice": 50}},
		}})
	})

	client := New(srv.URL+"/", WithTokenSource(staticToken("tok-123")))
	sales, err := client.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "c1", sales[0].Customer.ID)
	assert.True(t, sales[0].TotalAmount.Equal(decimal.RequireFromString("120.5")))
	assert.Equal(t, 2, sales[0].Items[0].Quantity)

	require.Len(t, seen.requests(), 1)
	req := seen.requests()[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/sales", req.Path)
	assert.Equal(t, "Bearer tok-123", req.Auth)
	assert.NotEmpty(t, req.RequestID)
}

func TestRequestWithoutTokenOmitsAuthorization(t *testing.T) {
	srv, seen := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{"totalRevenue": 10, "productCount": 3})
	})

	metrics, err := New(srv.URL, WithTokenSource(staticToken(""))).DashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.ProductCount)
	assert.Empty(t, seen.requests()[0].Auth)
}

func TestNon2xxBecomesTypedError(t *testing.T) {
	srv, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/missing":
			writeBody(w, http.StatusNotFound, map[string]any{"message": "Produto não encontrado"})
		case "/customers":
			writeBody(w, http.StatusUnauthorized, map[string]any{"error": "token expired"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}
	})
	client := New(srv.URL)

	_, err := client.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Produto não encontrado", apiErr.Message)
	assert.Equal(t, "/products/missing", apiErr.Path)

	_, err = client.ListCustomers(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = client.ListCategories(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestMissingIDFailsBeforeAnyRequest(t *testing.T) {
	srv, seen := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := New(srv.URL)

	assert.ErrorIs(t, client.DeleteProduct(context.Background(), "  "), ErrMissingID)
	_, err := client.GetProductInventory(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingID)
	_, err = client.RestoreBackup(context.Background(), 0)
	assert.ErrorIs(t, err, ErrMissingID)
	assert.Empty(t, seen.requests())
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	srv, seen := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, New(srv.URL).DeleteCustomer(context.Background(), "c 1"))
	assert.Equal(t, http.MethodDelete, seen.requests()[0].Method)
	assert.Equal(t, "/customers/c 1", seen.requests()[0].Path)
}

func TestQueryParameters(t *testing.T) {
	srv, seen := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{})
	})
	client := New(srv.URL)
	ctx := context.Background()

	_, err := client.ListStockMovements(ctx, "p1", -1, 0)
	require.NoError(t, err)
	_, err = client.UpdateMinStock(ctx, "p1", 7)
	require.NoError(t, err)
	_, err = client.ReserveStock(ctx, "p1", 3)
	require.NoError(t, err)
	_, err = client.PriceHistory(ctx, "p1", 0, 0)
	require.NoError(t, err)
	_, err = client.PriceEvolution(ctx, "p1", 0)
	require.NoError(t, err)
	_, err = client.ProductSalesChart(ctx, "p1", 7)
	require.NoError(t, err)

	got := seen.requests()
	require.Len(t, got, 6)
	assert.Equal(t, "/inventory/product/p1/movements", got[0].Path)
	assert.Equal(t, "page=0&size=20&sort=createdAt%2Cdesc", got[0].RawQuery)
	assert.Equal(t, http.MethodPut, got[1].Method)
	assert.Equal(t, "minStock=7", got[1].RawQuery)
	assert.Empty(t, got[1].Body)
	assert.Equal(t, "/inventory/product/p1/reserve", got[2].Path)
	assert.Equal(t, "quantity=3", got[2].RawQuery)
	assert.Equal(t, "page=0&size=10", got[3].RawQuery)
	assert.Equal(t, "/products/p1/price-history/evolution", got[4].Path)
	assert.Equal(t, "days=30", got[4].RawQuery)
	assert.Equal(t, "/sales/product-chart/p1", got[5].Path)
	assert.Equal(t, "days=7", got[5].RawQuery)
}

func TestPostSendsJSONBody(t *testing.T) {
	srv, seen := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeBody(w, http.StatusOK, map[string]any{"accessToken": "a", "refreshToken": "r"})
		case "/ai/ask":
			writeBody(w, http.StatusOK, map[string]any{"answer": "42"})
		default:
			writeBody(w, http.StatusOK, map[string]any{"success": true})
		}
	})
	client := New(srv.URL)
	ctx := context.Background()

	auth, err := client.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a", auth.AccessToken)

	answer, err := client.AskAI(ctx, " how much? ")
	require.NoError(t, err)
	assert.Equal(t, "42", answer)

	result, err := client.RestoreBackup(ctx, 12)
	require.NoError(t, err)
	assert.True(t, result.Success)

	got := seen.requests()
	assert.Equal(t, "application/json", got[0].ContentType)
	assert.JSONEq(t, `{"email":"a@x.com","password":"pw"}`, got[0].Body)
	assert.JSONEq(t, `{"question":"how much?"}`, got[1].Body)
	assert.Equal(t, "/api/backups/12/restore", got[2].Path)
}

func TestLoginWithoutAccessTokenFails(t *testing.T) {
	srv, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{})
	})

	_, err := New(srv.URL).Login(context.Background(), domain.LoginRequest{Email: "a@x.com", Password: "pw"})
	assert.Error(t, err)
}

func TestUploadProductImageUsesMultipartFileField(t *testing.T) {
	srv, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "png-bytes", string(content))
		writeBody(w, http.StatusOK, map[string]any{"id": "img1", "productId": "p1", "isPrimary": true})
	})

	image, err := New(srv.URL).UploadProductImage(context.Background(), "p1", "photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "img1", image.ID)
	assert.True(t, image.IsPrimary)
}

func TestTransportErrorsAreWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithTimeout(20*time.Millisecond)).ListSales(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /sales")
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(srv.URL).ListSales(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorMessageTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ã", maxErrorText+50)

	msg := errorMessage([]byte(long))
	assert.True(t, utf8.ValidString(msg))
	assert.Equal(t, maxErrorText, utf8.RuneCountInString(msg))

	assert.Equal(t, "curto", errorMessage([]byte("  curto  ")))
}

func TestOversizedResponseIsRejected(t *testing.T) {
	srv, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["` + strings.Repeat("x", maxResponseBody) + `"]`))
	})

	_, err := New(srv.URL).ListSales(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}
