// Package postgres reads dashboard data straight from the API's database. The
// connection is used read-only; every query is scoped to one owner.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
	"github.com/Wessamoreira/ambiente-precificador/internal/store"
)

type Store struct {
	db      *sql.DB
	ownerID string
}

func New(ctx context.Context, databaseURL string, ownerID string) (*Store, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(4)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, ownerID: ownerID}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			s.id::text,
			s.sale_date,
			COALESCE(s.total_amount, 0),
			COALESCE(s.total_net_profit, 0),
			COALESCE(c.id::text, ''),
			COALESCE(c.name, ''),
			COALESCE(c.phone_number, ''),
			COALESCE(c.email, '')
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.owner_id = $1
		ORDER BY s.sale_date DESC
	`, s.ownerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0, 128)
	indexByID := make(map[string]int)
	for rows.Next() {
		var sale domain.Sale
		var saleDate time.Time
		if err := rows.Scan(
			&sale.ID,
			&saleDate,
			&sale.TotalAmount,
			&sale.TotalNetProfit,
			&sale.Customer.ID,
			&sale.Customer.Name,
			&sale.Customer.PhoneNumber,
			&sale.Customer.Email,
		); err != nil {
			return nil, err
		}
		sale.SaleDate = saleDate.Format(time.RFC3339)
		sale.Items = []domain.SaleItem{}
		indexByID[sale.ID] = len(sales)
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	itemRows, err := s.db.QueryContext(ctx, `
		SELECT
			si.sale_id::text,
			si.id::text,
			si.product_id::text,
			COALESCE(p.name, ''),
			si.quantity,
			COALESCE(si.unit_price, 0),
			COALESCE(si.unit_cost_at_sale, 0),
			COALESCE(si.net_profit, 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		LEFT JOIN products p ON p.id = si.product_id
		WHERE s.owner_id = $1
		ORDER BY si.sale_id, si.id
	`, s.ownerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var saleID string
		var item domain.SaleItem
		if err := itemRows.Scan(
			&saleID,
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.UnitCostAtSale,
			&item.NetProfit,
		); err != nil {
			return nil, err
		}
		idx, ok := indexByID[saleID]
		if !ok {
			continue
		}
		sales[idx].Items = append(sales[idx].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, wrapErr(err)
	}

	return sales, nil
}

func (s *Store) DashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	var metrics domain.DashboardMetrics
	var revenue, profit decimal.Decimal

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(total_net_profit), 0)
		FROM sales
		WHERE owner_id = $1
	`, s.ownerID).Scan(&revenue, &profit)
	if err != nil {
		return metrics, wrapErr(err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products WHERE owner_id = $1)::bigint,
			(SELECT COUNT(*) FROM customers WHERE owner_id = $1)::bigint
	`, s.ownerID).Scan(&metrics.ProductCount, &metrics.CustomerCount)
	if err != nil {
		return metrics, wrapErr(err)
	}

	metrics.TotalRevenue = revenue
	metrics.TotalNetProfit = profit
	return metrics, nil
}

func (s *Store) ListLowStock(ctx context.Context) ([]domain.Inventory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			i.id::text,
			p.id::text,
			p.name,
			COALESCE(p.sku, ''),
			i.current_stock,
			i.min_stock,
			i.reserved_stock,
			i.available_stock,
			i.stock_status::text,
			i.last_stock_check,
			i.updated_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE p.owner_id = $1
			AND i.stock_status::text IN ('LOW_STOCK', 'OUT_OF_STOCK')
		ORDER BY i.current_stock, p.name
	`, s.ownerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	items := make([]domain.Inventory, 0, 32)
	for rows.Next() {
		var item domain.Inventory
		var status string
		var lastCheck, updatedAt sql.NullTime
		if err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductSKU,
			&item.CurrentStock,
			&item.MinStock,
			&item.ReservedStock,
			&item.AvailableStock,
			&status,
			&lastCheck,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		item.StockStatus = domain.StockStatus(status)
		item.StockStatusDescription = item.StockStatus.Description()
		item.LastStockCheck = formatNullTime(lastCheck)
		item.UpdatedAt = formatNullTime(updatedAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}

	return items, nil
}

func formatNullTime(value sql.NullTime) string {
	if !value.Valid {
		return ""
	}
	return value.Time.Format(time.RFC3339)
}

// wrapErr marks connection-level failures as store.ErrUnavailable.
func wrapErr(err error) error {
	var connectErr *pgconn.ConnectError
	if pgconn.Timeout(err) || errors.As(err, &connectErr) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return err
}
