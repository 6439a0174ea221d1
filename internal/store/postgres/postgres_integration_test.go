package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Runs against a database migrated by the PrecificaPro API.
func TestReadsOwnerScopedDashboardData(t *testing.T) {
	databaseURL := os.Getenv("PRECIFICAPRO_TEST_DATABASE_URL")
	ownerID := os.Getenv("PRECIFICAPRO_TEST_OWNER_ID")
	if databaseURL == "" || ownerID == "" {
		t.Skip("set PRECIFICAPRO_TEST_DATABASE_URL and PRECIFICAPRO_TEST_OWNER_ID to run postgres integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, databaseURL, ownerID)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})

	before, err := s.DashboardMetrics(ctx)
	if err != nil {
		t.Fatalf("metrics before: %v", err)
	}

	customerID := uuid.NewString()
	productID := uuid.NewString()
	saleID := uuid.NewString()
	itemID := uuid.NewString()
	sku := fmt.Sprintf("SKU-IT-%d", time.Now().UnixNano())

	t.Cleanup(func() {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM sale_items WHERE id = $1`, itemID)
		_, _ = s.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
		_, _ = s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
		_, _ = s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	})

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (id, owner_id, name, phone_number, email)
		VALUES ($1, $2, 'Cliente IT', '11999990000', 'it@example.com')
	`, customerID, ownerID); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, owner_id, name, sku, default_purchase_cost, default_packaging_cost, default_other_variable_cost)
		VALUES ($1, $2, 'Produto IT', $3, 10, 1, 0)
	`, productID, ownerID, sku); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO sales (id, owner_id, customer_id, sale_date, total_amount, total_net_profit)
		VALUES ($1, $2, $3, now(), 40.50, 12.25)
	`, saleID, ownerID, customerID); err != nil {
		t.Fatalf("insert sale: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, unit_cost_at_sale, net_profit)
		VALUES ($1, $2, $3, 3, 13.50, 9.41, 12.25)
	`, itemID, saleID, productID); err != nil {
		t.Fatalf("insert sale item: %v", err)
	}

	after, err := s.DashboardMetrics(ctx)
	if err != nil {
		t.Fatalf("metrics after: %v", err)
	}
	if delta := after.TotalRevenue.Sub(before.TotalRevenue); !delta.Equal(decimal.RequireFromString("40.50")) {
		t.Fatalf("expected revenue to grow by 40.50, grew by %s", delta)
	}
	if after.CustomerCount != before.CustomerCount+1 {
		t.Fatalf("expected one more customer, got %d -> %d", before.CustomerCount, after.CustomerCount)
	}

	sales, err := s.ListSales(ctx)
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	var found bool
	for _, sale := range sales {
		if sale.ID != saleID {
			continue
		}
		found = true
		if sale.Customer.ID != customerID {
			t.Fatalf("expected customer %s, got %s", customerID, sale.Customer.ID)
		}
		if len(sale.Items) != 1 || sale.Items[0].Quantity != 3 || sale.Items[0].ProductName != "Produto IT" {
			t.Fatalf("unexpected items: %+v", sale.Items)
		}
	}
	if !found {
		t.Fatalf("expected sale %s in listing", saleID)
	}

	if _, err := s.ListLowStock(ctx); err != nil {
		t.Fatalf("list low stock: %v", err)
	}
}
