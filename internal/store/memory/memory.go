// Package memory is an in-process data source seeded with demo data, used for
// local development and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
	"github.com/Wessamoreira/ambiente-precificador/internal/xid"
)

type Store struct {
	mu        sync.RWMutex
	products  []domain.Product
	customers []domain.Customer
	sales     []domain.Sale
	inventory []domain.Inventory
}

func New(products []domain.Product, customers []domain.Customer, sales []domain.Sale, inventory []domain.Inventory) *Store {
	return &Store{
		products:  slices.Clone(products),
		customers: slices.Clone(customers),
		sales:     cloneSales(sales),
		inventory: slices.Clone(inventory),
	}
}

func (s *Store) ListSales(ctx context.Context) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSales(s.sales), nil
}

func (s *Store) DashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	if err := ctx.Err(); err != nil {
		return domain.DashboardMetrics{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	metrics := domain.DashboardMetrics{
		TotalRevenue:   decimal.Zero,
		TotalNetProfit: decimal.Zero,
		ProductCount:   int64(len(s.products)),
		CustomerCount:  int64(len(s.customers)),
	}
	for _, sale := range s.sales {
		metrics.TotalRevenue = metrics.TotalRevenue.Add(sale.TotalAmount)
		metrics.TotalNetProfit = metrics.TotalNetProfit.Add(sale.TotalNetProfit)
	}
	return metrics, nil
}

func (s *Store) ListLowStock(ctx context.Context) ([]domain.Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Inventory, 0, len(s.inventory))
	for _, item := range s.inventory {
		item.StockStatus = stockStatus(item.CurrentStock, item.MinStock)
		if item.StockStatus == domain.StockInStock {
			continue
		}
		item.StockStatusDescription = item.StockStatus.Description()
		result = append(result, item)
	}
	return result, nil
}

// AddSale appends a sale, assigning an id when it has none.
func (s *Store) AddSale(sale domain.Sale) domain.Sale {
	if sale.ID == "" {
		sale.ID = xid.New("sale")
	}
	sale.Items = slices.Clone(sale.Items)

	s.mu.Lock()
	s.sales = append(s.sales, sale)
	s.mu.Unlock()
	return sale
}

// SetStock overwrites the current stock of a product's inventory row.
func (s *Store) SetStock(productID string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ProductID == productID {
			s.inventory[i].CurrentStock = qty
			s.inventory[i].AvailableStock = qty - s.inventory[i].ReservedStock
			return true
		}
	}
	return false
}

func stockStatus(current, minimum int) domain.StockStatus {
	switch {
	case current <= 0:
		return domain.StockOutOfStock
	case current <= minimum:
		return domain.StockLowStock
	default:
		return domain.StockInStock
	}
}

func cloneSales(sales []domain.Sale) []domain.Sale {
	out := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		sale.Items = slices.Clone(sale.Items)
		out[i] = sale
	}
	return out
}

// NewSeeded returns a store with a small catalogue and a few weeks of sales
// dated relative to now.
func NewSeeded() *Store {
	now := time.Now().UTC()
	dec := decimal.RequireFromString

	products := []domain.Product{
		{ID: "prod-bolo", Name: "Bolo de Pote", SKU: "BOLO-01", DefaultPurchaseCost: dec("4.20"), DefaultPackagingCost: dec("0.80"), DefaultOtherVariableCost: dec("0.30")},
		{ID: "prod-brigadeiro", Name: "Brigadeiro Gourmet", SKU: "BRIG-01", DefaultPurchaseCost: dec("1.10"), DefaultPackagingCost: dec("0.25"), DefaultOtherVariableCost: dec("0.05")},
		{ID: "prod-torta", Name: "Torta de Limão", SKU: "TORT-01", DefaultPurchaseCost: dec("18.00"), DefaultPackagingCost: dec("2.50"), DefaultOtherVariableCost: dec("1.00")},
		{ID: "prod-cookie", Name: "Cookie Recheado", SKU: "COOK-01", DefaultPurchaseCost: dec("2.00"), DefaultPackagingCost: dec("0.40"), DefaultOtherVariableCost: dec("0.10")},
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	customers := []domain.Customer{
		{ID: "cust-ana", Name: "Ana Souza", PhoneNumber: "11988887777", Email: "ana@example.com"},
		{ID: "cust-bruno", Name: "Bruno Lima", PhoneNumber: "11977776666", Email: "bruno@example.com"},
		{ID: "cust-carla", Name: "Carla Dias", PhoneNumber: "21966665555", Email: "carla@example.com"},
		{ID: "cust-diego", Name: "Diego Alves", PhoneNumber: "31955554444", Email: "diego@example.com"},
	}

	type line struct {
		productID string
		qty       int
		price     string
	}
	seed := []struct {
		daysAgo  int
		customer int
		lines    []line
	}{
		{1, 0, []line{{"prod-bolo", 4, "12.00"}, {"prod-brigadeiro", 10, "3.50"}}},
		{2, 1, []line{{"prod-torta", 1, "65.00"}}},
		{3, 0, []line{{"prod-cookie", 6, "7.00"}}},
		{5, 2, []line{{"prod-brigadeiro", 30, "3.20"}}},
		{8, 3, []line{{"prod-bolo", 2, "12.00"}, {"prod-cookie", 2, "7.00"}}},
		{12, 1, []line{{"prod-torta", 2, "62.00"}, {"prod-bolo", 1, "12.00"}}},
		{20, 0, []line{{"prod-torta", 1, "65.00"}}},
		{27, 2, []line{{"prod-cookie", 12, "6.50"}}},
	}

	sales := make([]domain.Sale, 0, len(seed))
	for _, entry := range seed {
		sale := domain.Sale{
			ID:             xid.New("sale"),
			SaleDate:       now.AddDate(0, 0, -entry.daysAgo).Format(time.RFC3339),
			TotalAmount:    decimal.Zero,
			TotalNetProfit: decimal.Zero,
			Customer:       customers[entry.customer],
		}
		for _, l := range entry.lines {
			p := byID[l.productID]
			unitPrice := dec(l.price)
			unitCost := p.DefaultPurchaseCost.Add(p.DefaultPackagingCost).Add(p.DefaultOtherVariableCost)
			qty := decimal.NewFromInt(int64(l.qty))
			profit := unitPrice.Sub(unitCost).Mul(qty)
			sale.Items = append(sale.Items, domain.SaleItem{
				ID:             xid.New("item"),
				ProductID:      p.ID,
				ProductName:    p.Name,
				Quantity:       l.qty,
				UnitPrice:      unitPrice,
				UnitCostAtSale: unitCost,
				NetProfit:      profit,
			})
			sale.TotalAmount = sale.TotalAmount.Add(unitPrice.Mul(qty))
			sale.TotalNetProfit = sale.TotalNetProfit.Add(profit)
		}
		sales = append(sales, sale)
	}

	inventory := []domain.Inventory{
		{ID: "inv-bolo", ProductID: "prod-bolo", ProductName: "Bolo de Pote", ProductSKU: "BOLO-01", CurrentStock: 3, MinStock: 5, AvailableStock: 3},
		{ID: "inv-brigadeiro", ProductID: "prod-brigadeiro", ProductName: "Brigadeiro Gourmet", ProductSKU: "BRIG-01", CurrentStock: 120, MinStock: 40, AvailableStock: 120},
		{ID: "inv-torta", ProductID: "prod-torta", ProductName: "Torta de Limão", ProductSKU: "TORT-01", CurrentStock: 0, MinStock: 2, AvailableStock: 0},
		{ID: "inv-cookie", ProductID: "prod-cookie", ProductName: "Cookie Recheado", ProductSKU: "COOK-01", CurrentStock: 8, MinStock: 10, AvailableStock: 8},
	}
	lastCheck := now.Format(time.RFC3339)
	for i := range inventory {
		inventory[i].StockStatus = stockStatus(inventory[i].CurrentStock, inventory[i].MinStock)
		inventory[i].StockStatusDescription = inventory[i].StockStatus.Description()
		inventory[i].LastStockCheck = lastCheck
		inventory[i].UpdatedAt = lastCheck
	}

	return New(products, customers, sales, inventory)
}
