// Package analytics folds the flat sales list returned by the API into the
// customer and product rollups shown on the dashboard. Every function here is
// pure: inputs are never mutated and results are rebuilt on each call.
package analytics

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

type productAccumulator struct {
	id       string
	name     string
	quantity int
	spent    decimal.Decimal
	last     latestDate
}

type customerAccumulator struct {
	id        string
	name      string
	email     string
	phone     string
	purchases int
	spent     decimal.Decimal
	profit    decimal.Decimal
	last      latestDate

	products     map[string]*productAccumulator
	productOrder []string
}

// customerFold groups sales by customer id, remembering first-seen order so
// that ties in later sorts are deterministic.
type customerFold struct {
	byID  map[string]*customerAccumulator
	order []string
}

func foldSales(sales []domain.Sale, withProducts bool) customerFold {
	fold := customerFold{byID: make(map[string]*customerAccumulator)}

	for _, sale := range sales {
		customerID := strings.TrimSpace(sale.Customer.ID)
		if customerID == "" {
			continue
		}

		acc, ok := fold.byID[customerID]
		if !ok {
			acc = &customerAccumulator{
				id:       customerID,
				name:     sale.Customer.Name,
				email:    sale.Customer.Email,
				phone:    sale.Customer.PhoneNumber,
				products: make(map[string]*productAccumulator),
			}
			fold.byID[customerID] = acc
			fold.order = append(fold.order, customerID)
		}

		acc.purchases++
		acc.spent = acc.spent.Add(sale.TotalAmount)
		acc.profit = acc.profit.Add(sale.TotalNetProfit)
		acc.last.observe(sale.SaleDate)

		if !withProducts {
			continue
		}
		for _, item := range sale.Items {
			productID := strings.TrimSpace(item.ProductID)
			if productID == "" {
				continue
			}
			product, ok := acc.products[productID]
			if !ok {
				product = &productAccumulator{id: productID, name: item.ProductName}
				acc.products[productID] = product
				acc.productOrder = append(acc.productOrder, productID)
			}
			product.quantity += item.Quantity
			product.spent = product.spent.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
			product.last.observe(sale.SaleDate)
		}
	}

	return fold
}

func (a *customerAccumulator) finalize() domain.CustomerAnalytics {
	products := make([]domain.CustomerProductPurchase, 0, len(a.productOrder))
	for _, productID := range a.productOrder {
		p := a.products[productID]
		products = append(products, domain.CustomerProductPurchase{
			ProductID:        p.id,
			ProductName:      p.name,
			TotalQuantity:    p.quantity,
			TotalSpent:       p.spent,
			AveragePrice:     safeDiv(p.spent, p.quantity),
			LastPurchaseDate: p.last.String(),
		})
	}

	return domain.CustomerAnalytics{
		CustomerID:        a.id,
		CustomerName:      a.name,
		CustomerEmail:     a.email,
		CustomerPhone:     a.phone,
		TotalPurchases:    a.purchases,
		TotalSpent:        a.spent,
		TotalProfit:       a.profit,
		AverageOrderValue: safeDiv(a.spent, a.purchases),
		Products:          products,
		LastPurchaseDate:  a.last.String(),
	}
}

func (a *customerAccumulator) topCustomer() domain.TopCustomer {
	return domain.TopCustomer{
		CustomerID:     a.id,
		CustomerName:   a.name,
		TotalPurchases: a.purchases,
		TotalSpent:     a.spent,
		TotalProfit:    a.profit,
	}
}

// ComputeCustomerAnalytics returns one entry per distinct customer id, most
// profitable first. Sales without a customer id are ignored.
func ComputeCustomerAnalytics(sales []domain.Sale) []domain.CustomerAnalytics {
	fold := foldSales(sales, true)

	result := make([]domain.CustomerAnalytics, 0, len(fold.order))
	for _, customerID := range fold.order {
		result = append(result, fold.byID[customerID].finalize())
	}

	slices.SortStableFunc(result, func(a, b domain.CustomerAnalytics) int {
		return b.TotalProfit.Cmp(a.TotalProfit)
	})
	return result
}

// ComputeCustomerAnalyticsByID returns nil when the customer has no sales.
func ComputeCustomerAnalyticsByID(sales []domain.Sale, customerID string) *domain.CustomerAnalytics {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil
	}
	for _, entry := range ComputeCustomerAnalytics(sales) {
		if entry.CustomerID == customerID {
			found := entry
			return &found
		}
	}
	return nil
}

func safeDiv(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}
