package analytics

import (
	"slices"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

// TopListSize is how many entries each dashboard ranking keeps.
const TopListSize = 5

// ComputeDashboardStats builds the dashboard rankings. The sales slice is
// sorted through a copy and is left in the caller's order.
func ComputeDashboardStats(metrics domain.DashboardMetrics, sales []domain.Sale) domain.DashboardStats {
	fold := foldSales(sales, false)

	customers := make([]domain.TopCustomer, 0, len(fold.order))
	for _, customerID := range fold.order {
		customers = append(customers, fold.byID[customerID].topCustomer())
	}

	byPurchases := topN(customers, TopListSize, func(a, b domain.TopCustomer) int {
		return b.TotalPurchases - a.TotalPurchases
	})
	byProfit := topN(customers, TopListSize, func(a, b domain.TopCustomer) int {
		return b.TotalProfit.Cmp(a.TotalProfit)
	})
	largestSales := topN(sales, TopListSize, func(a, b domain.Sale) int {
		return b.TotalAmount.Cmp(a.TotalAmount)
	})

	topSales := make([]domain.TopSale, 0, len(largestSales))
	for _, sale := range largestSales {
		topSales = append(topSales, domain.TopSale{
			SaleID:       sale.ID,
			CustomerName: sale.Customer.Name,
			TotalAmount:  sale.TotalAmount,
			NetProfit:    sale.TotalNetProfit,
			SaleDate:     sale.SaleDate,
			ItemsCount:   len(sale.Items),
		})
	}

	return domain.DashboardStats{
		Metrics:                 metrics,
		TopCustomersByPurchases: byPurchases,
		TopCustomersByProfit:    byProfit,
		TopSales:                topSales,
	}
}

// topN stable-sorts a copy of items and keeps at most n of them.
func topN[T any](items []T, n int, cmp func(a, b T) int) []T {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []T{}
	}
	slices.SortStableFunc(sorted, cmp)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
