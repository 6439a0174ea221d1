package analytics

import "github.com/Wessamoreira/ambiente-precificador/internal/domain"

// SplitStockAlerts separates the low-stock listing into empty shelves and
// items that are merely running low.
func SplitStockAlerts(items []domain.Inventory) domain.StockAlerts {
	alerts := domain.StockAlerts{
		LowStock:    []domain.Inventory{},
		OutOfStock:  []domain.Inventory{},
		TotalAlerts: len(items),
	}
	for _, item := range items {
		if item.CurrentStock <= 0 {
			alerts.OutOfStock = append(alerts.OutOfStock, item)
			continue
		}
		alerts.LowStock = append(alerts.LowStock, item)
	}
	return alerts
}
