package domain

import "github.com/shopspring/decimal"

// CustomerProductPurchase rolls up one product's line items for one customer.
// AveragePrice is zero when TotalQuantity is zero.
type CustomerProductPurchase struct {
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	TotalQuantity    int             `json:"totalQuantity"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
	LastPurchaseDate string          `json:"lastPurchaseDate"`
}

// CustomerAnalytics rolls up every sale sharing a customer id. Name, email and
// phone come from the first sale seen for the customer.
type CustomerAnalytics struct {
	CustomerID        string                    `json:"customerId"`
	CustomerName      string                    `json:"customerName"`
	CustomerEmail     string                    `json:"customerEmail"`
	CustomerPhone     string                    `json:"customerPhone"`
	TotalPurchases    int                       `json:"totalPurchases"`
	TotalSpent        decimal.Decimal           `json:"totalSpent"`
	TotalProfit       decimal.Decimal           `json:"totalProfit"`
	AverageOrderValue decimal.Decimal           `json:"averageOrderValue"`
	Products          []CustomerProductPurchase `json:"products"`
	LastPurchaseDate  string                    `json:"lastPurchaseDate"`
}

type TopCustomer struct {
	CustomerID     string          `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	TotalPurchases int             `json:"totalPurchases"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
}

type TopSale struct {
	SaleID       string          `json:"saleId"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	SaleDate     string          `json:"saleDate"`
	ItemsCount   int             `json:"itemsCount"`
}

type DashboardStats struct {
	Metrics                 DashboardMetrics `json:"metrics"`
	TopCustomersByPurchases []TopCustomer    `json:"topCustomersByPurchases"`
	TopCustomersByProfit    []TopCustomer    `json:"topCustomersByProfit"`
	TopSales                []TopSale        `json:"topSales"`
}

type SalesChartPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Sales   int             `json:"sales"`
}

type StockAlerts struct {
	LowStock    []Inventory `json:"lowStock"`
	OutOfStock  []Inventory `json:"outOfStock"`
	TotalAlerts int         `json:"totalAlerts"`
}
