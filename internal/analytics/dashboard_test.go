package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

func TestComputeDashboardStatsTruncatesToTopFive(t *testing.T) {
	// Customer cN has N purchases (each with profit 10-N) so the two rankings disagree.
	var sales []domain.Sale
	for n := 1; n <= 7; n++ {
		customerID := fmt.Sprintf("c%d", n)
		for k := 0; k < n; k++ {
			amount := fmt.Sprintf("%d", n*100+k)
			profit := fmt.Sprintf("%d", 10-n)
			sales = append(sales, sale(fmt.Sprintf("%s-%d", customerID, k), customerID, "2024-01-01", amount, profit))
		}
	}

	stats := ComputeDashboardStats(domain.DashboardMetrics{ProductCount: 3, CustomerCount: 7}, sales)

	require.Len(t, stats.TopCustomersByPurchases, TopListSize)
	require.Len(t, stats.TopCustomersByProfit, TopListSize)
	require.Len(t, stats.TopSales, TopListSize)
	assert.Equal(t, int64(7), stats.Metrics.CustomerCount)

	var byPurchases []string
	for _, c := range stats.TopCustomersByPurchases {
		byPurchases = append(byPurchases, c.CustomerID)
	}
	assert.Equal(t, []string{"c7", "c6", "c5", "c4", "c3"}, byPurchases)

	// totalProfit for cN is N*(10-N): c5=25, c4=24, c6=24, c3=21, c7=21.
	var byProfit []string
	for _, c := range stats.TopCustomersByProfit {
		byProfit = append(byProfit, c.CustomerID)
	}
	assert.Equal(t, []string{"c5", "c4", "c6", "c3", "c7"}, byProfit)

	assert.Equal(t, "c7-6", stats.TopSales[0].SaleID)
	for i := 1; i < len(stats.TopSales); i++ {
		assert.True(t, stats.TopSales[i-1].TotalAmount.GreaterThanOrEqual(stats.TopSales[i].TotalAmount))
	}
}

func TestComputeDashboardStatsDoesNotReorderCallerSales(t *testing.T) {
	sales := []domain.Sale{
		sale("small", "c1", "2024-01-01", "1", "0"),
		sale("large", "c2", "2024-01-02", "999", "10", item("p1", "Widget", 1, "999")),
		sale("medium", "c1", "2024-01-03", "50", "5"),
	}

	stats := ComputeDashboardStats(domain.DashboardMetrics{}, sales)

	assert.Equal(t, "small", sales[0].ID)
	assert.Equal(t, "large", sales[1].ID)
	assert.Equal(t, "medium", sales[2].ID)

	require.Len(t, stats.TopSales, 3)
	top := stats.TopSales[0]
	assert.Equal(t, "large", top.SaleID)
	assert.Equal(t, "Customer c2", top.CustomerName)
	assert.Equal(t, 1, top.ItemsCount)
	assert.True(t, top.NetProfit.Equal(dec("10")))
	assert.Equal(t, "2024-01-02", top.SaleDate)

	require.Len(t, stats.TopCustomersByPurchases, 2)
	assert.Equal(t, "c1", stats.TopCustomersByPurchases[0].CustomerID)
	assert.Equal(t, 2, stats.TopCustomersByPurchases[0].TotalPurchases)
	assert.True(t, stats.TopCustomersByPurchases[0].TotalSpent.Equal(dec("51")))
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(domain.DashboardMetrics{}, nil)
	assert.NotNil(t, stats.TopCustomersByPurchases)
	assert.NotNil(t, stats.TopCustomersByProfit)
	assert.NotNil(t, stats.TopSales)
	assert.Empty(t, stats.TopSales)
}

func TestComputeSalesChartBucketsByDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		sale("s1", "c1", "2024-03-10T08:00:00", "100", "20"),
		sale("s2", "c2", "2024-03-10T20:00:00-03:00", "50", "5"),
		sale("s3", "c1", "2024-03-08", "30", "3"),
		sale("s4", "c1", "2024-02-01", "999", "99"),
		sale("s5", "c1", "not a date", "1", "1"),
	}

	points := ComputeSalesChart(sales, 3, now)
	require.Len(t, points, 3)

	assert.Equal(t, "08/03", points[0].Date)
	assert.True(t, points[0].Revenue.Equal(dec("30")))
	assert.Equal(t, 1, points[0].Sales)

	assert.Equal(t, "09/03", points[1].Date)
	assert.True(t, points[1].Revenue.IsZero())
	assert.Equal(t, 0, points[1].Sales)

	assert.Equal(t, "10/03", points[2].Date)
	assert.True(t, points[2].Revenue.Equal(dec("150")))
	assert.True(t, points[2].Profit.Equal(dec("25")))
	assert.Equal(t, 2, points[2].Sales)
}

func TestComputeSalesChartClampsDays(t *testing.T) {
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Len(t, ComputeSalesChart(nil, 0, now), DefaultChartDays)
	assert.Len(t, ComputeSalesChart(nil, 5000, now), MaxChartDays)
}

func TestSplitStockAlerts(t *testing.T) {
	items := []domain.Inventory{
		{ProductID: "p1", CurrentStock: 0, StockStatus: domain.StockOutOfStock},
		{ProductID: "p2", CurrentStock: 2, StockStatus: domain.StockLowStock},
		{ProductID: "p3", CurrentStock: 1, StockStatus: domain.StockLowStock},
	}

	alerts := SplitStockAlerts(items)
	assert.Equal(t, 3, alerts.TotalAlerts)
	require.Len(t, alerts.OutOfStock, 1)
	assert.Equal(t, "p1", alerts.OutOfStock[0].ProductID)
	require.Len(t, alerts.LowStock, 2)

	empty := SplitStockAlerts(nil)
	assert.Equal(t, 0, empty.TotalAlerts)
	assert.NotNil(t, empty.LowStock)
}
