package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

const (
	DefaultChartDays        = 30
	DefaultPriceHistorySize = 10
)

func (c *Client) RecordSale(ctx context.Context, data domain.SaleData) (domain.Sale, error) {
	var sale domain.Sale
	err := c.post(ctx, "/sales", nil, data, &sale)
	return sale, err
}

func (c *Client) ListSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := c.get(ctx, "/sales", nil, &sales)
	return sales, err
}

// CalculateSimulation asks the API to price a product under a profile.
func (c *Client) CalculateSimulation(ctx context.Context, req domain.SimulationRequest) (domain.SimulationResponse, error) {
	var resp domain.SimulationResponse
	err := c.post(ctx, "/simulations/calculate", nil, req, &resp)
	return resp, err
}

func (c *Client) DashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	var metrics domain.DashboardMetrics
	err := c.get(ctx, "/dashboard/metrics", nil, &metrics)
	return metrics, err
}

// DashboardChart fetches the API's daily revenue series; days < 1 means 30.
func (c *Client) DashboardChart(ctx context.Context, days int) ([]domain.ChartDataPoint, error) {
	var points []domain.ChartDataPoint
	err := c.get(ctx, "/dashboard/chart", daysQuery(days), &points)
	return points, err
}

func (c *Client) ProductRanking(ctx context.Context) ([]domain.ProductRanking, error) {
	var ranking []domain.ProductRanking
	err := c.get(ctx, "/sales/product-ranking", nil, &ranking)
	return ranking, err
}

func (c *Client) ProductSalesChart(ctx context.Context, productID string, days int) (domain.ProductSalesChart, error) {
	var chart domain.ProductSalesChart
	escaped, err := escapeID(productID)
	if err != nil {
		return chart, err
	}
	err = c.get(ctx, "/sales/product-chart/"+escaped, daysQuery(days), &chart)
	return chart, err
}

func (c *Client) PriceHistory(ctx context.Context, productID string, page, size int) (domain.PriceHistoryPage, error) {
	var result domain.PriceHistoryPage
	escaped, err := escapeID(productID)
	if err != nil {
		return result, err
	}
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPriceHistorySize
	}
	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	err = c.get(ctx, "/products/"+escaped+"/price-history", query, &result)
	return result, err
}

func (c *Client) PriceEvolution(ctx context.Context, productID string, days int) (domain.PriceEvolution, error) {
	var evolution domain.PriceEvolution
	escaped, err := escapeID(productID)
	if err != nil {
		return evolution, err
	}
	err = c.get(ctx, "/products/"+escaped+"/price-history/evolution", daysQuery(days), &evolution)
	return evolution, err
}

func (c *Client) PriceStatistics(ctx context.Context, productID string) (domain.PriceStatistics, error) {
	var stats domain.PriceStatistics
	escaped, err := escapeID(productID)
	if err != nil {
		return stats, err
	}
	err = c.get(ctx, "/products/"+escaped+"/price-history/statistics", nil, &stats)
	return stats, err
}

func daysQuery(days int) url.Values {
	if days < 1 {
		days = DefaultChartDays
	}
	return url.Values{"days": {strconv.Itoa(days)}}
}
