package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

const (
	DefaultChartDays = 30
	MaxChartDays     = 365
)

// ComputeSalesChart returns one point per calendar day, oldest first, for the
// `days` days ending on now's date. Sales are bucketed by the wall-clock date
// they carry; sales with unparseable dates are left out.
func ComputeSalesChart(sales []domain.Sale, days int, now time.Time) []domain.SalesChartPoint {
	if days < 1 {
		days = DefaultChartDays
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	type bucket struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
		count   int
	}
	buckets := make(map[string]*bucket)
	for _, sale := range sales {
		at, ok := parseSaleDate(sale.SaleDate)
		if !ok {
			continue
		}
		key := at.Format(time.DateOnly)
		b, exists := buckets[key]
		if !exists {
			b = &bucket{}
			buckets[key] = b
		}
		b.revenue = b.revenue.Add(sale.TotalAmount)
		b.profit = b.profit.Add(sale.TotalNetProfit)
		b.count++
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(days - 1))

	points := make([]domain.SalesChartPoint, 0, days)
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		point := domain.SalesChartPoint{
			Date:    day.Format("02/01"),
			Revenue: decimal.Zero,
			Profit:  decimal.Zero,
		}
		if b, ok := buckets[day.Format(time.DateOnly)]; ok {
			point.Revenue = b.revenue
			point.Profit = b.profit
			point.Sales = b.count
		}
		points = append(points, point)
	}
	return points
}
