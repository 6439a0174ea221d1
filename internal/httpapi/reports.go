package httpapi

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

var customerCSVHeader = []string{
	"customer_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"total_purchases",
	"total_spent",
	"total_profit",
	"average_order_value",
	"last_purchase_date",
}

func (a *API) handleCustomersCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := a.service.CustomerAnalytics(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payload, err := customersToCSV(rows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (a *API) handleDashboardPDF(w http.ResponseWriter, r *http.Request) {
	stats, err := a.service.DashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payload, err := dashboardToPDF(stats, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="dashboard.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func customersToCSV(rows []domain.CustomerAnalytics) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(customerCSVHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			csvCell(row.CustomerID),
			csvCell(row.CustomerName),
			csvCell(row.CustomerEmail),
			csvCell(row.CustomerPhone),
			strconv.Itoa(row.TotalPurchases),
			row.TotalSpent.StringFixed(2),
			row.TotalProfit.StringFixed(2),
			row.AverageOrderValue.StringFixed(2),
			row.LastPurchaseDate,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvCell quotes text a spreadsheet would otherwise evaluate as a formula.
func csvCell(value string) string {
	if value != "" && strings.ContainsRune("=+-@\t\r", rune(value[0])) {
		return "'" + value
	}
	return value
}

var (
	pdfDark  = color.Color{Red: 38, Green: 38, Blue: 34}
	pdfMuted = color.Color{Red: 121, Green: 119, Blue: 109}
)

func dashboardToPDF(stats domain.DashboardStats, generatedAt time.Time) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(14, func() {
		m.Col(12, func() {
			m.Text("PrecificaPro - Dashboard", props.Text{Size: 20, Style: consts.Bold, Color: pdfDark})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Gerado em "+generatedAt.Format("02/01/2006 15:04"), props.Text{Size: 9, Color: pdfMuted})
		})
	})
	m.Row(6, func() {})

	metrics := stats.Metrics
	pdfPairs(m, [][2]string{
		{"Receita total", "R$ " + metrics.TotalRevenue.StringFixed(2)},
		{"Lucro líquido", "R$ " + metrics.TotalNetProfit.StringFixed(2)},
		{"Produtos", strconv.FormatInt(metrics.ProductCount, 10)},
		{"Clientes", strconv.FormatInt(metrics.CustomerCount, 10)},
	})

	pdfSection(m, "Top clientes por compras")
	pdfTable(m, []string{"Cliente", "Compras", "Total", "Lucro"}, customerRows(stats.TopCustomersByPurchases))

	pdfSection(m, "Top clientes por lucro")
	pdfTable(m, []string{"Cliente", "Compras", "Total", "Lucro"}, customerRows(stats.TopCustomersByProfit))

	pdfSection(m, "Maiores vendas")
	saleRows := make([][]string, 0, len(stats.TopSales))
	for _, sale := range stats.TopSales {
		saleRows = append(saleRows, []string{
			sale.CustomerName,
			strconv.Itoa(sale.ItemsCount),
			"R$ " + sale.TotalAmount.StringFixed(2),
			"R$ " + sale.NetProfit.StringFixed(2),
		})
	}
	pdfTable(m, []string{"Cliente", "Itens", "Total", "Lucro"}, saleRows)

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render dashboard pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func customerRows(customers []domain.TopCustomer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.CustomerName,
			strconv.Itoa(c.TotalPurchases),
			"R$ " + c.TotalSpent.StringFixed(2),
			"R$ " + c.TotalProfit.StringFixed(2),
		})
	}
	return rows
}

func pdfSection(m pdf.Maroto, title string) {
	m.Row(8, func() {})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{Size: 12, Style: consts.Bold, Color: pdfDark})
		})
	})
}

func pdfPairs(m pdf.Maroto, pairs [][2]string) {
	for _, pair := range pairs {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(pair[0], props.Text{Size: 10, Color: pdfMuted})
			})
			m.Col(6, func() {
				m.Text(pair[1], props.Text{Size: 10, Style: consts.Bold, Color: pdfDark, Align: consts.Right})
			})
		})
	}
}

// pdfTable renders a first column of width 6 followed by three of width 2.
func pdfTable(m pdf.Maroto, header []string, rows [][]string) {
	widths := []uint{6, 2, 2, 2}
	line := func(cells []string, style consts.Style, size float64) {
		m.Row(6, func() {
			for i, cell := range cells {
				align := consts.Right
				if i == 0 {
					align = consts.Left
				}
				m.Col(widths[i], func() {
					m.Text(cell, props.Text{Size: size, Style: style, Color: pdfDark, Align: align})
				})
			}
		})
	}

	line(header, consts.Bold, 8)
	if len(rows) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("Sem dados", props.Text{Size: 9, Color: pdfMuted})
			})
		})
		return
	}
	for _, row := range rows {
		line(row, consts.Normal, 9)
	}
}
