package domain

import "github.com/shopspring/decimal"

type StockStatus string

const (
	StockInStock    StockStatus = "IN_STOCK"
	StockLowStock   StockStatus = "LOW_STOCK"
	StockOutOfStock StockStatus = "OUT_OF_STOCK"
)

// Description is the label the API shows next to the status.
func (s StockStatus) Description() string {
	switch s {
	case StockInStock:
		return "Em Estoque"
	case StockLowStock:
		return "Estoque Baixo"
	case StockOutOfStock:
		return "Sem Estoque"
	}
	return string(s)
}

type Inventory struct {
	ID                     string      `json:"id"`
	ProductID              string      `json:"productId"`
	ProductName            string      `json:"productName"`
	ProductSKU             string      `json:"productSku"`
	CurrentStock           int         `json:"currentStock"`
	MinStock               int         `json:"minStock"`
	ReservedStock          int         `json:"reservedStock"`
	AvailableStock         int         `json:"availableStock"`
	StockStatus            StockStatus `json:"stockStatus"`
	StockStatusDescription string      `json:"stockStatusDescription"`
	LastStockCheck         string      `json:"lastStockCheck"`
	UpdatedAt              string      `json:"updatedAt"`
}

type StockMovementType string

const (
	StockIn  StockMovementType = "IN"
	StockOut StockMovementType = "OUT"
)

type StockAdjustData struct {
	Type     StockMovementType `json:"type"`
	Quantity int               `json:"quantity"`
	Reason   string            `json:"reason"`
	Notes    string            `json:"notes,omitempty"`
}

type StockMovement struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	Type            string `json:"type"`
	TypeDescription string `json:"typeDescription"`
	Quantity        int    `json:"quantity"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes,omitempty"`
	PerformedBy     string `json:"performedBy"`
	CreatedAt       string `json:"createdAt"`
}

type StockMovementPage struct {
	Content       []StockMovement `json:"content"`
	TotalElements int64           `json:"totalElements"`
}

type InventorySummary struct {
	TotalProducts        int64   `json:"totalProducts"`
	InStock              int64   `json:"inStock"`
	LowStock             int64   `json:"lowStock"`
	OutOfStock           int64   `json:"outOfStock"`
	LowStockPercentage   float64 `json:"lowStockPercentage"`
	OutOfStockPercentage float64 `json:"outOfStockPercentage"`
}

type ProductImage struct {
	ID                 string `json:"id"`
	ProductID          string `json:"productId"`
	CloudinaryPublicID string `json:"cloudinaryPublicId"`
	ImageURL           string `json:"imageUrl"`
	ThumbnailURL       string `json:"thumbnailUrl"`
	SecureURL          string `json:"secureUrl"`
	Format             string `json:"format"`
	Width              int    `json:"width"`
	Height             int    `json:"height"`
	SizeBytes          int64  `json:"sizeBytes"`
	IsPrimary          bool   `json:"isPrimary"`
	DisplayOrder       int    `json:"displayOrder"`
	UploadedAt         string `json:"uploadedAt"`
}

type PriceHistory struct {
	ID                  string           `json:"id"`
	ProductID           string           `json:"productId"`
	SuggestedPrice      decimal.Decimal  `json:"suggestedPrice"`
	ActualPrice         *decimal.Decimal `json:"actualPrice,omitempty"`
	PricingProfileName  string           `json:"pricingProfileName,omitempty"`
	TotalCost           decimal.Decimal  `json:"totalCost"`
	NetProfitPerUnit    decimal.Decimal  `json:"netProfitPerUnit"`
	NetProfitPercentage decimal.Decimal  `json:"netProfitPercentage"`
	MarkupApplied       decimal.Decimal  `json:"markupApplied"`
	MarginOnPrice       decimal.Decimal  `json:"marginOnPrice"`
	CreatedAt           string           `json:"createdAt"`
	CreatedBy           string           `json:"createdBy,omitempty"`
	Notes               string           `json:"notes,omitempty"`
}

type PriceHistoryPage struct {
	Content       []PriceHistory `json:"content"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
}

type PricePoint struct {
	Date           string          `json:"date"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
	ProfitMargin   decimal.Decimal `json:"profitMargin"`
	PricingProfile string          `json:"pricingProfile,omitempty"`
}

type PriceTrend string

const (
	TrendIncreasing PriceTrend = "INCREASING"
	TrendDecreasing PriceTrend = "DECREASING"
	TrendStable     PriceTrend = "STABLE"
)

type PriceEvolution struct {
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	PeriodDays     int             `json:"periodDays"`
	DataPoints     []PricePoint    `json:"dataPoints"`
	MinPrice       decimal.Decimal `json:"minPrice"`
	MaxPrice       decimal.Decimal `json:"maxPrice"`
	AvgPrice       decimal.Decimal `json:"avgPrice"`
	PriceVariation decimal.Decimal `json:"priceVariation"`
	Trend          PriceTrend      `json:"trend"`
	TotalRecords   int             `json:"totalRecords"`
}

type PriceStatistics struct {
	ProductID     string           `json:"productId"`
	ProductName   string           `json:"productName"`
	MinPrice      decimal.Decimal  `json:"minPrice"`
	MaxPrice      decimal.Decimal  `json:"maxPrice"`
	AvgPrice      decimal.Decimal  `json:"avgPrice"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice,omitempty"`
	CurrentMargin *decimal.Decimal `json:"currentMargin,omitempty"`
	TotalRecords  int              `json:"totalRecords"`
	LastUpdated   string           `json:"lastUpdated,omitempty"`
}

type ProductRanking struct {
	ProductID         string          `json:"productId"`
	ProductName       string          `json:"productName"`
	ProductSKU        string          `json:"productSku"`
	TotalQuantitySold int64           `json:"totalQuantitySold"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalNetProfit    decimal.Decimal `json:"totalNetProfit"`
	AvgProfitMargin   float64         `json:"avgProfitMargin"`
}

type ProductSalesPoint struct {
	Date         string          `json:"date"`
	QuantitySold int64           `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
	SalesCount   int             `json:"salesCount"`
}

type ProductSalesChart struct {
	ProductID         string              `json:"productId"`
	ProductName       string              `json:"productName"`
	ProductSKU        string              `json:"productSku"`
	DataPoints        []ProductSalesPoint `json:"dataPoints"`
	TotalRevenue      decimal.Decimal     `json:"totalRevenue"`
	TotalQuantitySold int64               `json:"totalQuantitySold"`
	AvgDailyRevenue   decimal.Decimal     `json:"avgDailyRevenue"`
}

type BackupStatusCode string

const (
	BackupInProgress BackupStatusCode = "IN_PROGRESS"
	BackupCompleted  BackupStatusCode = "COMPLETED"
	BackupFailed     BackupStatusCode = "FAILED"
	BackupRestored   BackupStatusCode = "RESTORED"
)

type Backup struct {
	ID                int64            `json:"id"`
	Filename          string           `json:"filename"`
	FileSize          int64            `json:"fileSize"`
	FileSizeFormatted string           `json:"fileSizeFormatted"`
	CreatedAt         string           `json:"createdAt"`
	Status            BackupStatusCode `json:"status"`
	Type              string           `json:"type"`
	CreatedByUsername string           `json:"createdByUsername,omitempty"`
	RestoredAt        string           `json:"restoredAt,omitempty"`
	ErrorMessage      string           `json:"errorMessage,omitempty"`
}

type BackupResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Backup  *Backup `json:"backup,omitempty"`
}

type BackupStatus struct {
	Enabled            bool     `json:"enabled"`
	Message            string   `json:"message"`
	GoogleDriveBackups int      `json:"googleDriveBackups"`
	BackupFiles        []string `json:"backupFiles"`
}
