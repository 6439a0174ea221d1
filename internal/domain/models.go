package domain

import "github.com/shopspring/decimal"

type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type CustomerData struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type Product struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	SKU                      string          `json:"sku"`
	DefaultPurchaseCost      decimal.Decimal `json:"defaultPurchaseCost"`
	DefaultPackagingCost     decimal.Decimal `json:"defaultPackagingCost"`
	DefaultOtherVariableCost decimal.Decimal `json:"defaultOtherVariableCost"`
	PrimaryImageURL          string          `json:"primaryImageUrl,omitempty"`
}

type ProductData struct {
	Name                     string          `json:"name"`
	SKU                      string          `json:"sku"`
	DefaultPurchaseCost      decimal.Decimal `json:"defaultPurchaseCost"`
	DefaultPackagingCost     decimal.Decimal `json:"defaultPackagingCost"`
	DefaultOtherVariableCost decimal.Decimal `json:"defaultOtherVariableCost"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	Color        string `json:"color,omitempty"`
	ProductCount int    `json:"productCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CategoryData is used for both create and partial update; empty fields are omitted.
type CategoryData struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

type CostItemType string

const (
	CostItemGasolina    CostItemType = "GASOLINA"
	CostItemInternet    CostItemType = "INTERNET"
	CostItemEnergia     CostItemType = "ENERGIA"
	CostItemMarketing   CostItemType = "MARKETING"
	CostItemProlabore   CostItemType = "PROLABORE"
	CostItemAluguel     CostItemType = "ALUGUEL"
	CostItemAssinaturas CostItemType = "ASSINATURAS"
	CostItemImpostoDAS  CostItemType = "IMPOSTO_DAS"
	CostItemOutro       CostItemType = "OUTRO"
)

type CostItem struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Type          CostItemType    `json:"type"`
	AmountMonthly decimal.Decimal `json:"amountMonthly"`
	Active        bool            `json:"active"`
}

type CostItemData struct {
	Description   string          `json:"description"`
	Type          CostItemType    `json:"type"`
	AmountMonthly decimal.Decimal `json:"amountMonthly"`
	Active        bool            `json:"active"`
}

type PricingMethod string

const (
	PricingMethodMarkup PricingMethod = "MARKUP"
	PricingMethodMargin PricingMethod = "MARGIN"
)

type RoundingRule string

const (
	RoundingNone     RoundingRule = "NONE"
	RoundingUpTo0_50 RoundingRule = "UP_TO_0_50"
	RoundingUpTo0_90 RoundingRule = "UP_TO_0_90"
	RoundingUpTo0_99 RoundingRule = "UP_TO_0_99"
)

type PricingProfile struct {
	ID string `json:"id"`
	PricingProfileData
}

type PricingProfileData struct {
	Name               string           `json:"name"`
	Method             PricingMethod    `json:"method"`
	Markup             *decimal.Decimal `json:"markup"`
	MarginOnPrice      *decimal.Decimal `json:"marginOnPrice"`
	MachineFeePct      decimal.Decimal  `json:"machineFeePct"`
	MarketplaceFeePct  decimal.Decimal  `json:"marketplaceFeePct"`
	OtherFeesPct       decimal.Decimal  `json:"otherFeesPct"`
	MonthlySalesTarget int              `json:"monthlySalesTarget"`
	RoundingRule       RoundingRule     `json:"roundingRule"`
}

type Sale struct {
	ID             string          `json:"id"`
	SaleDate       string          `json:"saleDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalNetProfit decimal.Decimal `json:"totalNetProfit"`
	Customer       Customer        `json:"customer"`
	Items          []SaleItem      `json:"items"`
}

type SaleItem struct {
	ID             string          `json:"id,omitempty"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	UnitCostAtSale decimal.Decimal `json:"unitCostAtSale"`
	NetProfit      decimal.Decimal `json:"netProfit"`
}

type SaleItemData struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type SaleData struct {
	CustomerPhoneNumber string         `json:"customerPhoneNumber"`
	Items               []SaleItemData `json:"items"`
}

type SimulationRequest struct {
	ProductID string         `json:"productId"`
	ProfileID string         `json:"profileId"`
	Override  map[string]any `json:"override,omitempty"`
}

type CostBreakdown struct {
	PurchaseCost      decimal.Decimal `json:"purchaseCost"`
	PackagingCost     decimal.Decimal `json:"packagingCost"`
	OtherVariableCost decimal.Decimal `json:"otherVariableCost"`
	FreightCostUnit   decimal.Decimal `json:"freightCostUnit"`
	DirectCostUnit    decimal.Decimal `json:"directCostUnit"`
	IndirectCostUnit  decimal.Decimal `json:"indirectCostUnit"`
	TotalCostUnit     decimal.Decimal `json:"totalCostUnit"`
	FeesValue         decimal.Decimal `json:"feesValue"`
	CostPlusFees      decimal.Decimal `json:"costPlusFees"`
}

type ProfitDetails struct {
	NetProfitPerUnit    decimal.Decimal `json:"netProfitPerUnit"`
	NetProfitPercentage decimal.Decimal `json:"netProfitPercentage"`
	MarkupOnTotalCost   decimal.Decimal `json:"markupOnTotalCost"`
}

type MonthlyProjection struct {
	Revenue           decimal.Decimal `json:"revenue"`
	TotalDirectCost   decimal.Decimal `json:"totalDirectCost"`
	TotalIndirectCost decimal.Decimal `json:"totalIndirectCost"`
	TotalFees         decimal.Decimal `json:"totalFees"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// SimulationResponse is computed by the API; this module only carries it.
type SimulationResponse struct {
	SuggestedPrice    decimal.Decimal   `json:"suggestedPrice"`
	BreakEvenUnits    int               `json:"breakEvenUnits"`
	CostBreakdown     CostBreakdown     `json:"costBreakdown"`
	ProfitDetails     ProfitDetails     `json:"profitDetails"`
	MonthlyProjection MonthlyProjection `json:"monthlyProjection"`
}

type DashboardMetrics struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalNetProfit decimal.Decimal `json:"totalNetProfit"`
	ProductCount   int64           `json:"productCount"`
	CustomerCount  int64           `json:"customerCount"`
}

type ChartDataPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AIAnswer struct {
	Answer string `json:"answer"`
}
