package domain

import (
	"github.com/shopspring/decimal"
)

// TopSeller é um produto do ranking de mais vendidos
type TopSeller struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// PriceBin é uma faixa do histograma de preço unitário, [Start, End)
type PriceBin struct {
	Start decimal.Decimal `json:"start"`
	End   decimal.Decimal `json:"end"`
	Count int             `json:"count"`
}

// PriceDistribution é o histograma de preços únicos por produto
type PriceDistribution struct {
	Start    decimal.Decimal `json:"start"`
	End      decimal.Decimal `json:"end"`
	BinWidth decimal.Decimal `json:"bin_width"`
	Bins     []PriceBin      `json:"bins"`
	Outside  int             `json:"outside"` // Preços fora do intervalo do histograma
}

// MonthlyValue é um ponto de uma série mensal
type MonthlyValue struct {
	Period string          `json:"period"` // Formato yyyy-mm
	Value  decimal.Decimal `json:"value"`
}

// MonthlyTrend combina volume, faturamento e lucro de um mês
type MonthlyTrend struct {
	Period   string          `json:"period"` // Formato yyyy-mm
	Month    string          `json:"month"`
	MonthNum int             `json:"month_num"`
	Year     int             `json:"year"`
	Quantity int64           `json:"quantity"`
	Turnover decimal.Decimal `json:"turnover"`
	Profit   decimal.Decimal `json:"profit"`
}

// ProductProfit é o lucro acumulado de um ProductId dentro de um fornecedor
type ProductProfit struct {
	ProductID int             `json:"product_id"`
	Profit    decimal.Decimal `json:"profit"`
}

// SupplierProfit agrupa o lucro por produto de um fornecedor
type SupplierProfit struct {
	Supplier    string          `json:"supplier"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	Products    []ProductProfit `json:"products"`
}

// ProductBubble é um ponto do gráfico de bolhas de lucro x quantidade
type ProductBubble struct {
	ProductName string          `json:"product_name"`
	Year        int             `json:"year,omitempty"`
	Quantity    int64           `json:"quantity"`
	Profit      decimal.Decimal `json:"profit"`
	MarkerSize  float64         `json:"marker_size"`
}

// ProductYearTotal é a soma por (ProductId, ProductName, Year), base do gráfico filtrado por ano
type ProductYearTotal struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Year        int             `json:"year"`
	Quantity    int64           `json:"quantity"`
	Profit      decimal.Decimal `json:"profit"`
}

// YearSelection é o estado do seletor de ano: Default indica o estado inicial (menor ano)
type YearSelection struct {
	Year    int             `json:"year"`
	Default bool            `json:"default"`
	Years   []int           `json:"years"`
	Bubbles []ProductBubble `json:"bubbles"`
}

// Report reúne todos os agregados exibidos no painel
type Report struct {
	TopSellers        []TopSeller       `json:"top_sellers"`
	PriceDistribution PriceDistribution `json:"price_distribution"`
	MonthlyTrends     []MonthlyTrend    `json:"monthly_trends"`
	SupplierProfit    []SupplierProfit  `json:"supplier_profit"`
	ProductBubbles    []ProductBubble   `json:"product_bubbles"`
	YearSelection     YearSelection     `json:"year_selection"`
}
