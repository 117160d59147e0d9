package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma linha de transação de venda
type Sale struct {
	ProductID int             `json:"product_id"`
	Date      time.Time       `json:"date"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// SaleKey identifica a linha inteira de uma venda
type SaleKey struct {
	ProductID int
	Date      string
	UnitPrice string
	Quantity  int64
}

func (s Sale) Key() SaleKey {
	return SaleKey{
		ProductID: s.ProductID,
		Date:      s.Date.Format(time.DateOnly),
		UnitPrice: s.UnitPrice.String(),
		Quantity:  s.Quantity,
	}
}

// Revenue é o preço unitário multiplicado pela quantidade
func (s Sale) Revenue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(s.Quantity))
}

// DerivedSale é uma venda enriquecida com os dados do produto e os campos calculados.
// Quando Matched é falso o produto não foi encontrado e Profit não deve ser somado.
type DerivedSale struct {
	Sale
	ProductName string          `json:"product_name,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	ProductCost decimal.Decimal `json:"product_cost"`
	Matched     bool            `json:"matched"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
	Month       string          `json:"month"`
	MonthNum    int             `json:"month_num"`
	Year        int             `json:"year"`
}

// Period retorna o mês da venda no formato yyyy-mm
func (d DerivedSale) Period() string {
	return PeriodOf(d.Date)
}

// PeriodOf formata uma data como período mensal yyyy-mm
func PeriodOf(date time.Time) string {
	return date.Format("2006-01")
}
