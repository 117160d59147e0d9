package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// IndexProducts indexa o catálogo por ProductId
func IndexProducts(products []domain.Product) map[int]domain.Product {
	index := make(map[int]domain.Product, len(products))
	for _, p := range products {
		index[p.ProductID] = p
	}
	return index
}

// Derive junta cada venda ao seu produto (left join) e calcula receita, lucro e mês/ano.
// Vendas sem produto continuam na tabela com Matched=false e lucro zero.
func Derive(products []domain.Product, sales []domain.Sale) []domain.DerivedSale {
	index := IndexProducts(products)

	derived := make([]domain.DerivedSale, 0, len(sales))
	for _, sale := range sales {
		row := domain.DerivedSale{
			Sale:     sale,
			Revenue:  sale.Revenue(),
			Profit:   decimal.Zero,
			Month:    sale.Date.Month().String(),
			MonthNum: int(sale.Date.Month()),
			Year:     sale.Date.Year(),
		}

		if product, ok := index[sale.ProductID]; ok {
			row.Matched = true
			row.ProductName = product.ProductName
			row.Supplier = product.Supplier
			row.ProductCost = product.ProductCost
			// (UnitPrice - ProductCost) * Quantity
			row.Profit = sale.UnitPrice.Sub(product.ProductCost).Mul(decimal.NewFromInt(sale.Quantity))
		}

		derived = append(derived, row)
	}

	return derived
}
