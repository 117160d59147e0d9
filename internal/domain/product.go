// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/shopspring/decimal"
)

// Product representa uma linha do catálogo de produtos
type Product struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Supplier    string          `json:"supplier"`
	ProductCost decimal.Decimal `json:"product_cost"`
}

// ProductKey identifica a linha inteira do catálogo
type ProductKey struct {
	ProductID   int
	ProductName string
	Supplier    string
	ProductCost string
}

// Key é usada para remover duplicatas exatas; o custo é comparado pelo valor decimal
func (p Product) Key() ProductKey {
	return ProductKey{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Supplier:    p.Supplier,
		ProductCost: p.ProductCost.String(),
	}
}
