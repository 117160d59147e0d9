package aggregating

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SupplierProfit soma o lucro por (Supplier, ProductId) e ordena os fornecedores pelo lucro total,
// do maior para o menor. Empates mantêm a ordem de primeira aparição nas vendas.
func SupplierProfit(derived []domain.DerivedSale) []domain.SupplierProfit {
	order := make([]string, 0)
	byProduct := make(map[string]map[int]decimal.Decimal)

	for _, row := range derived {
		if !row.Matched {
			continue
		}

		products, ok := byProduct[row.Supplier]
		if !ok {
			products = make(map[int]decimal.Decimal)
			byProduct[row.Supplier] = products
			order = append(order, row.Supplier)
		}
		products[row.ProductID] = products[row.ProductID].Add(row.Profit)
	}

	suppliers := make([]domain.SupplierProfit, 0, len(order))
	for _, supplier := range order {
		item := domain.SupplierProfit{
			Supplier:    supplier,
			TotalProfit: decimal.Zero,
			Products:    make([]domain.ProductProfit, 0, len(byProduct[supplier])),
		}

		for id, profit := range byProduct[supplier] {
			item.Products = append(item.Products, domain.ProductProfit{ProductID: id, Profit: profit})
		}
		slices.SortFunc(item.Products, func(a, b domain.ProductProfit) int {
			return cmp.Compare(a.ProductID, b.ProductID)
		})

		for _, p := range item.Products {
			item.TotalProfit = item.TotalProfit.Add(p.Profit)
		}

		suppliers = append(suppliers, item)
	}

	slices.SortStableFunc(suppliers, func(a, b domain.SupplierProfit) int {
		return b.TotalProfit.Cmp(a.TotalProfit)
	})

	return suppliers
}
