package aggregating

import (
	"cmp"
	"slices"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// TopSellers soma a quantidade por ProductName e retorna os n mais vendidos.
// Empates são resolvidos pelo nome para manter o resultado determinístico.
func TopSellers(derived []domain.DerivedSale, n int) []domain.TopSeller {
	totals := make(map[string]int64)
	for _, row := range derived {
		if !row.Matched {
			continue
		}
		totals[row.ProductName] += row.Quantity
	}

	sellers := make([]domain.TopSeller, 0, len(totals))
	for name, quantity := range totals {
		sellers = append(sellers, domain.TopSeller{ProductName: name, Quantity: quantity})
	}

	slices.SortFunc(sellers, func(a, b domain.TopSeller) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductName, b.ProductName)
	})

	if n >= 0 && len(sellers) > n {
		sellers = sellers[:n]
	}

	return sellers
}
