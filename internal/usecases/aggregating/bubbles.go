package aggregating

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type productKey struct {
	id   int
	name string
}

// ProductBubbles soma quantidade e lucro por (ProductId, ProductName) e depois por ProductName
func ProductBubbles(derived []domain.DerivedSale, maxSize float64) []domain.ProductBubble {
	byProduct := make(map[productKey]*domain.ProductBubble)
	for _, row := range derived {
		if !row.Matched {
			continue
		}

		key := productKey{id: row.ProductID, name: row.ProductName}
		b, ok := byProduct[key]
		if !ok {
			b = &domain.ProductBubble{ProductName: row.ProductName, Profit: decimal.Zero}
			byProduct[key] = b
		}
		b.Quantity += row.Quantity
		b.Profit = b.Profit.Add(row.Profit)
	}

	byName := make(map[string]*domain.ProductBubble)
	for _, b := range byProduct {
		merged, ok := byName[b.ProductName]
		if !ok {
			merged = &domain.ProductBubble{ProductName: b.ProductName, Profit: decimal.Zero}
			byName[b.ProductName] = merged
		}
		merged.Quantity += b.Quantity
		merged.Profit = merged.Profit.Add(b.Profit)
	}

	return finishBubbles(byName, maxSize)
}

// ProductYearTotals soma quantidade e lucro por (ProductId, ProductName, Year)
func ProductYearTotals(derived []domain.DerivedSale) []domain.ProductYearTotal {
	type key struct {
		id   int
		name string
		year int
	}

	index := make(map[key]int)
	totals := make([]domain.ProductYearTotal, 0)
	for _, row := range derived {
		if !row.Matched {
			continue
		}

		k := key{id: row.ProductID, name: row.ProductName, year: row.Year}
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, domain.ProductYearTotal{
				ProductID:   row.ProductID,
				ProductName: row.ProductName,
				Year:        row.Year,
				Profit:      decimal.Zero,
			})
		}
		totals[i].Quantity += row.Quantity
		totals[i].Profit = totals[i].Profit.Add(row.Profit)
	}

	slices.SortFunc(totals, func(a, b domain.ProductYearTotal) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ProductName, b.ProductName); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})

	return totals
}

// ProductBubblesByYear filtra as somas do ano e reagrupa por ProductName.
// Um ano sem vendas resulta numa lista vazia.
func ProductBubblesByYear(totals []domain.ProductYearTotal, year int, maxSize float64) []domain.ProductBubble {
	byName := make(map[string]*domain.ProductBubble)
	for _, t := range totals {
		if t.Year != year {
			continue
		}

		b, ok := byName[t.ProductName]
		if !ok {
			b = &domain.ProductBubble{ProductName: t.ProductName, Year: year, Profit: decimal.Zero}
			byName[t.ProductName] = b
		}
		b.Quantity += t.Quantity
		b.Profit = b.Profit.Add(t.Profit)
	}

	return finishBubbles(byName, maxSize)
}

// AvailableYears lista os anos com vendas de produtos do catálogo, em ordem crescente
func AvailableYears(totals []domain.ProductYearTotal) []int {
	years := make([]int, 0, len(totals))
	for _, row := range totals {
		years = append(years, row.Year)
	}
	slices.Sort(years)
	return slices.Compact(years)
}

// MarkerSizes calcula |lucro| / max|lucro| * maxSize; quando o máximo é zero todos os tamanhos são zero
func MarkerSizes(profits []decimal.Decimal, maxSize float64) []float64 {
	sizes := make([]float64, len(profits))

	maxAbs := decimal.Zero
	for _, p := range profits {
		if p.Abs().GreaterThan(maxAbs) {
			maxAbs = p.Abs()
		}
	}
	if maxAbs.IsZero() {
		return sizes
	}

	scale := decimal.NewFromFloat(maxSize)
	for i, p := range profits {
		sizes[i] = p.Abs().Div(maxAbs).Mul(scale).InexactFloat64()
	}

	return sizes
}

func finishBubbles(byName map[string]*domain.ProductBubble, maxSize float64) []domain.ProductBubble {
	bubbles := make([]domain.ProductBubble, 0, len(byName))
	for _, b := range byName {
		bubbles = append(bubbles, *b)
	}

	slices.SortFunc(bubbles, func(a, b domain.ProductBubble) int {
		return cmp.Compare(a.ProductName, b.ProductName)
	})

	profits := make([]decimal.Decimal, len(bubbles))
	for i, b := range bubbles {
		profits[i] = b.Profit
	}

	for i, size := range MarkerSizes(profits, maxSize) {
		bubbles[i].MarkerSize = size
	}

	return bubbles
}
