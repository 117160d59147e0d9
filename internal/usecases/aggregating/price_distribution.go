package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// UniqueProductPrices retorna o preço unitário da primeira venda de cada ProductId
func UniqueProductPrices(sales []domain.Sale) []decimal.Decimal {
	seen := make(map[int]struct{}, len(sales))
	prices := make([]decimal.Decimal, 0)
	for _, sale := range sales {
		if _, ok := seen[sale.ProductID]; ok {
			continue
		}
		seen[sale.ProductID] = struct{}{}
		prices = append(prices, sale.UnitPrice)
	}
	return prices
}

// PriceDistribution monta o histograma dos preços únicos por produto em faixas [início, fim).
// Faixas vazias são mantidas; preços fora de [start, end) são contados em Outside.
func PriceDistribution(sales []domain.Sale, start, end, width decimal.Decimal) domain.PriceDistribution {
	dist := domain.PriceDistribution{
		Start:    start,
		End:      end,
		BinWidth: width,
		Bins:     []domain.PriceBin{},
	}

	if !width.IsPositive() || end.LessThanOrEqual(start) {
		return dist
	}

	count := int(end.Sub(start).Div(width).Ceil().IntPart())
	for i := 0; i < count; i++ {
		binStart := start.Add(width.Mul(decimal.NewFromInt(int64(i))))
		binEnd := binStart.Add(width)
		if binEnd.GreaterThan(end) {
			binEnd = end
		}
		dist.Bins = append(dist.Bins, domain.PriceBin{Start: binStart, End: binEnd})
	}

	for _, price := range UniqueProductPrices(sales) {
		if price.LessThan(start) || price.GreaterThanOrEqual(end) {
			dist.Outside++
			continue
		}

		i := int(price.Sub(start).Div(width).Floor().IntPart())
		if i >= count {
			i = count - 1
		}
		dist.Bins[i].Count++
	}

	return dist
}
