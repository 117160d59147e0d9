package aggregating

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MonthlyVolume soma a quantidade vendida por mês. Não depende do catálogo.
func MonthlyVolume(sales []domain.Sale) []domain.MonthlyValue {
	totals := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		period := domain.PeriodOf(sale.Date)
		totals[period] = totals[period].Add(decimal.NewFromInt(sale.Quantity))
	}
	return sortedSeries(totals)
}

// MonthlyTurnover soma a receita (UnitPrice * Quantity) por mês, inclusive de vendas sem produto
func MonthlyTurnover(derived []domain.DerivedSale) []domain.MonthlyValue {
	totals := make(map[string]decimal.Decimal)
	for _, row := range derived {
		period := row.Period()
		totals[period] = totals[period].Add(row.Revenue)
	}
	return sortedSeries(totals)
}

// MonthlyProfit soma o lucro por mês apenas das vendas com produto; meses sem venda casada valem zero
func MonthlyProfit(derived []domain.DerivedSale) []domain.MonthlyValue {
	totals := make(map[string]decimal.Decimal)
	for _, row := range derived {
		period := row.Period()
		if !row.Matched {
			totals[period] = totals[period].Add(decimal.Zero)
			continue
		}
		totals[period] = totals[period].Add(row.Profit)
	}
	return sortedSeries(totals)
}

// MonthlyTrends junta volume, faturamento e lucro numa única série cronológica
func MonthlyTrends(sales []domain.Sale, derived []domain.DerivedSale) []domain.MonthlyTrend {
	byPeriod := make(map[string]*domain.MonthlyTrend)
	trend := func(period string) *domain.MonthlyTrend {
		t, ok := byPeriod[period]
		if !ok {
			t = &domain.MonthlyTrend{Period: period, Turnover: decimal.Zero, Profit: decimal.Zero}
			byPeriod[period] = t
		}
		return t
	}

	for _, sale := range sales {
		t := trend(domain.PeriodOf(sale.Date))
		t.Quantity += sale.Quantity
		t.Month = sale.Date.Month().String()
		t.MonthNum = int(sale.Date.Month())
		t.Year = sale.Date.Year()
	}

	for _, v := range MonthlyTurnover(derived) {
		trend(v.Period).Turnover = v.Value
	}

	for _, v := range MonthlyProfit(derived) {
		trend(v.Period).Profit = v.Value
	}

	periods := sortedKeys(byPeriod)
	trends := make([]domain.MonthlyTrend, 0, len(periods))
	for _, period := range periods {
		trends = append(trends, *byPeriod[period])
	}

	return trends
}

func sortedSeries(totals map[string]decimal.Decimal) []domain.MonthlyValue {
	series := make([]domain.MonthlyValue, 0, len(totals))
	for _, period := range sortedKeys(totals) {
		series = append(series, domain.MonthlyValue{Period: period, Value: totals[period]})
	}
	return series
}

// yyyy-mm ordena lexicograficamente na ordem cronológica
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
