package aggregating

import (
	"math/rand"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fixtureDataset() *domain.Dataset {
	return &domain.Dataset{
		SnapshotID: "snap000001",
		Products: []domain.Product{
			{ProductID: 1, ProductName: "Widget", Supplier: "Acme", ProductCost: dec("2.00")},
			{ProductID: 2, ProductName: "Gadget", Supplier: "Globex", ProductCost: dec("10.00")},
			{ProductID: 3, ProductName: "Widget", Supplier: "Globex", ProductCost: dec("1.00")},
			{ProductID: 4, ProductName: "Doohickey", Supplier: "Initech", ProductCost: dec("4.00")},
		},
		Sales: []domain.Sale{
			{ProductID: 1, Date: day(2020, time.January, 1), UnitPrice: dec("5.00"), Quantity: 3},
			{ProductID: 2, Date: day(2020, time.January, 15), UnitPrice: dec("12.00"), Quantity: 2},
			{ProductID: 3, Date: day(2020, time.February, 3), UnitPrice: dec("1.50"), Quantity: 10},
			{ProductID: 99, Date: day(2020, time.February, 4), UnitPrice: dec("7.00"), Quantity: 100},
			{ProductID: 4, Date: day(2021, time.March, 9), UnitPrice: dec("3.00"), Quantity: 4},
			{ProductID: 1, Date: day(2021, time.March, 10), UnitPrice: dec("5.50"), Quantity: 1},
		},
	}
}

func newFixturePipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(fixtureDataset(), DefaultOptions())
	require.NoError(t, err)
	return p
}

func TestDerive_WidgetScenario(t *testing.T) {
	products := []domain.Product{{ProductID: 1, ProductName: "Widget", Supplier: "Acme", ProductCost: dec("2.00")}}
	sales := []domain.Sale{{ProductID: 1, Date: day(2020, time.January, 1), UnitPrice: dec("5.00"), Quantity: 3}}

	derived := Derive(products, sales)
	require.Len(t, derived, 1)

	row := derived[0]
	assert.True(t, row.Matched)
	assert.True(t, row.Revenue.Equal(dec("15.00")), "receita: %s", row.Revenue)
	assert.True(t, row.Profit.Equal(dec("9.00")), "lucro: %s", row.Profit)
	assert.Equal(t, "January", row.Month)
	assert.Equal(t, 1, row.MonthNum)
	assert.Equal(t, 2020, row.Year)
	assert.Equal(t, "Acme", row.Supplier)

	assert.Equal(t, []domain.TopSeller{{ProductName: "Widget", Quantity: 3}}, TopSellers(derived, 5))
}

func TestDerive_UnmatchedSale(t *testing.T) {
	derived := Derive(nil, []domain.Sale{{ProductID: 99, Date: day(2020, time.June, 1), UnitPrice: dec("2"), Quantity: 4}})
	require.Len(t, derived, 1)

	assert.False(t, derived[0].Matched)
	assert.True(t, derived[0].Revenue.Equal(dec("8")))
	assert.True(t, derived[0].Profit.IsZero())
	assert.Empty(t, derived[0].ProductName)
}

func TestNewPipeline(t *testing.T) {
	tests := []struct {
		name    string
		dataset *domain.Dataset
		opts    func(o *Options)
		wantErr error
	}{
		{
			name:    "Dataset nulo - deve falhar",
			dataset: nil,
			wantErr: ErrNilDataset,
		},
		{
			name:    "Largura zero - deve falhar",
			dataset: fixtureDataset(),
			opts:    func(o *Options) { o.PriceBinWidth = decimal.Zero },
			wantErr: ErrInvalidBinWidth,
		},
		{
			name:    "Intervalo invertido - deve falhar",
			dataset: fixtureDataset(),
			opts:    func(o *Options) { o.PriceEnd = dec("-1") },
			wantErr: ErrInvalidPriceRange,
		},
		{
			name:    "Tamanho de marcador negativo - deve falhar",
			dataset: fixtureDataset(),
			opts:    func(o *Options) { o.MaxMarkerSize = -1 },
			wantErr: ErrInvalidMarkerSize,
		},
		{
			name:    "Limite zerado - deve usar o padrão",
			dataset: fixtureDataset(),
			opts:    func(o *Options) { o.TopSellersLimit = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}

			p, err := NewPipeline(tt.dataset, opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, DefaultTopSellersLimit, p.Options().TopSellersLimit)
		})
	}
}

func TestTopSellers(t *testing.T) {
	p := newFixturePipeline(t)

	// Widget soma os ProductIds 1 e 3; a venda do ProductId 99 não entra
	assert.Equal(t, []domain.TopSeller{
		{ProductName: "Widget", Quantity: 14},
		{ProductName: "Doohickey", Quantity: 4},
		{ProductName: "Gadget", Quantity: 2},
	}, p.TopSellers())

	assert.Equal(t, []domain.TopSeller{{ProductName: "Widget", Quantity: 14}}, TopSellers(p.derived, 1))
}

func TestTopSellers_QuantityConservation(t *testing.T) {
	p := newFixturePipeline(t)

	expected := make(map[string]int64)
	for _, row := range p.Derived() {
		if row.Matched {
			expected[row.ProductName] += row.Quantity
		}
	}

	for _, seller := range TopSellers(p.derived, len(expected)) {
		assert.Equal(t, expected[seller.ProductName], seller.Quantity, seller.ProductName)
	}
}

func TestTopSellers_TiesByName(t *testing.T) {
	derived := []domain.DerivedSale{
		{Matched: true, ProductName: "Zeta", Sale: domain.Sale{Quantity: 5}},
		{Matched: true, ProductName: "Alpha", Sale: domain.Sale{Quantity: 5}},
	}

	assert.Equal(t, []domain.TopSeller{
		{ProductName: "Alpha", Quantity: 5},
		{ProductName: "Zeta", Quantity: 5},
	}, TopSellers(derived, 5))
}

func TestPriceDistribution(t *testing.T) {
	p := newFixturePipeline(t)
	dist := p.PriceDistribution()

	require.Len(t, dist.Bins, 50)
	assert.True(t, dist.Bins[0].Start.IsZero())
	assert.True(t, dist.Bins[49].End.Equal(dec("25")))

	counts := make(map[string]int)
	total := 0
	for _, bin := range dist.Bins {
		if bin.Count > 0 {
			counts[bin.Start.String()] = bin.Count
		}
		total += bin.Count
	}

	// Preço da primeira venda de cada ProductId: 5.00, 12.00, 1.50, 7.00 (id 99), 3.00
	assert.Equal(t, map[string]int{"5": 1, "12": 1, "1.5": 1, "7": 1, "3": 1}, counts)
	assert.Equal(t, 5, total)
	assert.Zero(t, dist.Outside)
}

func TestPriceDistribution_Outside(t *testing.T) {
	sales := []domain.Sale{
		{ProductID: 1, UnitPrice: dec("25")},
		{ProductID: 2, UnitPrice: dec("24.99")},
		{ProductID: 3, UnitPrice: dec("0")},
		{ProductID: 3, UnitPrice: dec("30")}, // mesmo produto, ignorado
	}

	dist := PriceDistribution(sales, decimal.Zero, dec("25"), dec("0.5"))
	assert.Equal(t, 1, dist.Outside)
	assert.Equal(t, 1, dist.Bins[0].Count)
	assert.Equal(t, 1, dist.Bins[49].Count)
}

func TestMonthlyTrends(t *testing.T) {
	p := newFixturePipeline(t)
	trends := p.MonthlyTrends()

	require.Len(t, trends, 3)
	assert.Equal(t, []string{"2020-01", "2020-02", "2021-03"}, []string{trends[0].Period, trends[1].Period, trends[2].Period})

	// Volume inclui a venda sem produto; lucro não
	assert.Equal(t, int64(110), trends[1].Quantity)
	assert.True(t, trends[1].Turnover.Equal(dec("715")), "faturamento: %s", trends[1].Turnover)
	assert.True(t, trends[1].Profit.Equal(dec("5")), "lucro: %s", trends[1].Profit)
	assert.Equal(t, "February", trends[1].Month)
	assert.Equal(t, 2, trends[1].MonthNum)
	assert.Equal(t, 2020, trends[1].Year)

	// Janeiro: 5*3 + 12*2 = 39; lucro 9 + 4 = 13
	assert.True(t, trends[0].Turnover.Equal(dec("39")))
	assert.True(t, trends[0].Profit.Equal(dec("13")))
}

func TestMonthlyProfit_UnmatchedOnlyMonth(t *testing.T) {
	derived := Derive(nil, []domain.Sale{{ProductID: 99, Date: day(2022, time.May, 2), UnitPrice: dec("3"), Quantity: 1}})

	profit := MonthlyProfit(derived)
	require.Len(t, profit, 1)
	assert.Equal(t, "2022-05", profit[0].Period)
	assert.True(t, profit[0].Value.IsZero())
}

func TestMonthlyTurnover_OrderIndependent(t *testing.T) {
	dataset := fixtureDataset()
	expected := MonthlyTurnover(Derive(dataset.Products, dataset.Sales))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]domain.Sale(nil), dataset.Sales...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := MonthlyTurnover(Derive(dataset.Products, shuffled))
		require.Len(t, got, len(expected))
		for j := range expected {
			assert.Equal(t, expected[j].Period, got[j].Period)
			assert.True(t, expected[j].Value.Equal(got[j].Value))
		}
	}

	// Faturamento = soma de UnitPrice*Quantity das vendas do mês
	sum := decimal.Zero
	for _, sale := range dataset.Sales {
		if domain.PeriodOf(sale.Date) == "2021-03" {
			sum = sum.Add(sale.UnitPrice.Mul(decimal.NewFromInt(sale.Quantity)))
		}
	}
	assert.True(t, expected[2].Value.Equal(sum))
}

func TestSupplierProfit(t *testing.T) {
	p := newFixturePipeline(t)
	suppliers := p.SupplierProfit()

	require.Len(t, suppliers, 3)

	// Acme: 9 + 3.5 = 12.5; Globex: 4 + 5 = 9; Initech: -4
	assert.Equal(t, "Acme", suppliers[0].Supplier)
	assert.True(t, suppliers[0].TotalProfit.Equal(dec("12.5")))
	assert.Equal(t, "Globex", suppliers[1].Supplier)
	assert.Equal(t, []int{2, 3}, []int{suppliers[1].Products[0].ProductID, suppliers[1].Products[1].ProductID})
	assert.Equal(t, "Initech", suppliers[2].Supplier)
	assert.True(t, suppliers[2].TotalProfit.Equal(dec("-4")))

	for i := 1; i < len(suppliers); i++ {
		assert.True(t, suppliers[i-1].TotalProfit.GreaterThan(suppliers[i].TotalProfit))
	}
}

func TestSupplierProfit_StableTies(t *testing.T) {
	derived := []domain.DerivedSale{
		{Matched: true, Supplier: "Zeta", Sale: domain.Sale{ProductID: 1}, Profit: dec("10")},
		{Matched: true, Supplier: "Alpha", Sale: domain.Sale{ProductID: 2}, Profit: dec("10")},
		{Matched: true, Supplier: "Mid", Sale: domain.Sale{ProductID: 3}, Profit: dec("20")},
		{Matched: false, Supplier: "", Sale: domain.Sale{ProductID: 99}, Profit: dec("999")},
	}

	suppliers := SupplierProfit(derived)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "Mid", suppliers[0].Supplier)
	assert.Equal(t, "Zeta", suppliers[1].Supplier)
	assert.Equal(t, "Alpha", suppliers[2].Supplier)
}

func TestProductBubbles(t *testing.T) {
	p := newFixturePipeline(t)
	bubbles := p.ProductBubbles()

	require.Len(t, bubbles, 3)
	assert.Equal(t, "Doohickey", bubbles[0].ProductName)
	assert.Equal(t, "Gadget", bubbles[1].ProductName)
	assert.Equal(t, "Widget", bubbles[2].ProductName)

	// Widget: ProductIds 1 e 3 somados, 9 + 3.5 + 5 = 17.5, o maior lucro absoluto
	assert.Equal(t, int64(14), bubbles[2].Quantity)
	assert.True(t, bubbles[2].Profit.Equal(dec("17.5")))
	assert.InDelta(t, 100.0, bubbles[2].MarkerSize, 1e-9)
	assert.InDelta(t, 4.0/17.5*100, bubbles[0].MarkerSize, 1e-9)
	assert.Zero(t, bubbles[0].Year)
}

func TestMarkerSizes(t *testing.T) {
	assert.Equal(t, []float64{0, 0}, MarkerSizes([]decimal.Decimal{decimal.Zero, decimal.Zero}, 100))
	assert.Equal(t, []float64{}, MarkerSizes(nil, 100))
	assert.Equal(t, []float64{100, 50}, MarkerSizes([]decimal.Decimal{dec("-10"), dec("5")}, 100))
}

func TestYearSelection(t *testing.T) {
	p := newFixturePipeline(t)

	t.Run("Sem ano - deve usar o menor ano", func(t *testing.T) {
		selection := p.YearSelection(nil)
		assert.True(t, selection.Default)
		assert.Equal(t, 2020, selection.Year)
		assert.Equal(t, []int{2020, 2021}, selection.Years)
		require.Len(t, selection.Bubbles, 2)
		assert.Equal(t, "Gadget", selection.Bubbles[0].ProductName)
		assert.Equal(t, "Widget", selection.Bubbles[1].ProductName)
		assert.Equal(t, int64(13), selection.Bubbles[1].Quantity)
	})

	t.Run("Ano sem vendas - deve retornar lista vazia", func(t *testing.T) {
		year := 1999
		selection := p.YearSelection(&year)
		assert.False(t, selection.Default)
		assert.Equal(t, 1999, selection.Year)
		assert.NotNil(t, selection.Bubbles)
		assert.Empty(t, selection.Bubbles)
	})

	t.Run("Dataset vazio - estado inicial sem anos", func(t *testing.T) {
		empty, err := NewPipeline(&domain.Dataset{}, DefaultOptions())
		require.NoError(t, err)

		selection := empty.YearSelection(nil)
		assert.True(t, selection.Default)
		assert.Empty(t, selection.Years)
		assert.Empty(t, selection.Bubbles)
	})
}

func TestYearSelection_UnmatchedOnlyYear(t *testing.T) {
	dataset := &domain.Dataset{
		Products: []domain.Product{
			{ProductID: 1, ProductName: "Widget", Supplier: "Acme", ProductCost: dec("2.00")},
		},
		Sales: []domain.Sale{
			{ProductID: 99, Date: day(2017, time.May, 2), UnitPrice: dec("7.00"), Quantity: 4},
			{ProductID: 1, Date: day(2018, time.June, 8), UnitPrice: dec("5.00"), Quantity: 3},
		},
	}

	p, err := NewPipeline(dataset, DefaultOptions())
	require.NoError(t, err)

	// 2017 só tem venda sem produto e não entra no seletor
	assert.Equal(t, []int{2018}, p.Years())

	selection := p.YearSelection(nil)
	assert.True(t, selection.Default)
	assert.Equal(t, 2018, selection.Year)
	require.Len(t, selection.Bubbles, 1)
	assert.Equal(t, "Widget", selection.Bubbles[0].ProductName)
	assert.True(t, dec("9").Equal(selection.Bubbles[0].Profit))
}

func TestProductBubblesByYear_Subset(t *testing.T) {
	p := newFixturePipeline(t)

	for _, year := range p.Years() {
		expected := make(map[string]domain.ProductBubble)
		for _, row := range p.productYears {
			if row.Year != year {
				continue
			}
			b := expected[row.ProductName]
			b.ProductName = row.ProductName
			b.Year = year
			b.Quantity += row.Quantity
			b.Profit = b.Profit.Add(row.Profit)
			expected[row.ProductName] = b
		}

		got := ProductBubblesByYear(p.productYears, year, DefaultMaxMarkerSize)
		require.Len(t, got, len(expected))
		for _, b := range got {
			want := expected[b.ProductName]
			assert.Equal(t, want.Quantity, b.Quantity)
			assert.True(t, want.Profit.Equal(b.Profit))
			assert.Equal(t, year, b.Year)
		}
	}
}

func TestReport_Idempotent(t *testing.T) {
	first, err := NewPipeline(fixtureDataset(), DefaultOptions())
	require.NoError(t, err)
	second, err := NewPipeline(fixtureDataset(), DefaultOptions())
	require.NoError(t, err)

	a, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(first.Report())
	require.NoError(t, err)
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(second.Report())
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}
