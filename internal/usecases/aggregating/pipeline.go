// Package aggregating contém a junção das vendas com o catálogo e os agregados exibidos no painel
package aggregating

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	DefaultTopSellersLimit = 5
	DefaultMaxMarkerSize   = 100
)

// Options parametriza os agregados
type Options struct {
	TopSellersLimit int
	PriceStart      decimal.Decimal
	PriceEnd        decimal.Decimal
	PriceBinWidth   decimal.Decimal
	MaxMarkerSize   float64
}

// DefaultOptions retorna os parâmetros do painel original: top 5, faixas de 0.5 entre 0 e 25, bolhas até 100
func DefaultOptions() Options {
	return Options{
		TopSellersLimit: DefaultTopSellersLimit,
		PriceStart:      decimal.Zero,
		PriceEnd:        decimal.NewFromInt(25),
		PriceBinWidth:   decimal.RequireFromString("0.5"),
		MaxMarkerSize:   DefaultMaxMarkerSize,
	}
}

// OptionsFromConfig converte a configuração de relatório em Options
func OptionsFromConfig(cfg config.Report) Options {
	return Options{
		TopSellersLimit: cfg.TopSellersLimit,
		PriceStart:      decimal.NewFromFloat(cfg.PriceHistogramStart),
		PriceEnd:        decimal.NewFromFloat(cfg.PriceHistogramEnd),
		PriceBinWidth:   decimal.NewFromFloat(cfg.PriceBinWidth),
		MaxMarkerSize:   cfg.BubbleMaxMarkerSize,
	}
}

func (o Options) validate() error {
	if !o.PriceBinWidth.IsPositive() {
		return ErrInvalidBinWidth
	}
	if o.PriceEnd.LessThanOrEqual(o.PriceStart) {
		return ErrInvalidPriceRange
	}
	if o.MaxMarkerSize < 0 {
		return ErrInvalidMarkerSize
	}
	return nil
}

// Pipeline guarda as tabelas carregadas e a tabela derivada. É imutável depois de criado
// e pode ser lido por várias requisições ao mesmo tempo.
type Pipeline struct {
	dataset      *domain.Dataset
	opts         Options
	derived      []domain.DerivedSale
	productYears []domain.ProductYearTotal
	years        []int
}

// NewPipeline faz a junção e pré-calcula as somas por produto e ano
func NewPipeline(dataset *domain.Dataset, opts Options) (*Pipeline, error) {
	if dataset == nil {
		return nil, ErrNilDataset
	}
	if opts.TopSellersLimit <= 0 {
		opts.TopSellersLimit = DefaultTopSellersLimit
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	derived := Derive(dataset.Products, dataset.Sales)
	productYears := ProductYearTotals(derived)

	return &Pipeline{
		dataset:      dataset,
		opts:         opts,
		derived:      derived,
		productYears: productYears,
		years:        AvailableYears(productYears),
	}, nil
}

func (p *Pipeline) Dataset() *domain.Dataset {
	return p.dataset
}

func (p *Pipeline) Options() Options {
	return p.opts
}

// Derived retorna uma cópia da tabela derivada
func (p *Pipeline) Derived() []domain.DerivedSale {
	return slices.Clone(p.derived)
}

// Years retorna os anos do seletor: apenas anos com vendas de produtos do catálogo
func (p *Pipeline) Years() []int {
	return slices.Clone(p.years)
}

func (p *Pipeline) TopSellers() []domain.TopSeller {
	return TopSellers(p.derived, p.opts.TopSellersLimit)
}

func (p *Pipeline) PriceDistribution() domain.PriceDistribution {
	return PriceDistribution(p.dataset.Sales, p.opts.PriceStart, p.opts.PriceEnd, p.opts.PriceBinWidth)
}

func (p *Pipeline) MonthlyTrends() []domain.MonthlyTrend {
	return MonthlyTrends(p.dataset.Sales, p.derived)
}

func (p *Pipeline) SupplierProfit() []domain.SupplierProfit {
	return SupplierProfit(p.derived)
}

func (p *Pipeline) ProductBubbles() []domain.ProductBubble {
	return ProductBubbles(p.derived, p.opts.MaxMarkerSize)
}

// YearSelection recalcula as bolhas de um ano. Sem ano informado, usa o menor ano disponível.
func (p *Pipeline) YearSelection(year *int) domain.YearSelection {
	selection := domain.YearSelection{
		Years:   p.Years(),
		Bubbles: []domain.ProductBubble{},
	}

	if year == nil {
		if len(p.years) == 0 {
			selection.Default = true
			return selection
		}
		selection.Year = p.years[0]
		selection.Default = true
	} else {
		selection.Year = *year
	}

	selection.Bubbles = ProductBubblesByYear(p.productYears, selection.Year, p.opts.MaxMarkerSize)
	return selection
}

// Report executa todos os agregados
func (p *Pipeline) Report() *domain.Report {
	return &domain.Report{
		TopSellers:        p.TopSellers(),
		PriceDistribution: p.PriceDistribution(),
		MonthlyTrends:     p.MonthlyTrends(),
		SupplierProfit:    p.SupplierProfit(),
		ProductBubbles:    p.ProductBubbles(),
		YearSelection:     p.YearSelection(nil),
	}
}
