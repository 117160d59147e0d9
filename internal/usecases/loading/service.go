package loading

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Loader carrega o par de tabelas que alimenta o painel
type Loader interface {
	// Load lê produtos e vendas; qualquer falha invalida o carregamento inteiro
	Load(ctx context.Context) (*domain.Dataset, error)

	// Sources retorna a origem das tabelas de produtos e de vendas
	Sources() (products string, sales string)
}

type Service struct {
	productRepository repository.ProductRepository
	saleRepository    repository.SaleRepository
	now               func() time.Time
}

func NewService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) Loader {
	return &Service{
		productRepository: productRepo,
		saleRepository:    saleRepo,
		now:               time.Now,
	}
}

func (s *Service) Sources() (string, string) {
	return s.productRepository.Source(), s.saleRepository.Source()
}

func (s *Service) Load(ctx context.Context) (*domain.Dataset, error) {
	var (
		products     []domain.Product
		sales        []domain.Sale
		productStats domain.SourceStats
		saleStats    domain.SourceStats
	)

	startedAt := time.Now()

	// As duas fontes são independentes; a primeira falha cancela a outra
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		products, productStats, err = s.productRepository.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoadProducts, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		sales, saleStats, err = s.saleRepository.ListSales(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoadSales, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshotID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerateSnapshotID, err)
	}

	dataset := &domain.Dataset{
		SnapshotID: snapshotID,
		LoadedAt:   s.now(),
		Products:   products,
		Sales:      sales,
		Stats: domain.LoadStats{
			ProductRows:       productStats.Rows,
			ProductDuplicates: productStats.Duplicates,
			SaleRows:          saleStats.Rows,
			SaleDuplicates:    saleStats.Duplicates,
			UnmatchedSales:    countUnmatched(products, sales),
			ProductsLoaded:    len(products),
			SalesLoaded:       len(sales),
		},
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":        dataset.SnapshotID,
		"products":           dataset.Stats.ProductsLoaded,
		"product_duplicates": dataset.Stats.ProductDuplicates,
		"sales":              dataset.Stats.SalesLoaded,
		"sale_duplicates":    dataset.Stats.SaleDuplicates,
		"unmatched_sales":    dataset.Stats.UnmatchedSales,
		"duration":           time.Since(startedAt).String(),
	}).Info("Dataset carregado")

	if dataset.Stats.UnmatchedSales > 0 {
		logrus.WithField("unmatched_sales", dataset.Stats.UnmatchedSales).
			Warn("Vendas sem produto correspondente serão excluídas dos agregados de lucro")
	}

	return dataset, nil
}

func countUnmatched(products []domain.Product, sales []domain.Sale) int {
	known := make(map[int]struct{}, len(products))
	for _, product := range products {
		known[product.ProductID] = struct{}{}
	}

	unmatched := 0
	for _, sale := range sales {
		if _, ok := known[sale.ProductID]; !ok {
			unmatched++
		}
	}

	return unmatched
}
