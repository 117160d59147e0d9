// Package dashboarding publica o snapshot agregado consumido pelos handlers do painel
package dashboarding

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

// Dashboard expõe os agregados do snapshot atual
type Dashboard interface {
	GetReport() (*domain.Report, error)
	GetTopSellers() ([]domain.TopSeller, error)
	GetPriceDistribution() (*domain.PriceDistribution, error)
	GetMonthlyTrends() ([]domain.MonthlyTrend, error)
	GetSupplierProfit() ([]domain.SupplierProfit, error)
	GetProductBubbles() ([]domain.ProductBubble, error)

	// GetYearSelection recalcula as bolhas do ano informado; nil seleciona o menor ano disponível
	GetYearSelection(year *int) (*domain.YearSelection, error)
	GetYears() ([]int, error)
	GetDatasetInfo() (*domain.DatasetInfo, error)

	// Reload refaz o carregamento inteiro; em caso de falha o snapshot anterior continua publicado
	Reload(ctx context.Context) error
}

// LoadObserver recebe o resultado de cada carregamento
type LoadObserver interface {
	ObserveLoad(dataset *domain.Dataset, duration time.Duration, err error)
}

type Service struct {
	loader   loading.Loader
	opts     aggregating.Options
	observer LoadObserver

	current  atomic.Pointer[aggregating.Pipeline]
	reloadMu sync.Mutex
}

func NewService(loader loading.Loader, opts aggregating.Options, observer LoadObserver) *Service {
	return &Service{
		loader:   loader,
		opts:     opts,
		observer: observer,
	}
}

func (s *Service) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	startedAt := time.Now()

	pipeline, dataset, err := s.build(ctx)
	if s.observer != nil {
		s.observer.ObserveLoad(dataset, time.Since(startedAt), err)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar dataset, mantendo snapshot anterior")
		return fmt.Errorf("%w: %w", ErrReloadDataset, err)
	}

	previous := s.current.Swap(pipeline)

	fields := logrus.Fields{
		"snapshot_id": dataset.SnapshotID,
		"years":       pipeline.Years(),
		"duration":    time.Since(startedAt).String(),
	}
	if previous != nil {
		fields["previous_snapshot_id"] = previous.Dataset().SnapshotID
	}
	logrus.WithFields(fields).Info("Snapshot do painel publicado")

	return nil
}

func (s *Service) build(ctx context.Context) (*aggregating.Pipeline, *domain.Dataset, error) {
	dataset, err := s.loader.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := aggregating.NewPipeline(dataset, s.opts)
	if err != nil {
		return nil, nil, err
	}

	return pipeline, dataset, nil
}

func (s *Service) pipeline() (*aggregating.Pipeline, error) {
	p := s.current.Load()
	if p == nil {
		return nil, ErrDatasetNotLoaded
	}
	return p, nil
}

func (s *Service) GetReport() (*domain.Report, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	return p.Report(), nil
}

func (s *Service) GetTopSellers() ([]domain.TopSeller, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	return p.TopSellers(), nil
}

func (s *Service) GetPriceDistribution() (*domain.PriceDistribution, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	dist := p.PriceDistribution()
	return &dist, nil
}

func (s *Service) GetMonthlyTrends() ([]domain.MonthlyTrend, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	return p.MonthlyTrends(), nil
}

func (s *Service) GetSupplierProfit() ([]domain.SupplierProfit, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	return p.SupplierProfit(), nil
}

func (s *Service) GetProductBubbles() ([]domain.ProductBubble, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	return p.ProductBubbles(), nil
}

func (s *Service) GetYearSelection(year *int) (*domain.YearSelection, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	selection := p.YearSelection(year)
	return &selection, nil
}

func (s *Service) GetYears() ([]int, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}
	return p.Years(), nil
}

func (s *Service) GetDatasetInfo() (*domain.DatasetInfo, error) {
	p, err := s.pipeline()
	if err != nil {
		return nil, err
	}

	dataset := p.Dataset()
	products, sales := s.loader.Sources()

	return &domain.DatasetInfo{
		SnapshotID:     dataset.SnapshotID,
		LoadedAt:       dataset.LoadedAt,
		ProductsSource: products,
		SalesSource:    sales,
		Years:          p.Years(),
		Stats:          dataset.Stats,
	}, nil
}
