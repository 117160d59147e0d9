package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.Env, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sourceOptions, err := repository.SourceOptions(cfg.Dataset)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração das fontes inválida")
	}

	productRepo := repository.NewProductRepository(cfg.Dataset.ProductsFile, sourceOptions)
	saleRepo := repository.NewSaleRepository(cfg.Dataset.SalesFile, sourceOptions, cfg.Dataset.DateFormat)

	loader := loading.NewService(productRepo, saleRepo)
	appMetrics := metrics.New()

	dashboardService := dashboarding.NewService(loader, aggregating.OptionsFromConfig(cfg.Report), appMetrics)

	// Sem as duas tabelas o painel não tem o que exibir
	if err := dashboardService.Reload(ctx); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"products_file": cfg.Dataset.ProductsFile,
			"sales_file":    cfg.Dataset.SalesFile,
		}).Fatal("Erro ao carregar o dataset inicial")
	}

	datasetReloadService := scheduler.NewDatasetReloadService(dashboardService, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarregamento do dataset")
	} else {
		logrus.Info("Agendador de recarregamento do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, datasetReloadService, appMetrics)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
