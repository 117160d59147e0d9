// Package scheduler contém os serviços de agendamento do recarregamento do dataset
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// Reloader refaz o carregamento e a agregação do dataset
type Reloader interface {
	Reload(ctx context.Context) error
}

type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	reloader            Reloader
	config              DatasetReloadConfig
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetReloadService(reloader Reloader, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.DatasetReload.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
	}).Info("Configuração do agendador de recarregamento do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		reloader:  reloader,
		config:    reloadConfig,
		baseCtx:   context.Background(),
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarregamento do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarregamento do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDataset(ctx); err != nil {
			logrus.WithError(err).Error("Erro no recarregamento agendado do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarregamento do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarregamento do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset executa um recarregamento; se outro já estiver em andamento, não faz nada
func (s *DatasetReloadService) ReloadDataset(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarregamento do dataset já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarregamento do dataset")

	err := s.reloader.Reload(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.Info("Recarregamento do dataset concluído")
	return nil
}

// TriggerManualSync inicia manualmente um recarregamento em segundo plano
func (s *DatasetReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarregamento do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarregamento manual do dataset")
	go func() {
		if err := s.ReloadDataset(s.baseCtx); err != nil {
			logrus.WithError(err).Error("Erro no recarregamento manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
