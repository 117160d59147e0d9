package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		DatasetReload: config.DatasetReload{
			CronSchedule: cron,
			Enabled:      enabled,
		},
	}
}

func TestDatasetReloadService_ReloadDataset(t *testing.T) {
	tests := []struct {
		name      string
		reloadErr error
		wantErr   bool
	}{
		{
			name: "Recarregamento bem sucedido - deve limpar o último erro",
		},
		{
			name:      "Falha no recarregamento - deve registrar o erro no status",
			reloadErr: errors.New("arquivo não encontrado"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDashboard := mocks.NewMockDashboard(ctrl)
			mockDashboard.EXPECT().Reload(gomock.Any()).Return(tt.reloadErr)

			service := NewDatasetReloadService(mockDashboard, newTestConfig(false, "0 3 * * *"))

			err := service.ReloadDataset(context.Background())
			status := service.GetStatus()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.reloadErr.Error(), status["last_sync_error"])
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "", status["last_sync_error"])
			}

			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestDatasetReloadService_Start(t *testing.T) {
	t.Run("Cron desabilitada - não deve agendar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewDatasetReloadService(mocks.NewMockDashboard(ctrl), newTestConfig(false, "0 3 * * *"))
		assert.NoError(t, service.Start(context.Background()))
		assert.Equal(t, false, service.GetStatus()["sync_enabled"])
	})

	t.Run("Expressão cron inválida - deve falhar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewDatasetReloadService(mocks.NewMockDashboard(ctrl), newTestConfig(true, "não é cron"))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Cron válida - deve iniciar e parar com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewDatasetReloadService(mocks.NewMockDashboard(ctrl), newTestConfig(true, "0 3 * * *"))
		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
	})
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	mockDashboard := mocks.NewMockDashboard(ctrl)
	mockDashboard.EXPECT().
		Reload(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

	service := NewDatasetReloadService(mockDashboard, newTestConfig(false, "0 3 * * *"))
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarregamento manual não foi executado")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}
