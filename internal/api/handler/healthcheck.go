package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

// HealthcheckHandler responde 200 com o snapshot publicado, ou 503 enquanto nada foi carregado
func HealthcheckHandler(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"time": time.Now().Format(time.RFC3339),
		}

		info, err := service.GetDatasetInfo()
		if err != nil {
			body["status"] = "loading"
			writeJSON(w, r, http.StatusServiceUnavailable, body)
			return
		}

		body["status"] = "ok"
		body["snapshot_id"] = info.SnapshotID
		body["loaded_at"] = info.LoadedAt
		writeJSON(w, r, http.StatusOK, body)
	})
}
