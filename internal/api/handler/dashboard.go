package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

//go:embed templates/dashboard.html
var templates embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

// DashboardPage é o contexto do template da página
type DashboardPage struct {
	Title           string
	TopSellersLimit int
	Report          *domain.Report
	Info            *domain.DatasetInfo
}

// Dashboard renderiza a página com os seis gráficos e o seletor de ano
func Dashboard(service dashboarding.Dashboard, title string, topSellersLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetReport()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar painel")
			return
		}

		info, err := service.GetDatasetInfo()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar painel")
			return
		}

		var buf bytes.Buffer
		err = dashboardTemplate.Execute(&buf, DashboardPage{
			Title:           title,
			TopSellersLimit: topSellersLimit,
			Report:          report,
			Info:            info,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao renderizar painel")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página do painel")
		}
	}
}
