package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetReport retorna todos os agregados do painel num único documento
func GetReport(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetReport()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar relatório")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

func GetTopSellers(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellers, err := service.GetTopSellers()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar mais vendidos")
			return
		}
		writeJSON(w, r, http.StatusOK, sellers)
	}
}

func GetPriceDistribution(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dist, err := service.GetPriceDistribution()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar histograma de preços")
			return
		}
		writeJSON(w, r, http.StatusOK, dist)
	}
}

func GetMonthlyTrends(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trends, err := service.GetMonthlyTrends()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar séries mensais")
			return
		}
		writeJSON(w, r, http.StatusOK, trends)
	}
}

func GetSupplierProfit(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suppliers, err := service.GetSupplierProfit()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar lucro por fornecedor")
			return
		}
		writeJSON(w, r, http.StatusOK, suppliers)
	}
}

func GetProductBubbles(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bubbles, err := service.GetProductBubbles()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar gráfico de bolhas")
			return
		}
		writeJSON(w, r, http.StatusOK, bubbles)
	}
}

// GetBubblesByYear recalcula as bolhas do ano do seletor; sem ?year usa o menor ano disponível
func GetBubblesByYear(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		value := r.URL.Query().Get("year")
		year, ok, err := utils.ParseYear(value)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use um ano com quatro dígitos (ex: 2020)", map[string]string{"year": value})
			return
		}

		var selected *int
		if ok {
			selected = &year
		}

		selection, err := service.GetYearSelection(selected)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar bolhas do ano")
			return
		}

		logger.WithFields(log.Fields{
			"year":    selection.Year,
			"default": selection.Default,
			"bubbles": len(selection.Bubbles),
		}).Debug("bubbles-by-year: seleção calculada")

		writeJSON(w, r, http.StatusOK, selection)
	}
}

func GetYears(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		years, err := service.GetYears()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar anos disponíveis")
			return
		}
		writeJSON(w, r, http.StatusOK, map[string]any{"years": years})
	}
}

// GetDatasetInfo retorna os metadados do snapshot publicado
func GetDatasetInfo(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := service.GetDatasetInfo()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar dados do snapshot")
			return
		}
		writeJSON(w, r, http.StatusOK, info)
	}
}
