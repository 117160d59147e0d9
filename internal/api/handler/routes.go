package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func DashboardPages(service dashboarding.Dashboard, title string, topSellersLimit int) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(service, title, topSellersLimit),
		},
	}
}

func Reports(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/top-sellers",
			Method:  http.MethodGet,
			Handler: GetTopSellers(service),
		},
		{
			Path:    "/v1/price-distribution",
			Method:  http.MethodGet,
			Handler: GetPriceDistribution(service),
		},
		{
			Path:    "/v1/monthly-trends",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrends(service),
		},
		{
			Path:    "/v1/supplier-profit",
			Method:  http.MethodGet,
			Handler: GetSupplierProfit(service),
		},
		{
			Path:    "/v1/bubbles",
			Method:  http.MethodGet,
			Handler: GetProductBubbles(service),
		},
		{
			Path:    "/v1/bubbles/by-year",
			Method:  http.MethodGet,
			Handler: GetBubblesByYear(service),
		},
		{
			Path:    "/v1/years",
			Method:  http.MethodGet,
			Handler: GetYears(service),
		},
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}
