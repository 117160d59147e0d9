// Package metrics expõe as métricas da API no formato Prometheus
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const namespace = "sales_dashboard"

// Metrics mantém um registry próprio para não misturar com o registry global
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	datasetLoads        *prometheus.CounterVec
	datasetLoadDuration prometheus.Histogram
	datasetRows         *prometheus.GaugeVec
	datasetLoadedAt     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		datasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Carregamentos do dataset por resultado.",
		}, []string{"result"}),
		datasetLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Duração do carregamento e da agregação do dataset.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		datasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Linhas do snapshot atual por tipo.",
		}, []string{"kind"}),
		datasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Momento do último carregamento bem sucedido.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.datasetLoads,
		m.datasetLoadDuration,
		m.datasetRows,
		m.datasetLoadedAt,
	)

	return m
}

// Handler serve o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveLoad registra um carregamento; em caso de falha os gauges do snapshot anterior são mantidos
func (m *Metrics) ObserveLoad(dataset *domain.Dataset, duration time.Duration, err error) {
	m.datasetLoadDuration.Observe(duration.Seconds())

	if err != nil || dataset == nil {
		m.datasetLoads.WithLabelValues("error").Inc()
		return
	}

	m.datasetLoads.WithLabelValues("success").Inc()
	m.datasetRows.WithLabelValues("products").Set(float64(dataset.Stats.ProductsLoaded))
	m.datasetRows.WithLabelValues("sales").Set(float64(dataset.Stats.SalesLoaded))
	m.datasetRows.WithLabelValues("product_duplicates").Set(float64(dataset.Stats.ProductDuplicates))
	m.datasetRows.WithLabelValues("sale_duplicates").Set(float64(dataset.Stats.SaleDuplicates))
	m.datasetRows.WithLabelValues("unmatched_sales").Set(float64(dataset.Stats.UnmatchedSales))
	m.datasetLoadedAt.Set(float64(dataset.LoadedAt.Unix()))
}
