// Package metrics expõe os contadores do dashboard em um registry próprio
// do Prometheus, servido em /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_dashboard"

// Resultados usados nos rótulos de refresh
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// Metrics agrupa os coletores da aplicação. Um *Metrics nil é válido e
// ignora todas as observações.
type Metrics struct {
	registry *prometheus.Registry

	refreshTotal    *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	fetchErrors     *prometheus.CounterVec
	staleServed     prometheus.Counter
	skippedGoals    prometheus.Counter
	droppedRankings *prometheus.CounterVec
	chartRotations  prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		refreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_refresh_total",
			Help:      "Quantidade de atualizações do snapshot do dashboard por resultado.",
		}, []string{"result"}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_refresh_duration_seconds",
			Help:      "Duração da montagem do snapshot do dashboard.",
			Buckets:   prometheus.DefBuckets,
		}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_store_errors_total",
			Help:      "Falhas ao consultar o banco de relatórios por operação.",
		}, []string{"operation"}),
		staleServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_snapshots_served_total",
			Help:      "Snapshots antigos servidos por indisponibilidade do banco.",
		}),
		skippedGoals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goals_skipped_total",
			Help:      "Metas ignoradas por período inválido.",
		}),
		droppedRankings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_rows_dropped_total",
			Help:      "Linhas de ranking descartadas por posição inválida ou repetida.",
		}, []string{"ranking_type"}),
		chartRotations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_rotations_total",
			Help:      "Trocas de modo do gráfico previsto x efetivado.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP atendidas por método e status.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.refreshTotal,
		m.refreshDuration,
		m.fetchErrors,
		m.staleServed,
		m.skippedGoals,
		m.droppedRankings,
		m.chartRotations,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serve o registry no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry é usado nos testes para ler os valores coletados
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveRefresh(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.refreshTotal.WithLabelValues(result).Inc()
	if result != ResultSkipped {
		m.refreshDuration.Observe(duration.Seconds())
	}
}

func (m *Metrics) IncFetchError(operation string) {
	if m == nil {
		return
	}
	m.fetchErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncStaleServed() {
	if m == nil {
		return
	}
	m.staleServed.Inc()
}

func (m *Metrics) AddSkippedGoals(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skippedGoals.Add(float64(n))
}

func (m *Metrics) AddDroppedRankings(rankingType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.droppedRankings.WithLabelValues(rankingType).Add(float64(n))
}

func (m *Metrics) IncChartRotation() {
	if m == nil {
		return
	}
	m.chartRotations.Inc()
}

func (m *Metrics) ObserveHTTPRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(duration.Seconds())
}
