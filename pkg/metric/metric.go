package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campaign_metrics"

// Metrics agrupa os coletores expostos em /metrics
type Metrics struct {
	registry *prometheus.Registry

	// Consultas
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec

	// Limpeza de snapshots
	PruneRuns      *prometheus.CounterVec
	PruneDeleted   prometheus.Counter
	PruneDuration  prometheus.Histogram
	PruneLastRunAt prometheus.Gauge

	// HTTP
	RequestsProcessed *prometheus.CounterVec
}

// NewMetrics cria os coletores em um registry próprio, sem tocar no DefaultRegisterer
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duração das consultas de métricas por operação",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		QueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_errors_total",
			Help:      "Total de consultas de métricas com erro por código",
		}, []string{"operation", "code"}),
		PruneRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prune_runs_total",
			Help:      "Execuções da limpeza de snapshots por resultado",
		}, []string{"outcome"}),
		PruneDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prune_deleted_snapshots_total",
			Help:      "Total de snapshots substituídos removidos",
		}),
		PruneDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prune_duration_seconds",
			Help:      "Duração das execuções da limpeza",
			Buckets:   prometheus.DefBuckets,
		}),
		PruneLastRunAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prune_last_run_timestamp_seconds",
			Help:      "Momento da última limpeza concluída",
		}),
		RequestsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por método e status",
		}, []string{"method", "status"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.QueryDuration,
		m.QueryErrors,
		m.PruneRuns,
		m.PruneDeleted,
		m.PruneDuration,
		m.PruneLastRunAt,
		m.RequestsProcessed,
	)

	return m
}

// ObserveQuery registra a duração de uma consulta iniciada em start
func (m *Metrics) ObserveQuery(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) QueryFailed(operation, code string) {
	if m == nil {
		return
	}
	m.QueryErrors.WithLabelValues(operation, code).Inc()
}

// PruneFinished registra o resultado de uma limpeza. outcome: completed, skipped ou failed.
func (m *Metrics) PruneFinished(outcome string, deleted int64, start time.Time) {
	if m == nil {
		return
	}
	m.PruneRuns.WithLabelValues(outcome).Inc()
	if outcome != "completed" {
		return
	}
	m.PruneDeleted.Add(float64(deleted))
	m.PruneDuration.Observe(time.Since(start).Seconds())
	m.PruneLastRunAt.SetToCurrentTime()
}

func (m *Metrics) RequestProcessed(method string, status int) {
	if m == nil {
		return
	}
	m.RequestsProcessed.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// GetGatherer retorna o gatherer usado na exportação
func (m *Metrics) GetGatherer() prometheus.Gatherer {
	return m.registry
}

// Handler expõe os coletores no formato de exposição do prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
