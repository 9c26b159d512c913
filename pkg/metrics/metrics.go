// Package metrics registra as métricas Prometheus do serviço em um registro próprio.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fuel_station"

var (
	Registry = prometheus.NewRegistry()

	reportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Tempo para montar cada relatório, incluindo a leitura dos registros.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report", "status"})

	alertsRaised = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_raised_total",
		Help:      "Alertas produzidos pelos relatórios, por tipo e severidade.",
	}, []string{"kind", "severity"})

	notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Notificações despachadas, por tipo e resultado.",
	}, []string{"kind", "status"})

	jobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_runs_total",
		Help:      "Execuções dos agendadores, por job e resultado.",
	}, []string{"job", "status"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas, por método e status.",
	}, []string{"method", "status"})
)

// RegisterDB expõe as estatísticas do pool de conexões de db
func RegisterDB(db *sql.DB, name string) {
	Registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		reportDuration,
		alertsRaised,
		notifications,
		jobRuns,
		httpRequests,
	)
}

// Handler expõe o registro no formato de exposição do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

func ObserveReport(report string, start time.Time, err error) {
	reportDuration.WithLabelValues(report, status(err)).Observe(time.Since(start).Seconds())
}

func AlertRaised(kind, severity string) {
	alertsRaised.WithLabelValues(kind, severity).Inc()
}

func NotificationSent(kind string, err error) {
	notifications.WithLabelValues(kind, status(err)).Inc()
}

func JobRun(job string, err error) {
	jobRuns.WithLabelValues(job, status(err)).Inc()
}

func HTTPRequest(method string, code int) {
	httpRequests.WithLabelValues(method, http.StatusText(code)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
