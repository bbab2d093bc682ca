package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_analytics"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por rota e status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP em segundos",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	StoreFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_failures_total",
		Help:      "Falhas do store de registros por métrica e etapa",
	}, []string{"metric", "stage"})

	GeneralReportRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "general_report_runs_total",
		Help:      "Execuções do relatório geral por resultado",
	}, []string{"result"})

	GeneralReportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "general_report_duration_seconds",
		Help:      "Duração da geração do relatório geral em segundos",
		Buckets:   prometheus.DefBuckets,
	})

	registerOnce sync.Once
)

// Register registra os coletores no registry padrão. Pode ser chamado mais de uma vez.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			StoreFailuresTotal,
			GeneralReportRunsTotal,
			GeneralReportDuration,
		)
	})
}

// Handler expõe as métricas registradas em /metrics
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordStoreFailure(metric, stage string) {
	StoreFailuresTotal.WithLabelValues(metric, stage).Inc()
}

// RecordReportRun contabiliza uma execução do relatório geral
func RecordReportRun(err error, elapsed time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	GeneralReportRunsTotal.WithLabelValues(result).Inc()
	GeneralReportDuration.Observe(elapsed.Seconds())
}
