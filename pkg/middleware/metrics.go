package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições. route é o template da rota
// (ex: /v1/cron/:type/run) para não explodir a cardinalidade dos labels.
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rec, r)

			metrics.ObserveRequest(r.Method, route, rec.statusCode, time.Since(start))
		})
	}
}
