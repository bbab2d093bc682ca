package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// Pinger é implementado pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 com o horário atual, ou 503 se o banco não responder
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco indisponível")
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}

		if _, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}
