package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeGeneralReport = "general-report"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	GeneralReportService *scheduler.GeneralReportService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("job", cronType).Info("cron: execução manual solicitada")

		switch cronType {
		case CronJobTypeGeneralReport, CronJobTypeAll:
			if services.GeneralReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Agendador do relatório geral não disponível", nil)
				return
			}
			services.GeneralReportService.TriggerManualRun()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: general-report, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, logger, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.GeneralReportService != nil {
			status[CronJobTypeGeneralReport] = services.GeneralReportService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), status)
	})
}
