package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

const defaultTopLimit = 5

type reportResponse struct {
	Report *domain.GeneralReport `json:"report"`
}

// GeneralReportHandler calcula o relatório geral de um período pré-definido (dateLasts)
func GeneralReportHandler(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForMetric(r.Context(), "general_report")
		query := r.URL.Query()

		filters, err := parseFilters(query, cfg.Analytics)
		if err != nil {
			logger.WithError(err).Warn("analytics: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		request := &domain.GeneralReportRequest{
			DateLasts:     domain.DateLasts(cfg.GeneralReport.DateLasts),
			CurrencyCode:  filters.CurrencyCode,
			OrderStatuses: filters.OrderStatuses,
			TopLimit:      defaultTopLimit,
		}
		if preset := strings.TrimSpace(query.Get(paramDateLasts)); preset != "" {
			request.DateLasts = domain.DateLasts(preset)
		}
		if filters.Limit > 0 {
			request.TopLimit = filters.Limit
		}

		logger.WithField("date_lasts", request.DateLasts).Info("analytics: gerando relatório geral")

		report, err := service.GeneralReport(r.Context(), request)
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, reportResponse{Report: report})
	})
}

// LatestGeneralReport retorna o último relatório gerado pelo agendador
func LatestGeneralReport(service *scheduler.GeneralReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForMetric(r.Context(), "general_report")

		report := service.LastReport()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Nenhum relatório gerado ainda", nil)
			return
		}

		writeJSON(w, logger, reportResponse{Report: report})
	})
}
