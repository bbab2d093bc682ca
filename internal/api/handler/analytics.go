package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type metricFunc[T any] func(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[T], error)

type analyticsResponse[T any] struct {
	Analytics *domain.Envelope[T] `json:"analytics"`
}

// AnalyticsHandler responde uma métrica no formato {"analytics": envelope}
func AnalyticsHandler[T any](metric string, defaults config.Analytics, fn metricFunc[T]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForMetric(r.Context(), metric)

		filters, err := parseFilters(r.URL.Query(), defaults)
		if err != nil {
			logger.WithError(err).Warn("analytics: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(filterFields(filters)).Debug("analytics: calculando métrica")

		envelope, err := fn(r.Context(), filters)
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, analyticsResponse[T]{Analytics: envelope})
	})
}

func writeAnalyticsError(w http.ResponseWriter, logger log.Logger, err error) {
	var analyticsErr *analyzing.AnalyticsError
	if errors.As(err, &analyticsErr) {
		metrics.RecordStoreFailure(analyticsErr.Metric, analyticsErr.Stage)
		logger.WithFields(log.Fields{
			"stage": analyticsErr.Stage,
			"error": analyticsErr.Err.Error(),
		}).Error("analytics: falha ao consultar o store")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métrica", nil)
		return
	}

	if errors.Is(err, domain.ErrUnknownDateLasts) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	logger.WithError(err).Error("analytics: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("analytics: falha ao serializar resposta")
	}
}

func filterFields(filters *domain.AnalyticsFilters) log.Fields {
	fields := log.Fields{
		"currency_code":  filters.CurrencyCode,
		"order_statuses": filters.OrderStatuses,
	}
	if filters.From != nil {
		fields["date_range_from"] = filters.From.UTC()
	}
	if filters.To != nil {
		fields["date_range_to"] = filters.To.UTC()
	}
	if filters.CompareFrom != nil {
		fields["date_range_from_compare_to"] = filters.CompareFrom.UTC()
	}
	if filters.CompareTo != nil {
		fields["date_range_to_compare_to"] = filters.CompareTo.UTC()
	}
	return fields
}
