package handler

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Parâmetros de query aceitos pelas rotas de analytics
const (
	paramOrderStatuses      = "orderStatuses"
	paramOrderStatusesArray = "orderStatuses[]"
	paramCurrencyCode       = "currencyCode"
	paramDateRangeFrom      = "dateRangeFrom"
	paramDateRangeTo        = "dateRangeTo"
	paramCompareFrom        = "dateRangeFromCompareTo"
	paramCompareTo          = "dateRangeToCompareTo"
	paramDateLasts          = "dateLasts"
	paramLimit              = "limit"
)

var errInvalidParam = errors.New("parâmetro inválido")

// now é substituído nos testes
var now = time.Now

func invalidParam(name, value string) error {
	return fmt.Errorf("%w: %s=%q", errInvalidParam, name, value)
}

// parseFilters monta os filtros a partir da query. Datas explícitas têm precedência sobre dateLasts.
func parseFilters(query url.Values, defaults config.Analytics) (*domain.AnalyticsFilters, error) {
	filters := &domain.AnalyticsFilters{
		OrderStatuses: parseStatuses(query, defaults.DefaultOrderStatuses),
		CurrencyCode:  strings.ToLower(defaults.DefaultCurrencyCode),
	}

	if code := strings.TrimSpace(query.Get(paramCurrencyCode)); code != "" {
		filters.CurrencyCode = strings.ToLower(code)
	}

	dates := []struct {
		name   string
		target **time.Time
	}{
		{paramDateRangeFrom, &filters.From},
		{paramDateRangeTo, &filters.To},
		{paramCompareFrom, &filters.CompareFrom},
		{paramCompareTo, &filters.CompareTo},
	}
	for _, d := range dates {
		value := query.Get(d.name)
		parsed, err := utils.ParseEpochMillis(value)
		if err != nil {
			return nil, invalidParam(d.name, value)
		}
		*d.target = parsed
	}

	if preset := query.Get(paramDateLasts); preset != "" && filters.From == nil {
		current, compare, err := domain.PresetRange(domain.DateLasts(preset), now())
		if err != nil {
			return nil, invalidParam(paramDateLasts, preset)
		}
		if current != nil {
			filters.From, filters.To = &current.From, &current.To
			filters.CompareFrom, filters.CompareTo = &compare.From, &compare.To
		}
	}

	if value := query.Get(paramLimit); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return nil, invalidParam(paramLimit, value)
		}
		filters.Limit = limit
	}

	return filters, nil
}

// parseStatuses aceita orderStatuses[] repetido, orderStatuses repetido ou separado por vírgula.
// Sem nenhum dos dois usa os status padrão; presente e vazio resulta em lista vazia.
func parseStatuses(query url.Values, defaults []string) []string {
	values, arrayOK := query[paramOrderStatusesArray]
	plain, plainOK := query[paramOrderStatuses]
	if !arrayOK && !plainOK {
		return defaults
	}

	statuses := make([]string, 0, len(values)+len(plain))
	for _, value := range slices.Concat(values, plain) {
		for _, status := range strings.Split(value, ",") {
			if status = strings.TrimSpace(status); status != "" {
				statuses = append(statuses, status)
			}
		}
	}

	return statuses
}
