package handler

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

var testDefaults = config.Analytics{
	DefaultCurrencyCode:  "USD",
	DefaultOrderStatuses: []string{"pending", "completed"},
}

func TestParseFilters(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	t.Run("sem parâmetros usa os padrões", func(t *testing.T) {
		filters, err := parseFilters(url.Values{}, testDefaults)
		require.NoError(t, err)

		assert.Equal(t, []string{"pending", "completed"}, filters.OrderStatuses)
		assert.Equal(t, "usd", filters.CurrencyCode)
		assert.Nil(t, filters.From)
		assert.Nil(t, filters.To)
		assert.False(t, filters.HasComparison())
	})

	t.Run("datas em epoch ms e status repetidos", func(t *testing.T) {
		query := url.Values{
			"orderStatuses[]":        {"completed", "archived"},
			"currencyCode":           {"EUR"},
			"dateRangeFrom":          {"1709251200000"},
			"dateRangeTo":            {"1709337600000"},
			"dateRangeFromCompareTo": {"1709164800000"},
			"dateRangeToCompareTo":   {"1709251200000"},
		}

		filters, err := parseFilters(query, testDefaults)
		require.NoError(t, err)

		assert.Equal(t, []string{"completed", "archived"}, filters.OrderStatuses)
		assert.Equal(t, "eur", filters.CurrencyCode)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filters.From)
		assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *filters.To)
		assert.True(t, filters.HasComparison())
	})

	t.Run("orderStatuses separado por vírgula", func(t *testing.T) {
		filters, err := parseFilters(url.Values{"orderStatuses": {"pending, canceled"}}, testDefaults)
		require.NoError(t, err)
		assert.Equal(t, []string{"pending", "canceled"}, filters.OrderStatuses)
	})

	t.Run("orderStatuses vazio resulta em lista vazia", func(t *testing.T) {
		filters, err := parseFilters(url.Values{"orderStatuses[]": {""}}, testDefaults)
		require.NoError(t, err)
		assert.Empty(t, filters.OrderStatuses)
	})

	t.Run("dateLasts preenche atual e comparação", func(t *testing.T) {
		filters, err := parseFilters(url.Values{"dateLasts": {"today"}}, testDefaults)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filters.From)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *filters.CompareFrom)
		assert.True(t, filters.HasComparison())
	})

	t.Run("dateLasts all não define datas", func(t *testing.T) {
		filters, err := parseFilters(url.Values{"dateLasts": {"all"}}, testDefaults)
		require.NoError(t, err)
		assert.Nil(t, filters.From)
	})

	t.Run("limit", func(t *testing.T) {
		filters, err := parseFilters(url.Values{"limit": {"3"}}, testDefaults)
		require.NoError(t, err)
		assert.Equal(t, 3, filters.Limit)
	})

	invalid := []struct {
		name  string
		query url.Values
	}{
		{"epoch inválido", url.Values{"dateRangeFrom": {"ontem"}}},
		{"dateLasts desconhecido", url.Values{"dateLasts": {"last-decade"}}},
		{"limit negativo", url.Values{"limit": {"-1"}}},
		{"limit não numérico", url.Values{"limit": {"dez"}}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFilters(tt.query, testDefaults)
			assert.ErrorIs(t, err, errInvalidParam)
		})
	}
}
