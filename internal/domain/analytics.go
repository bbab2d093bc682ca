package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsFilters são os parâmetros comuns a todas as métricas
type AnalyticsFilters struct {
	OrderStatuses []string
	CurrencyCode  string
	From          *time.Time
	To            *time.Time
	CompareFrom   *time.Time
	CompareTo     *time.Time
	Limit         int
}

// HasComparison indica se os quatro limites de data foram informados
func (f *AnalyticsFilters) HasComparison() bool {
	return f != nil && f.From != nil && f.To != nil && f.CompareFrom != nil && f.CompareTo != nil
}

// Envelope é o formato de resposta comum a todas as métricas.
// Datas são epoch em milissegundos.
type Envelope[T any] struct {
	DateRangeFrom          *int64 `json:"dateRangeFrom,omitempty"`
	DateRangeTo            *int64 `json:"dateRangeTo,omitempty"`
	DateRangeFromCompareTo *int64 `json:"dateRangeFromCompareTo,omitempty"`
	DateRangeToCompareTo   *int64 `json:"dateRangeToCompareTo,omitempty"`
	CurrencyCode           string `json:"currencyCode,omitempty"`
	CurrencyDecimalDigits  *int   `json:"currencyDecimalDigits,omitempty"`
	Current                T      `json:"current"`
	Previous               T      `json:"previous"`
}

// EpochMillis converte t para epoch em milissegundos
func EpochMillis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

type OrdersBucket struct {
	Date       time.Time `json:"date"`
	OrderCount int64     `json:"orderCount"`
}

type SalesBucket struct {
	Date  time.Time `json:"date"`
	Total int64     `json:"total"`
}

// Totals são somas em unidades menores da moeda
type Totals struct {
	RevenuePreShipping int64 `json:"revenuePreShipping"`
	Shipping           int64 `json:"shipping"`
	Taxes              int64 `json:"taxes"`
}

func (t Totals) Add(order OrderRecord) Totals {
	return Totals{
		RevenuePreShipping: t.RevenuePreShipping + order.Total - order.ShippingTotal,
		Shipping:           t.Shipping + order.ShippingTotal,
		Taxes:              t.Taxes + order.TaxTotal,
	}
}

type TotalsBucket struct {
	Date time.Time `json:"date"`
	Totals
}

type PaymentProviderShare struct {
	PaymentProviderID string          `json:"paymentProviderId"`
	OrderCount        int64           `json:"orderCount"`
	Percentage        decimal.Decimal `json:"percentage"`
}

type RegionPopularity struct {
	Date       time.Time       `json:"date"`
	RegionID   string          `json:"regionId"`
	RegionName string          `json:"regionName"`
	OrderCount int64           `json:"orderCount"`
	Percentage decimal.Decimal `json:"percentage"`
}

type SalesChannelPopularity struct {
	Date             time.Time       `json:"date"`
	SalesChannelID   string          `json:"salesChannelId"`
	SalesChannelName string          `json:"salesChannelName"`
	OrderCount       int64           `json:"orderCount"`
	Percentage       decimal.Decimal `json:"percentage"`
}

type DiscountUsage struct {
	DiscountID   string          `json:"discountId"`
	DiscountCode string          `json:"discountCode"`
	Sum          int64           `json:"sum"`
	Percentage   decimal.Decimal `json:"percentage"`
}

var hundred = decimal.NewFromInt(100)

// CalculatePercentage calcula a variação percentual (absoluta) entre dois períodos.
// Retorna nil quando não há base de comparação.
func CalculatePercentage(current, previous int64) *float64 {
	result := 0.0
	if current == previous {
		return &result
	}
	if current == 0 {
		result = 100
		return &result
	}
	if previous == 0 {
		return nil
	}

	ratio := decimal.NewFromInt(current - previous).Div(decimal.NewFromInt(previous)).Round(2)
	result, _ = ratio.Mul(hundred).Abs().Round(2).Float64()
	return &result
}
