package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralReportRequest são os parâmetros do relatório geral
type GeneralReportRequest struct {
	DateLasts     DateLasts
	CurrencyCode  string
	OrderStatuses []string
	TopLimit      int
}

// RankingEntry é uma posição nos rankings do relatório geral
type RankingEntry struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	OrderCount int64           `json:"orderCount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ReportChanges é a variação percentual entre o período atual e o anterior.
// nil quando o período anterior é zero.
type ReportChanges struct {
	Revenue  *float64 `json:"revenue"`
	Shipping *float64 `json:"shipping"`
	Taxes    *float64 `json:"taxes"`
	Orders   *float64 `json:"orders"`
	Refunds  *float64 `json:"refunds"`
}

// GeneralReport é a composição das principais métricas de um período
type GeneralReport struct {
	ID               string            `json:"id"`
	GeneratedAt      time.Time         `json:"generatedAt"`
	DateLasts        DateLasts         `json:"dateLasts"`
	Totals           *Envelope[Totals] `json:"totals"`
	OrdersCount      *Envelope[int64]  `json:"ordersCount"`
	Refunds          *Envelope[int64]  `json:"refunds"`
	Changes          ReportChanges     `json:"changes"`
	TopRegions       []RankingEntry    `json:"topRegions"`
	TopSalesChannels []RankingEntry    `json:"topSalesChannels"`
	TopDiscounts     []RankingEntry    `json:"topDiscounts"`
}
