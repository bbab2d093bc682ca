package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// RecordStore define a leitura de pedidos e reembolsos usada pelas métricas
type RecordStore interface {
	// EarliestOrder retorna a data do pedido mais antigo que atende aos filtros, ou nil
	EarliestOrder(ctx context.Context, query domain.RecordQuery) (*time.Time, error)
	// EarliestRefund retorna a data do reembolso mais antigo que atende aos filtros, ou nil
	EarliestRefund(ctx context.Context, query domain.RecordQuery) (*time.Time, error)
	ListOrders(ctx context.Context, query domain.RecordQuery) ([]domain.OrderRecord, error)
	ListRefunds(ctx context.Context, query domain.RecordQuery) ([]domain.RefundRecord, error)
	// ListOrderDimensions retorna os pedidos associados à dimensão (provedor de pagamento, região...)
	ListOrderDimensions(ctx context.Context, dimension domain.Dimension, query domain.RecordQuery) ([]domain.DimensionRecord, error)
}

// CurrencyMetadata informa a quantidade de casas decimais de uma moeda (apenas para exibição)
type CurrencyMetadata interface {
	DecimalDigits(code string) int
}

// OrdersAnalyzer agrupa as métricas de pedidos
type OrdersAnalyzer interface {
	OrdersHistory(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.OrdersBucket], error)
	OrdersCount(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[int64], error)
	PaymentProviderPopularity(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.PaymentProviderShare], error)
}

// SalesAnalyzer agrupa as métricas de vendas
type SalesAnalyzer interface {
	SalesHistory(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.SalesBucket], error)
	Totals(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[domain.Totals], error)
	TotalsHistory(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.TotalsBucket], error)
	Refunds(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[int64], error)
	SalesChannelPopularity(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.SalesChannelPopularity], error)
	RegionsPopularity(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.RegionPopularity], error)
}

// MarketingAnalyzer agrupa as métricas de marketing
type MarketingAnalyzer interface {
	DiscountsByCount(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.DiscountUsage], error)
}

// Analyzer é a interface completa exposta aos handlers
type Analyzer interface {
	OrdersAnalyzer
	SalesAnalyzer
	MarketingAnalyzer

	// GeneralReport compõe as principais métricas de um período pré-definido
	GeneralReport(ctx context.Context, request *domain.GeneralReportRequest) (*domain.GeneralReport, error)
}
