package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func OrdersAnalytics(service analyzing.OrdersAnalyzer, defaults config.Analytics) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/orders-analytics/history",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricOrdersHistory, defaults, service.OrdersHistory),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/orders-analytics/count",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricOrdersCount, defaults, service.OrdersCount),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/orders-analytics/payment-provider",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricPaymentProvider, defaults, service.PaymentProviderPopularity),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
	}
}

func SalesAnalytics(service analyzing.SalesAnalyzer, defaults config.Analytics) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/sales-analytics/history",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricSalesHistory, defaults, service.SalesHistory),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/sales-analytics/totals",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricTotals, defaults, service.Totals),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/sales-analytics/totals-history",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricTotalsHistory, defaults, service.TotalsHistory),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/sales-analytics/refunds",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricRefunds, defaults, service.Refunds),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/sales-analytics/sales-channel-popularity",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricSalesChannelPopularity, defaults, service.SalesChannelPopularity),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/sales-analytics/regions-popularity",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricRegionsPopularity, defaults, service.RegionsPopularity),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
	}
}

func MarketingAnalytics(service analyzing.MarketingAnalyzer, defaults config.Analytics) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/marketing-analytics/discounts-by-count",
			Method:      http.MethodGet,
			Handler:     AnalyticsHandler(analyzing.MetricDiscountsByCount, defaults, service.DiscountsByCount),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
	}
}

func Reports(service analyzing.Analyzer, reportService *scheduler.GeneralReportService, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/reports-analytics/general",
			Method:      http.MethodGet,
			Handler:     GeneralReportHandler(service, cfg),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/admin/reports-analytics/general/latest",
			Method:      http.MethodGet,
			Handler:     LatestGeneralReport(reportService),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
