package analyzing

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const reportIDPrefix = "report"

// GeneralReport calcula em paralelo as métricas do período pré-definido e compõe o relatório.
// Qualquer falha cancela as demais consultas e é retornada.
func (s *Service) GeneralReport(ctx context.Context, request *domain.GeneralReportRequest) (*domain.GeneralReport, error) {
	current, compare, err := domain.PresetRange(request.DateLasts, s.now())
	if err != nil {
		return nil, err
	}

	filters := &domain.AnalyticsFilters{
		OrderStatuses: request.OrderStatuses,
		CurrencyCode:  request.CurrencyCode,
	}
	if current != nil {
		filters.From, filters.To = &current.From, &current.To
		filters.CompareFrom, filters.CompareTo = &compare.From, &compare.To
	}

	id, err := utils.GenerateID(reportIDPrefix)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do relatório: %w", err)
	}

	report := &domain.GeneralReport{
		ID:          id,
		GeneratedAt: s.now().UTC(),
		DateLasts:   request.DateLasts,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Totals, err = s.Totals(gctx, filters)
		return err
	})
	g.Go(func() (err error) {
		report.OrdersCount, err = s.OrdersCount(gctx, filters)
		return err
	})
	g.Go(func() (err error) {
		report.Refunds, err = s.Refunds(gctx, filters)
		return err
	})
	g.Go(func() (err error) {
		report.TopRegions, err = s.ranking(gctx, MetricRegionsPopularity, domain.DimensionRegion, filters, request.TopLimit)
		return err
	})
	g.Go(func() (err error) {
		report.TopSalesChannels, err = s.ranking(gctx, MetricSalesChannelPopularity, domain.DimensionSalesChannel, filters, request.TopLimit)
		return err
	})
	g.Go(func() (err error) {
		report.TopDiscounts, err = s.ranking(gctx, MetricDiscountsByCount, domain.DimensionDiscount, filters, request.TopLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Changes = domain.ReportChanges{
		Revenue:  domain.CalculatePercentage(report.Totals.Current.RevenuePreShipping, report.Totals.Previous.RevenuePreShipping),
		Shipping: domain.CalculatePercentage(report.Totals.Current.Shipping, report.Totals.Previous.Shipping),
		Taxes:    domain.CalculatePercentage(report.Totals.Current.Taxes, report.Totals.Previous.Taxes),
		Orders:   domain.CalculatePercentage(report.OrdersCount.Current, report.OrdersCount.Previous),
		Refunds:  domain.CalculatePercentage(report.Refunds.Current, report.Refunds.Previous),
	}

	return report, nil
}

// ranking retorna as posições do período atual, ordenadas por quantidade
func (s *Service) ranking(ctx context.Context, metric string, dimension domain.Dimension, filters *domain.AnalyticsFilters, limit int) ([]domain.RankingEntry, error) {
	if !hasStatuses(filters) {
		return []domain.RankingEntry{}, nil
	}

	current, _, _, err := s.dimensionShares(ctx, metric, dimension, filters, false)
	if err != nil {
		return nil, err
	}

	ranked := TopShares(current, limit)
	entries := make([]domain.RankingEntry, 0, len(ranked))
	for _, share := range ranked {
		entries = append(entries, domain.RankingEntry{
			ID:         share.ID,
			Name:       share.Name,
			OrderCount: share.Count,
			Percentage: share.Percentage,
		})
	}
	return entries, nil
}
