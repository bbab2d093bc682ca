package analyzing

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// listOrders executa o plano e busca os pedidos filtrados por status e moeda
func (s *Service) listOrders(ctx context.Context, metric string, filters *domain.AnalyticsFilters) (*period, []domain.OrderRecord, []domain.OrderRecord, error) {
	p, err := s.plan(ctx, metric, filters, orderQuery(filters, true), s.store.EarliestOrder)
	if err != nil {
		return nil, nil, nil, err
	}
	if p.branch == branchEmpty {
		return p, nil, nil, nil
	}

	orders, err := s.store.ListOrders(ctx, p.query)
	if err != nil {
		return nil, nil, nil, newAnalyticsError(metric, StageFetch, err)
	}
	if p, err = s.settle(ctx, metric, p, len(orders)); err != nil {
		return nil, nil, nil, err
	}

	current, previous := Split(p.classifier, orders)
	return p, current, previous, nil
}

// SalesHistory soma o total dos pedidos por bucket de data
func (s *Service) SalesHistory(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.SalesBucket], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.SalesBucket{}, []domain.SalesBucket{}), nil
	}

	p, current, previous, err := s.listOrders(ctx, MetricSalesHistory, filters)
	if err != nil {
		return nil, err
	}

	orderTotal := func(order domain.OrderRecord) int64 { return order.Total }
	envelope := newEnvelope(p, SumByDate(current, p.resolution, orderTotal), SumByDate(previous, p.resolution, orderTotal))
	return withCurrency(s, envelope, filters.CurrencyCode), nil
}

// Totals soma receita sem frete, frete e impostos de cada período
func (s *Service) Totals(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[domain.Totals], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, domain.Totals{}, domain.Totals{}), nil
	}

	p, current, previous, err := s.listOrders(ctx, MetricTotals, filters)
	if err != nil {
		return nil, err
	}

	sum := func(orders []domain.OrderRecord) domain.Totals {
		totals := domain.Totals{}
		for _, order := range orders {
			totals = totals.Add(order)
		}
		return totals
	}

	return withCurrency(s, newEnvelope(p, sum(current), sum(previous)), filters.CurrencyCode), nil
}

// TotalsHistory soma receita sem frete, frete e impostos por bucket de data
func (s *Service) TotalsHistory(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.TotalsBucket], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.TotalsBucket{}, []domain.TotalsBucket{}), nil
	}

	p, current, previous, err := s.listOrders(ctx, MetricTotalsHistory, filters)
	if err != nil {
		return nil, err
	}

	envelope := newEnvelope(p, TotalsByDate(current, p.resolution), TotalsByDate(previous, p.resolution))
	return withCurrency(s, envelope, filters.CurrencyCode), nil
}

// Refunds soma os reembolsos de pedidos na moeda informada. Não depende de status.
func (s *Service) Refunds(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[int64], error) {
	if filters == nil {
		filters = &domain.AnalyticsFilters{}
	}

	query := domain.RecordQuery{CurrencyCode: filters.CurrencyCode}
	p, err := s.plan(ctx, MetricRefunds, filters, query, s.store.EarliestRefund)
	if err != nil {
		return nil, err
	}
	if p.branch == branchEmpty {
		return withCurrency(s, newEnvelope[int64](p, 0, 0), filters.CurrencyCode), nil
	}

	refunds, err := s.store.ListRefunds(ctx, p.query)
	if err != nil {
		return nil, newAnalyticsError(MetricRefunds, StageFetch, err)
	}
	if p, err = s.settle(ctx, MetricRefunds, p, len(refunds)); err != nil {
		return nil, err
	}

	current, previous := Split(p.classifier, refunds)
	sum := func(refunds []domain.RefundRecord) int64 {
		var total int64
		for _, refund := range refunds {
			total += refund.Amount
		}
		return total
	}

	return withCurrency(s, newEnvelope(p, sum(current), sum(previous)), filters.CurrencyCode), nil
}

// SalesChannelPopularity conta pedidos por canal de venda e bucket de data
func (s *Service) SalesChannelPopularity(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.SalesChannelPopularity], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.SalesChannelPopularity{}, []domain.SalesChannelPopularity{}), nil
	}

	current, previous, p, err := s.dimensionShares(ctx, MetricSalesChannelPopularity, domain.DimensionSalesChannel, filters, true)
	if err != nil {
		return nil, err
	}

	toRows := func(shares []Share) []domain.SalesChannelPopularity {
		rows := make([]domain.SalesChannelPopularity, 0, len(shares))
		for _, share := range shares {
			rows = append(rows, domain.SalesChannelPopularity{
				Date:             *share.Date,
				SalesChannelID:   share.ID,
				SalesChannelName: share.Name,
				OrderCount:       share.Count,
				Percentage:       share.Percentage,
			})
		}
		return rows
	}

	return newEnvelope(p, toRows(current), toRows(previous)), nil
}

// RegionsPopularity conta pedidos por região e bucket de data
func (s *Service) RegionsPopularity(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.RegionPopularity], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.RegionPopularity{}, []domain.RegionPopularity{}), nil
	}

	current, previous, p, err := s.dimensionShares(ctx, MetricRegionsPopularity, domain.DimensionRegion, filters, true)
	if err != nil {
		return nil, err
	}

	toRows := func(shares []Share) []domain.RegionPopularity {
		rows := make([]domain.RegionPopularity, 0, len(shares))
		for _, share := range shares {
			rows = append(rows, domain.RegionPopularity{
				Date:       *share.Date,
				RegionID:   share.ID,
				RegionName: share.Name,
				OrderCount: share.Count,
				Percentage: share.Percentage,
			})
		}
		return rows
	}

	return newEnvelope(p, toRows(current), toRows(previous)), nil
}
