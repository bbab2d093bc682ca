package analyzing

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// OrdersHistory conta pedidos por bucket de data
func (s *Service) OrdersHistory(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.OrdersBucket], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.OrdersBucket{}, []domain.OrdersBucket{}), nil
	}

	p, err := s.plan(ctx, MetricOrdersHistory, filters, orderQuery(filters, false), s.store.EarliestOrder)
	if err != nil {
		return nil, err
	}
	if p.branch == branchEmpty {
		return newEnvelope(p, []domain.OrdersBucket{}, []domain.OrdersBucket{}), nil
	}

	orders, err := s.store.ListOrders(ctx, p.query)
	if err != nil {
		return nil, newAnalyticsError(MetricOrdersHistory, StageFetch, err)
	}
	if p, err = s.settle(ctx, MetricOrdersHistory, p, len(orders)); err != nil {
		return nil, err
	}

	current, previous := Split(p.classifier, orders)
	return newEnvelope(p, CountByDate(current, p.resolution), CountByDate(previous, p.resolution)), nil
}

// OrdersCount conta pedidos em cada período
func (s *Service) OrdersCount(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[int64], error) {
	if !hasStatuses(filters) {
		return newEnvelope[int64](&period{branch: branchEmpty}, 0, 0), nil
	}

	p, err := s.plan(ctx, MetricOrdersCount, filters, orderQuery(filters, false), s.store.EarliestOrder)
	if err != nil {
		return nil, err
	}
	if p.branch == branchEmpty {
		return newEnvelope[int64](p, 0, 0), nil
	}

	orders, err := s.store.ListOrders(ctx, p.query)
	if err != nil {
		return nil, newAnalyticsError(MetricOrdersCount, StageFetch, err)
	}
	if p, err = s.settle(ctx, MetricOrdersCount, p, len(orders)); err != nil {
		return nil, err
	}

	current, previous := Split(p.classifier, orders)
	return newEnvelope(p, int64(len(current)), int64(len(previous))), nil
}

// PaymentProviderPopularity calcula a participação de cada provedor de pagamento no período
func (s *Service) PaymentProviderPopularity(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.PaymentProviderShare], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.PaymentProviderShare{}, []domain.PaymentProviderShare{}), nil
	}

	current, previous, p, err := s.dimensionShares(ctx, MetricPaymentProvider, domain.DimensionPaymentProvider, filters, false)
	if err != nil {
		return nil, err
	}

	toRows := func(shares []Share) []domain.PaymentProviderShare {
		rows := make([]domain.PaymentProviderShare, 0, len(shares))
		for _, share := range shares {
			rows = append(rows, domain.PaymentProviderShare{
				PaymentProviderID: share.ID,
				OrderCount:        share.Count,
				Percentage:        share.Percentage,
			})
		}
		return rows
	}

	return newEnvelope(p, toRows(current), toRows(previous)), nil
}

// dimensionShares busca os pedidos associados à dimensão e calcula as participações de cada período.
// withDates agrupa também por bucket de data na resolução do período.
func (s *Service) dimensionShares(
	ctx context.Context,
	metric string,
	dimension domain.Dimension,
	filters *domain.AnalyticsFilters,
	withDates bool,
) ([]Share, []Share, *period, error) {
	p, err := s.plan(ctx, metric, filters, orderQuery(filters, false), s.store.EarliestOrder)
	if err != nil {
		return nil, nil, nil, err
	}
	if p.branch == branchEmpty {
		return []Share{}, []Share{}, p, nil
	}

	records, err := s.store.ListOrderDimensions(ctx, dimension, p.query)
	if err != nil {
		return nil, nil, nil, newAnalyticsError(metric, StageFetch, err)
	}
	if p, err = s.settle(ctx, metric, p, len(records)); err != nil {
		return nil, nil, nil, err
	}

	var resolution domain.Resolution
	if withDates {
		resolution = p.resolution
	}

	current, previous := Split(p.classifier, records)
	return Shares(current, resolution), Shares(previous, resolution), p, nil
}
