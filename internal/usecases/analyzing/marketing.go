package analyzing

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// DiscountsByCount ranqueia os descontos mais usados em cada período.
// filters.Limit limita o ranking (0 mantém todos).
func (s *Service) DiscountsByCount(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Envelope[[]domain.DiscountUsage], error) {
	if !hasStatuses(filters) {
		return newEnvelope(&period{branch: branchEmpty}, []domain.DiscountUsage{}, []domain.DiscountUsage{}), nil
	}

	current, previous, p, err := s.dimensionShares(ctx, MetricDiscountsByCount, domain.DimensionDiscount, filters, false)
	if err != nil {
		return nil, err
	}

	toRows := func(shares []Share) []domain.DiscountUsage {
		ranked := TopShares(shares, filters.Limit)
		rows := make([]domain.DiscountUsage, 0, len(ranked))
		for _, share := range ranked {
			rows = append(rows, domain.DiscountUsage{
				DiscountID:   share.ID,
				DiscountCode: share.Name,
				Sum:          share.Count,
				Percentage:   share.Percentage,
			})
		}
		return rows
	}

	return newEnvelope(p, toRows(current), toRows(previous)), nil
}
