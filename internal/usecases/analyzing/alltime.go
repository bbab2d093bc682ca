package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// resolveStart devolve o início do período único: from, compareFrom (comparação incompleta)
// ou, sem nenhum dos dois, a data do primeiro registro que atende aos mesmos filtros.
// nil quando não existe registro.
func (s *Service) resolveStart(ctx context.Context, filters *domain.AnalyticsFilters, query domain.RecordQuery, earliest earliestFunc) (*time.Time, error) {
	if filters.From != nil {
		return filters.From, nil
	}
	if filters.CompareFrom != nil {
		return filters.CompareFrom, nil
	}

	query.CreatedFrom = nil
	query.CreatedBefore = nil
	if filters.To != nil {
		upper := domain.EndOfDay(*filters.To)
		query.CreatedBefore = &upper
	}

	return earliest(ctx, query)
}
