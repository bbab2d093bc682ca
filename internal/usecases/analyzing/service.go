package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Nomes das métricas usados em erros, logs e métricas do prometheus
const (
	MetricOrdersHistory          = "orders_history"
	MetricOrdersCount            = "orders_count"
	MetricPaymentProvider        = "payment_provider_popularity"
	MetricSalesHistory           = "sales_history"
	MetricTotals                 = "totals"
	MetricTotalsHistory          = "totals_history"
	MetricRefunds                = "refunds"
	MetricSalesChannelPopularity = "sales_channel_popularity"
	MetricRegionsPopularity      = "regions_popularity"
	MetricDiscountsByCount       = "discounts_by_count"
)

// Service implementa Analyzer sobre um RecordStore
type Service struct {
	store    RecordStore
	currency CurrencyMetadata
	now      func() time.Time
}

// NewService cria uma nova instância do serviço de analytics
func NewService(store RecordStore, currency CurrencyMetadata) *Service {
	return &Service{
		store:    store,
		currency: currency,
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado para "agora" (dateRangeTo implícito, all-time)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

var _ Analyzer = (*Service)(nil)

type branch int

const (
	branchEmpty branch = iota
	branchSingle
	branchComparison
)

// period é o resultado da máquina de estados comum a todas as métricas
type period struct {
	branch      branch
	from        time.Time
	displayTo   time.Time
	compareFrom *time.Time
	compareTo   *time.Time
	resolution  domain.Resolution
	classifier  Classifier
	query       domain.RecordQuery

	// base são os filtros sem datas, usados para saber se o store tem algum registro
	base     domain.RecordQuery
	earliest earliestFunc

	// hasRecords indica que o início veio do primeiro registro do store
	hasRecords bool
}

// earliestFunc é a consulta usada pelo all-time para descobrir o primeiro registro
type earliestFunc func(ctx context.Context, query domain.RecordQuery) (*time.Time, error)

// plan decide o ramo (comparação, período único ou vazio) e monta a consulta ao store.
// query traz os filtros de status e moeda; as datas são preenchidas aqui.
func (s *Service) plan(ctx context.Context, metric string, filters *domain.AnalyticsFilters, query domain.RecordQuery, earliest earliestFunc) (*period, error) {
	if filters == nil {
		filters = &domain.AnalyticsFilters{}
	}
	base := query

	if filters.HasComparison() {
		from, to := *filters.From, *filters.To
		upper := domain.EndOfDay(to)
		if !from.Before(upper) {
			return &period{branch: branchEmpty}, nil
		}

		query.CreatedFrom = filters.CompareFrom
		query.CreatedBefore = &upper

		return &period{
			branch:      branchComparison,
			from:        from,
			displayTo:   to,
			compareFrom: filters.CompareFrom,
			compareTo:   filters.CompareTo,
			resolution:  domain.CalculateResolution(from, &to),
			classifier:  NewClassifier(from, &to, filters.CompareFrom),
			query:       query,
			base:        base,
			earliest:    earliest,
		}, nil
	}

	start, err := s.resolveStart(ctx, filters, query, earliest)
	if err != nil {
		return nil, newAnalyticsError(metric, StageResolveStart, err)
	}
	if start == nil {
		return &period{branch: branchEmpty}, nil
	}

	end := s.now()
	if filters.To != nil {
		end = *filters.To
	}

	p := &period{
		branch:     branchSingle,
		from:       *start,
		displayTo:  end,
		resolution: domain.CalculateResolution(*start, &end),
		classifier: NewClassifier(*start, filters.To, nil),
		base:       base,
		earliest:   earliest,
		hasRecords: filters.From == nil && filters.CompareFrom == nil,
	}

	query.CreatedFrom = start
	if filters.To != nil {
		upper := domain.EndOfDay(*filters.To)
		if !start.Before(upper) {
			return &period{branch: branchEmpty}, nil
		}
		query.CreatedBefore = &upper
	}
	p.query = query

	return p, nil
}

// settle confirma o ramo depois da busca. Um período sem registros mantém as datas,
// a menos que o store não tenha nenhum registro que atenda aos filtros.
func (s *Service) settle(ctx context.Context, metric string, p *period, fetched int) (*period, error) {
	if fetched > 0 || p.hasRecords || p.earliest == nil {
		return p, nil
	}

	first, err := p.earliest(ctx, p.base)
	if err != nil {
		return nil, newAnalyticsError(metric, StageResolveStart, err)
	}
	if first == nil {
		return &period{branch: branchEmpty}, nil
	}
	return p, nil
}

// newEnvelope preenche as datas do envelope conforme o ramo
func newEnvelope[T any](p *period, current, previous T) *domain.Envelope[T] {
	envelope := &domain.Envelope[T]{Current: current, Previous: previous}
	if p.branch == branchEmpty {
		return envelope
	}

	envelope.DateRangeFrom = domain.EpochMillis(p.from)
	envelope.DateRangeTo = domain.EpochMillis(p.displayTo)
	if p.branch == branchComparison {
		envelope.DateRangeFromCompareTo = domain.EpochMillis(*p.compareFrom)
		envelope.DateRangeToCompareTo = domain.EpochMillis(*p.compareTo)
	}
	return envelope
}

// withCurrency adiciona os metadados de exibição da moeda
func withCurrency[T any](s *Service, envelope *domain.Envelope[T], currencyCode string) *domain.Envelope[T] {
	if currencyCode == "" || s.currency == nil {
		return envelope
	}
	digits := s.currency.DecimalDigits(currencyCode)
	envelope.CurrencyCode = currencyCode
	envelope.CurrencyDecimalDigits = &digits
	return envelope
}

func orderQuery(filters *domain.AnalyticsFilters, byCurrency bool) domain.RecordQuery {
	query := domain.RecordQuery{}
	if filters == nil {
		return query
	}
	query.Statuses = filters.OrderStatuses
	if byCurrency {
		query.CurrencyCode = filters.CurrencyCode
	}
	return query
}

func hasStatuses(filters *domain.AnalyticsFilters) bool {
	return filters != nil && len(filters.OrderStatuses) > 0
}
