package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Aggregate agrupa registros pela chave retornada por keyFn, acumulando com foldFn
func Aggregate[R any, K comparable, V any](records []R, keyFn func(R) K, foldFn func(V, R) V) map[K]V {
	groups := make(map[K]V)
	for _, record := range records {
		key := keyFn(record)
		groups[key] = foldFn(groups[key], record)
	}
	return groups
}

// byDate retorna a chave de bucket do registro na resolução informada
func byDate[R timestamped](resolution domain.Resolution) func(R) time.Time {
	return func(record R) time.Time {
		return domain.Truncate(record.Timestamp(), resolution)
	}
}

// sortedDates retorna as chaves em ordem crescente
func sortedDates[V any](groups map[time.Time]V) []time.Time {
	dates := make([]time.Time, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// CountByDate conta registros por bucket, em ordem crescente de data
func CountByDate[R timestamped](records []R, resolution domain.Resolution) []domain.OrdersBucket {
	groups := Aggregate(records, byDate[R](resolution), func(count int64, _ R) int64 {
		return count + 1
	})

	buckets := make([]domain.OrdersBucket, 0, len(groups))
	for _, date := range sortedDates(groups) {
		buckets = append(buckets, domain.OrdersBucket{Date: date, OrderCount: groups[date]})
	}
	return buckets
}

// SumByDate soma valueFn por bucket, em ordem crescente de data
func SumByDate[R timestamped](records []R, resolution domain.Resolution, valueFn func(R) int64) []domain.SalesBucket {
	groups := Aggregate(records, byDate[R](resolution), func(sum int64, record R) int64 {
		return sum + valueFn(record)
	})

	buckets := make([]domain.SalesBucket, 0, len(groups))
	for _, date := range sortedDates(groups) {
		buckets = append(buckets, domain.SalesBucket{Date: date, Total: groups[date]})
	}
	return buckets
}

// TotalsByDate soma receita sem frete, frete e impostos por bucket
func TotalsByDate(orders []domain.OrderRecord, resolution domain.Resolution) []domain.TotalsBucket {
	groups := Aggregate(orders, byDate[domain.OrderRecord](resolution), domain.Totals.Add)

	buckets := make([]domain.TotalsBucket, 0, len(groups))
	for _, date := range sortedDates(groups) {
		buckets = append(buckets, domain.TotalsBucket{Date: date, Totals: groups[date]})
	}
	return buckets
}

// Share é a participação de um grupo no total de pedidos
type Share struct {
	Date       *time.Time
	ID         string
	Name       string
	Count      int64
	Percentage decimal.Decimal
}

type shareKey struct {
	date time.Time
	id   string
}

// Shares conta registros por dimensão (e por bucket quando resolution não é vazia) e calcula
// a participação de cada grupo como round(count*100/total, 2). Total zero retorna vazio.
// Ordenado por data e depois por id.
func Shares(records []domain.DimensionRecord, resolution domain.Resolution) []Share {
	if len(records) == 0 {
		return []Share{}
	}

	names := make(map[string]string)
	groups := Aggregate(records, func(record domain.DimensionRecord) shareKey {
		names[record.DimensionID] = record.DimensionName
		key := shareKey{id: record.DimensionID}
		if resolution != "" {
			key.date = domain.Truncate(record.CreatedAt, resolution)
		}
		return key
	}, func(count int64, _ domain.DimensionRecord) int64 {
		return count + 1
	})

	total := decimal.NewFromInt(int64(len(records)))
	shares := make([]Share, 0, len(groups))
	for key, count := range groups {
		share := Share{
			ID:         key.id,
			Name:       names[key.id],
			Count:      count,
			Percentage: decimal.NewFromInt(count * 100).Div(total).Round(2),
		}
		if resolution != "" {
			date := key.date
			share.Date = &date
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Date != nil && !shares[i].Date.Equal(*shares[j].Date) {
			return shares[i].Date.Before(*shares[j].Date)
		}
		return shares[i].ID < shares[j].ID
	})
	return shares
}

// TopShares ordena por quantidade decrescente (desempate por id) e mantém os limit primeiros.
// limit <= 0 mantém todos.
func TopShares(shares []Share, limit int) []Share {
	ranked := make([]Share, len(shares))
	copy(ranked, shares)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
