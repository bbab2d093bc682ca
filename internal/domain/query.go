package domain

import "time"

// RecordQuery descreve os filtros aplicados pelo store.
// CreatedBefore é exclusivo; campos vazios não filtram.
type RecordQuery struct {
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	Statuses      []string
	CurrencyCode  string
}
