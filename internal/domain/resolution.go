package domain

import "time"

// Resolution é a granularidade usada para agrupar registros em buckets
type Resolution string

const (
	ResolutionDay   Resolution = "day"
	ResolutionMonth Resolution = "month"
)

// DayResolutionMaxDays é o maior intervalo (em dias) agrupado por dia.
// Acima disso todas as métricas agrupam por mês.
const DayResolutionMaxDays = 60

const hoursPerDay = 24

// CalculateResolution escolhe a resolução a partir do intervalo entre from e to.
// Quando to é nil o intervalo termina agora.
func CalculateResolution(from time.Time, to *time.Time) Resolution {
	end := time.Now()
	if to != nil {
		end = *to
	}

	spanDays := end.Sub(from).Hours() / hoursPerDay
	if spanDays <= DayResolutionMaxDays {
		return ResolutionDay
	}

	return ResolutionMonth
}

// Truncate retorna o início do bucket de t em UTC
func Truncate(t time.Time, r Resolution) time.Time {
	t = t.UTC()
	switch r {
	case ResolutionMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// EndOfDay retorna o primeiro instante do dia seguinte a t (UTC), limite exclusivo
// usado para tratar "to" como inclusivo do dia inteiro.
func EndOfDay(t time.Time) time.Time {
	return Truncate(t, ResolutionDay).AddDate(0, 0, 1)
}
