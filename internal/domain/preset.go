package domain

import (
	"errors"
	"time"
)

// DateLasts são os períodos pré-definidos aceitos em dateLasts
type DateLasts string

const (
	DateLastsToday     DateLasts = "today"
	DateLastsThisWeek  DateLasts = "this-week"
	DateLastsThisMonth DateLasts = "this-month"
	DateLastsThisYear  DateLasts = "this-year"
	DateLastsLastWeek  DateLasts = "last-week"
	DateLasts30Days    DateLasts = "last-30-days"
	DateLastsLastMonth DateLasts = "last-month"
	DateLasts60Days    DateLasts = "last-60-days"
	DateLastsLastYear  DateLasts = "last-year"
	DateLastsAll       DateLasts = "all"
)

// LastMonthApproxDays é a aproximação fixa usada em "last-month": os últimos 29 dias
// mais o dia corrente, e não o mês de calendário anterior.
const LastMonthApproxDays = 29

var ErrUnknownDateLasts = errors.New("período pré-definido desconhecido")

// DateRange é um intervalo [From, To]
type DateRange struct {
	From time.Time
	To   time.Time
}

// PresetRange converte um período pré-definido no intervalo atual e no intervalo de comparação,
// que é a janela imediatamente anterior. "all" retorna os dois nil.
func PresetRange(preset DateLasts, now time.Time) (current *DateRange, compare *DateRange, err error) {
	now = now.UTC()
	today := Truncate(now, ResolutionDay)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := Truncate(now, ResolutionMonth)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	switch preset {
	case DateLastsAll:
		return nil, nil, nil
	case DateLastsToday:
		current = &DateRange{From: today, To: now}
		compare = &DateRange{From: today.AddDate(0, 0, -1), To: today}
	case DateLastsThisWeek:
		current = &DateRange{From: weekStart, To: now}
		compare = &DateRange{From: weekStart.AddDate(0, 0, -7), To: weekStart}
	case DateLastsThisMonth:
		current = &DateRange{From: monthStart, To: now}
		compare = &DateRange{From: monthStart.AddDate(0, -1, 0), To: monthStart}
	case DateLastsThisYear:
		current = &DateRange{From: yearStart, To: now}
		compare = &DateRange{From: yearStart.AddDate(-1, 0, 0), To: yearStart}
	case DateLastsLastWeek:
		from := weekStart.AddDate(0, 0, -7)
		current = &DateRange{From: from, To: weekStart.AddDate(0, 0, -1)}
		compare = &DateRange{From: from.AddDate(0, 0, -7), To: from}
	case DateLasts30Days:
		current, compare = trailingDays(today, now, 30)
	case DateLastsLastMonth:
		current, compare = trailingDays(today, now, LastMonthApproxDays)
	case DateLasts60Days:
		current, compare = trailingDays(today, now, 60)
	case DateLastsLastYear:
		from := yearStart.AddDate(-1, 0, 0)
		current = &DateRange{From: from, To: yearStart.AddDate(0, 0, -1)}
		compare = &DateRange{From: from.AddDate(-1, 0, 0), To: from}
	default:
		return nil, nil, ErrUnknownDateLasts
	}

	return current, compare, nil
}

// "to" do intervalo atual cobre o dia inteiro, então a comparação tem days+1 dias
func trailingDays(today, now time.Time, days int) (*DateRange, *DateRange) {
	from := today.AddDate(0, 0, -days)
	return &DateRange{From: from, To: now},
		&DateRange{From: from.AddDate(0, 0, -(days + 1)), To: from}
}
