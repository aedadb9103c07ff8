// Package report aggregates ledger data into category breakdowns,
// month-bucketed trends, and exportable report structures. Nothing in
// this package renders; sinks (terminal, CSV writer, chart generator)
// consume what it produces.
package report

import (
	"time"

	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/ledger"
	"github.com/nileshk/paisa/internal/model"
)

// MonthBucket holds one calendar month's spending per category; months
// with no expenses carry an empty Totals map so trend series stay
// contiguous.
type MonthBucket struct {
	Month  time.Time
	Totals map[model.Category]float64
}

// inRange reports whether a date falls inside the inclusive bounds,
// comparing calendar dates so time-of-day never excludes a record.
func inRange(date time.Time, start, end *time.Time) bool {
	d := dateOnly(date)
	if start != nil && d.Before(dateOnly(*start)) {
		return false
	}
	if end != nil && d.After(dateOnly(*end)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Breakdown sums each in-range expense's converted amount into its
// category bucket. Nil bounds mean unbounded; only categories with a
// positive total appear. Callers sort for display.
func Breakdown(l *ledger.Ledger, conv *convert.Converter, target model.Currency, start, end *time.Time) (map[model.Category]float64, error) {
	totals := make(map[model.Category]float64)

	for _, e := range l.Expenses() {
		if !inRange(e.Date, start, end) {
			continue
		}
		amount, err := conv.Convert(e.Amount, e.Currency, target)
		if err != nil {
			return nil, err
		}
		totals[e.Category] += amount
	}

	for category, total := range totals {
		if total <= 0 {
			delete(totals, category)
		}
	}

	return totals, nil
}

// MonthlyTrend builds one bucket per calendar month from start's month
// through end's month inclusive. Omitted bounds default to the earliest
// and latest expense dates; with no expenses and an incomplete explicit
// range there is nothing to anchor the buckets to and ErrEmptyLedger is
// returned.
func MonthlyTrend(l *ledger.Ledger, conv *convert.Converter, target model.Currency, start, end *time.Time) ([]MonthBucket, error) {
	expenses := l.Expenses()

	if start == nil || end == nil {
		if len(expenses) == 0 {
			return nil, common.ErrEmptyLedger
		}
		minDate, maxDate := expenses[0].Date, expenses[0].Date
		for _, e := range expenses[1:] {
			if e.Date.Before(minDate) {
				minDate = e.Date
			}
			if e.Date.After(maxDate) {
				maxDate = e.Date
			}
		}
		if start == nil {
			start = &minDate
		}
		if end == nil {
			end = &maxDate
		}
	}

	firstMonth := monthOf(*start)
	lastMonth := monthOf(*end)

	var buckets []MonthBucket
	index := make(map[time.Time]int)
	for month := firstMonth; !month.After(lastMonth); month = month.AddDate(0, 1, 0) {
		index[month] = len(buckets)
		buckets = append(buckets, MonthBucket{
			Month:  month,
			Totals: make(map[model.Category]float64),
		})
	}

	for _, e := range expenses {
		if !inRange(e.Date, start, end) {
			continue
		}
		amount, err := conv.Convert(e.Amount, e.Currency, target)
		if err != nil {
			return nil, err
		}
		i, ok := index[monthOf(e.Date)]
		if !ok {
			continue
		}
		buckets[i].Totals[e.Category] += amount
	}

	return buckets, nil
}
