package report

import (
	"testing"
	"time"

	"github.com/nileshk/paisa/internal/budget"
	"github.com/nileshk/paisa/internal/ledger"
	"github.com/nileshk/paisa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	l := seededLedger(t)
	conv := newConverter(t)

	tracker := budget.NewTracker(conv, nil)
	tracker.SetPolicy(model.CategoryHousing, 20000, model.CurrencyINR, 90)
	require.NoError(t, tracker.AddSpending(model.CategoryHousing, 15000, model.CurrencyINR))

	s, err := BuildSummary(l, conv, tracker, model.CurrencyINR, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "asha", s.UserName)
	assert.Equal(t, model.CurrencyINR, s.Currency)

	// Lines sorted by amount descending; housing dwarfs the rest.
	require.NotEmpty(t, s.Lines)
	assert.Equal(t, model.CategoryHousing, s.Lines[0].Category)

	var percentSum, amountSum float64
	for _, line := range s.Lines {
		percentSum += line.Percent
		amountSum += line.Amount
	}
	assert.InDelta(t, 100.0, percentSum, 1e-6)
	assert.InDelta(t, s.Total, amountSum, 1e-6)

	require.Len(t, s.Budgets, 1)
	assert.Equal(t, model.CategoryHousing, s.Budgets[0].Category)
	assert.InDelta(t, 15000, s.Budgets[0].Spent, 1e-9)
	assert.InDelta(t, 5000, s.Budgets[0].Remaining, 1e-9)
	assert.InDelta(t, 75.0, s.Budgets[0].PercentUsed, 1e-9)

	assert.Empty(t, s.Recurring)
}

func TestBuildSummary_ConvertsBudgetFigures(t *testing.T) {
	l := ledger.New("asha", model.CurrencyINR, model.DefaultTagRegistry(), nil)
	conv := newConverter(t)

	tracker := budget.NewTracker(conv, nil)
	tracker.SetPolicy(model.CategoryTravel, 120, model.CurrencyUSD, 80)
	require.NoError(t, tracker.AddSpending(model.CategoryTravel, 60, model.CurrencyUSD))

	s, err := BuildSummary(l, conv, tracker, model.CurrencyINR, nil, nil)
	require.NoError(t, err)

	require.Len(t, s.Budgets, 1)
	line := s.Budgets[0]
	// Bootstrap rate: 1 INR = 0.012 USD, so $120 = ₹10000.
	assert.InDelta(t, 120/0.012, line.Limit, 1e-6)
	assert.InDelta(t, 60/0.012, line.Spent, 1e-6)
	assert.InDelta(t, 60/0.012, line.Remaining, 1e-6)
	// Percentage is currency-independent.
	assert.InDelta(t, 50.0, line.PercentUsed, 1e-9)
}

func TestBuildSummary_RecurringConverted(t *testing.T) {
	l := ledger.New("asha", model.CurrencyINR, model.DefaultTagRegistry(), nil)
	conv := newConverter(t)

	addExpense(t, l, ledger.AddOptions{
		Amount:              12,
		Currency:            model.CurrencyUSD,
		Description:         "music subscription",
		IsRecurring:         true,
		RecurringPeriodDays: 30,
		Date:                date(2026, time.May, 1),
	})

	s, err := BuildSummary(l, conv, nil, model.CurrencyINR, nil, nil)
	require.NoError(t, err)

	require.Len(t, s.Recurring, 1)
	assert.Equal(t, "music subscription", s.Recurring[0].Description)
	assert.Equal(t, 30, s.Recurring[0].PeriodDays)
	assert.InDelta(t, 12/0.012, s.Recurring[0].Amount, 1e-6)
}

func TestBuildCSV(t *testing.T) {
	l := seededLedger(t)
	conv := newConverter(t)

	start := date(2026, time.January, 1)
	end := date(2026, time.January, 31)
	records, err := BuildCSV(l, conv, model.CurrencyINR, &start, &end)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "weekly groceries", records[0].Description)
	assert.Equal(t, model.CurrencyINR, records[0].Currency)

	fields := records[0].Fields()
	require.Len(t, fields, len(CSVHeader()))
	assert.Equal(t, "2026-01-05", fields[0])
	assert.Equal(t, "500.00", fields[1])
	assert.Equal(t, "INR", fields[2])
	assert.Equal(t, "Food", fields[3])
	assert.Equal(t, "false", fields[6])
	assert.Equal(t, "groceries", fields[8])
}
