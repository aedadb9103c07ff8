package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/nileshk/paisa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedSpend struct {
	category model.Category
	amount   float64
	currency model.Currency
}

type fakeRecorder struct {
	policies map[model.Category]bool
	spends   []recordedSpend
	err      error
}

func (f *fakeRecorder) HasPolicy(category model.Category) bool {
	return f.policies[category]
}

func (f *fakeRecorder) AddSpending(category model.Category, amount float64, currency model.Currency) error {
	if f.err != nil {
		return f.err
	}
	f.spends = append(f.spends, recordedSpend{category: category, amount: amount, currency: currency})
	return nil
}

func TestLedger_AddDefaults(t *testing.T) {
	l := New("asha", model.CurrencyINR, model.DefaultTagRegistry(), nil)

	before := time.Now()
	exp, err := l.Add(AddOptions{Amount: 250, Description: "auto fare"})
	require.NoError(t, err)

	assert.Equal(t, model.CurrencyINR, exp.Currency)
	assert.Equal(t, model.DefaultPaymentMethod, exp.PaymentMethod)
	assert.False(t, exp.Date.Before(before))
	assert.Empty(t, exp.Tags)
}

func TestLedger_AddClassifiesFromTags(t *testing.T) {
	l := New("asha", model.CurrencyINR, model.DefaultTagRegistry(), nil)

	exp, err := l.Add(AddOptions{
		Amount:      500,
		Description: "weekly shop",
		Tags:        []string{"groceries"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFood, exp.Category)
}

func TestLedger_AddNotifiesBudgetOnlyWithPolicy(t *testing.T) {
	recorder := &fakeRecorder{policies: map[model.Category]bool{model.CategoryFood: true}}
	l := New("asha", model.CurrencyINR, model.DefaultTagRegistry(), recorder)

	_, err := l.Add(AddOptions{Amount: 500, Tags: []string{"groceries"}})
	require.NoError(t, err)
	_, err = l.Add(AddOptions{Amount: 900, Tags: []string{"rent"}})
	require.NoError(t, err)

	require.Len(t, recorder.spends, 1)
	assert.Equal(t, model.CategoryFood, recorder.spends[0].category)
	assert.Equal(t, 500.0, recorder.spends[0].amount)
	assert.Equal(t, model.CurrencyINR, recorder.spends[0].currency)
}

func TestLedger_AddKeepsRecordWhenBudgetFails(t *testing.T) {
	recorder := &fakeRecorder{
		policies: map[model.Category]bool{model.CategoryFood: true},
		err:      errors.New("unsupported currency"),
	}
	l := New("asha", model.CurrencyINR, model.DefaultTagRegistry(), recorder)

	_, err := l.Add(AddOptions{Amount: 500, Tags: []string{"groceries"}})
	require.Error(t, err)

	// The record stays appended; budget tracking failure does not
	// roll back the insert.
	assert.Equal(t, 1, l.Len())
}

func TestLedger_InsertionOrderAndImmutability(t *testing.T) {
	l := New("asha", model.CurrencyINR, model.DefaultTagRegistry(), nil)

	for i, desc := range []string{"first", "second", "third"} {
		_, err := l.Add(AddOptions{
			Amount:      float64(i + 1),
			Description: desc,
			Date:        time.Date(2026, time.March, 10-i, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	got := l.Expenses()
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Description)
	assert.Equal(t, "third", got[2].Description)

	// Mutating the returned slice must not affect the ledger.
	got[0].Description = "hacked"
	assert.Equal(t, "first", l.Expenses()[0].Description)
}

func TestLedger_RecurringAndByTag(t *testing.T) {
	l := New("asha", model.CurrencyINR, model.DefaultTagRegistry(), nil)

	_, err := l.Add(AddOptions{Amount: 15000, Description: "rent", Tags: []string{"rent"}, IsRecurring: true, RecurringPeriodDays: 30})
	require.NoError(t, err)
	_, err = l.Add(AddOptions{Amount: 300, Description: "snacks", Tags: []string{"dining"}})
	require.NoError(t, err)
	_, err = l.Add(AddOptions{Amount: 600, Description: "netflix", IsRecurring: true, RecurringPeriodDays: 30})
	require.NoError(t, err)

	recurring := l.Recurring()
	require.Len(t, recurring, 2)
	assert.Equal(t, "rent", recurring[0].Description)
	assert.Equal(t, "netflix", recurring[1].Description)

	tagged := l.ByTag("dining")
	require.Len(t, tagged, 1)
	assert.Equal(t, "snacks", tagged[0].Description)
	assert.Empty(t, l.ByTag("nope"))
}
