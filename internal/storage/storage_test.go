package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *service.UserSnapshot {
	return &service.UserSnapshot{
		Name:            "asha",
		DefaultCurrency: "INR",
		Expenses: []service.ExpenseSnapshot{
			{
				Amount:        500,
				Description:   "weekly groceries",
				Date:          "2026-01-05",
				Category:      "FOOD",
				Currency:      "INR",
				Tags:          []string{"groceries"},
				PaymentMethod: "UPI",
			},
			{
				Amount:              12,
				Description:         "streaming",
				Date:                "2026-02-10",
				Category:            "ENTERTAINMENT",
				Currency:            "USD",
				IsRecurring:         true,
				RecurringPeriodDays: 30,
				PaymentMethod:       "Credit Card",
			},
		},
		Budgets: []service.BudgetSnapshot{
			{Category: "FOOD", MonthlyLimit: 2000, Currency: "INR", AlertThreshold: 50},
		},
		Tags: map[string]service.TagSnapshot{
			"groceries": {Category: "FOOD"},
			"rent":      {Category: "HOUSING"},
		},
	}
}

func TestSnapshotFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "paisa.json")
	store := NewSnapshotFile(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestSnapshotFile_LoadMissing(t *testing.T) {
	store := NewSnapshotFile(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paisa.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "paisa.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStore_SaveReplacesPriorState(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "paisa.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	smaller := &service.UserSnapshot{
		Name:            "asha",
		DefaultCurrency: "USD",
		Tags:            map[string]service.TagSnapshot{},
	}
	require.NoError(t, store.Save(ctx, smaller))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.DefaultCurrency)
	assert.Empty(t, got.Expenses)
	assert.Empty(t, got.Budgets)
	assert.Empty(t, got.Tags)
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
