package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.Store using SQLite. Snapshots are
// saved whole: each Save replaces the previous state inside one
// transaction.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (and migrates) a SQLite-backed store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: dbPath cannot be empty", common.ErrInvalidConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			default_currency TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			amount REAL NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL,
			category TEXT NOT NULL,
			currency TEXT NOT NULL,
			is_recurring INTEGER NOT NULL DEFAULT 0,
			recurring_period_days INTEGER NOT NULL DEFAULT 0,
			tags TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL DEFAULT 'Cash'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			category TEXT PRIMARY KEY,
			monthly_limit REAL NOT NULL,
			currency TEXT NOT NULL,
			alert_threshold REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			name TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the whole persisted snapshot, or common.ErrNotFound when
// no profile has been saved yet. Tags are returned through the shared
// snapshot shape, whose map loses registration order; sessions restore
// them name-sorted.
func (s *SQLiteStore) Load(ctx context.Context) (*service.UserSnapshot, error) {
	snapshot := &service.UserSnapshot{Tags: make(map[string]service.TagSnapshot)}

	row := s.db.QueryRowContext(ctx, `SELECT name, default_currency FROM profile WHERE id = 1`)
	if err := row.Scan(&snapshot.Name, &snapshot.DefaultCurrency); err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, description, date, category, currency,
		       is_recurring, recurring_period_days, tags, payment_method
		FROM expenses
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e service.ExpenseSnapshot
		var recurring int
		var tags string
		if err := rows.Scan(&e.Amount, &e.Description, &e.Date, &e.Category, &e.Currency,
			&recurring, &e.RecurringPeriodDays, &tags, &e.PaymentMethod); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.IsRecurring = recurring != 0
		if tags != "" {
			e.Tags = strings.Split(tags, ",")
		}
		snapshot.Expenses = append(snapshot.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	budgetRows, err := s.db.QueryContext(ctx, `
		SELECT category, monthly_limit, currency, alert_threshold
		FROM budgets
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer budgetRows.Close()

	for budgetRows.Next() {
		var b service.BudgetSnapshot
		if err := budgetRows.Scan(&b.Category, &b.MonthlyLimit, &b.Currency, &b.AlertThreshold); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		snapshot.Budgets = append(snapshot.Budgets, b)
	}
	if err := budgetRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	tagRows, err := s.db.QueryContext(ctx, `SELECT name, category FROM tags ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var name, category string
		if err := tagRows.Scan(&name, &category); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		snapshot.Tags[name] = service.TagSnapshot{Category: category}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return snapshot, nil
}

// Save replaces the stored state with the given snapshot in one
// transaction.
func (s *SQLiteStore) Save(ctx context.Context, snapshot *service.UserSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"profile", "expenses", "budgets", "tags"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO profile (id, name, default_currency) VALUES (1, ?, ?)`,
		snapshot.Name, snapshot.DefaultCurrency); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	for _, e := range snapshot.Expenses {
		recurring := 0
		if e.IsRecurring {
			recurring = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO expenses (amount, description, date, category, currency,
			                      is_recurring, recurring_period_days, tags, payment_method)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.Amount, e.Description, e.Date, e.Category, e.Currency,
			recurring, e.RecurringPeriodDays, strings.Join(e.Tags, ","), e.PaymentMethod); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
	}

	for _, b := range snapshot.Budgets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO budgets (category, monthly_limit, currency, alert_threshold)
			VALUES (?, ?, ?, ?)`,
			b.Category, b.MonthlyLimit, b.Currency, b.AlertThreshold); err != nil {
			return fmt.Errorf("failed to save budget: %w", err)
		}
	}

	names := make([]string, 0, len(snapshot.Tags))
	for name := range snapshot.Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tags (name, category, position) VALUES (?, ?, ?)`,
			name, snapshot.Tags[name].Category, i); err != nil {
			return fmt.Errorf("failed to save tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}
