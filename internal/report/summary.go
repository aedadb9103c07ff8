package report

import (
	"sort"
	"time"

	"github.com/nileshk/paisa/internal/budget"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/ledger"
	"github.com/nileshk/paisa/internal/model"
)

// BreakdownLine is one category's share of the summary total.
type BreakdownLine struct {
	Category model.Category
	Amount   float64
	Percent  float64
}

// BudgetLine is one budget policy's status, expressed in the summary's
// target currency.
type BudgetLine struct {
	Category    model.Category
	Spent       float64
	Limit       float64
	Remaining   float64
	PercentUsed float64
}

// RecurringLine is one recurring expense, converted to the target
// currency.
type RecurringLine struct {
	Description string
	Amount      float64
	PeriodDays  int
}

// Summary is the assembled text/CSV report structure: header metadata,
// breakdown lines sorted by amount descending, the total, budget status
// lines, and recurring expenses. Rendering belongs to the caller.
type Summary struct {
	UserName  string
	Currency  model.Currency
	Start     *time.Time
	End       *time.Time
	Lines     []BreakdownLine
	Budgets   []BudgetLine
	Recurring []RecurringLine
	Total     float64
}

// BuildSummary assembles a summary over the given range. tracker may be
// nil when no budgets are configured.
func BuildSummary(l *ledger.Ledger, conv *convert.Converter, tracker *budget.Tracker, target model.Currency, start, end *time.Time) (*Summary, error) {
	totals, err := Breakdown(l, conv, target, start, end)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		UserName: l.UserName(),
		Currency: target,
		Start:    start,
		End:      end,
	}

	for _, amount := range totals {
		s.Total += amount
	}

	for category, amount := range totals {
		percent := 0.0
		if s.Total > 0 {
			percent = amount / s.Total * 100
		}
		s.Lines = append(s.Lines, BreakdownLine{
			Category: category,
			Amount:   amount,
			Percent:  percent,
		})
	}
	sort.Slice(s.Lines, func(i, j int) bool {
		if s.Lines[i].Amount != s.Lines[j].Amount {
			return s.Lines[i].Amount > s.Lines[j].Amount
		}
		return s.Lines[i].Category < s.Lines[j].Category
	})

	if tracker != nil {
		for _, p := range tracker.Policies() {
			line := BudgetLine{
				Category:    p.Category,
				Spent:       p.Spent(),
				Limit:       p.MonthlyLimit,
				Remaining:   p.Remaining(),
				PercentUsed: p.PercentUsed(),
			}
			if p.Currency != target {
				if line.Spent, err = conv.Convert(p.Spent(), p.Currency, target); err != nil {
					return nil, err
				}
				if line.Limit, err = conv.Convert(p.MonthlyLimit, p.Currency, target); err != nil {
					return nil, err
				}
				if line.Remaining, err = conv.Convert(p.Remaining(), p.Currency, target); err != nil {
					return nil, err
				}
			}
			s.Budgets = append(s.Budgets, line)
		}
	}

	for _, e := range l.Recurring() {
		amount, err := conv.Convert(e.Amount, e.Currency, target)
		if err != nil {
			return nil, err
		}
		s.Recurring = append(s.Recurring, RecurringLine{
			Description: e.Description,
			Amount:      amount,
			PeriodDays:  e.RecurringPeriodDays,
		})
	}

	return s, nil
}
