package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/ledger"
	"github.com/nileshk/paisa/internal/model"
)

// CSVRecord is one flat expense row with amounts converted into the
// export's target currency. An external writer persists the rows; this
// package only produces them.
type CSVRecord struct {
	Date                time.Time
	Description         string
	PaymentMethod       string
	Tags                []string
	Amount              float64
	Currency            model.Currency
	Category            model.Category
	IsRecurring         bool
	RecurringPeriodDays int
}

// CSVHeader returns the column names, in the order Fields emits values.
func CSVHeader() []string {
	return []string{
		"Date",
		"Amount",
		"Currency",
		"Category",
		"Description",
		"Payment Method",
		"Is Recurring",
		"Recurring Period (days)",
		"Tags",
	}
}

// Fields renders the record as one CSV row matching CSVHeader.
func (r CSVRecord) Fields() []string {
	return []string{
		r.Date.Format("2006-01-02"),
		fmt.Sprintf("%.2f", r.Amount),
		string(r.Currency),
		r.Category.Label(),
		r.Description,
		r.PaymentMethod,
		strconv.FormatBool(r.IsRecurring),
		strconv.Itoa(r.RecurringPeriodDays),
		strings.Join(r.Tags, ", "),
	}
}

// BuildCSV produces the export rows for all in-range expenses, in
// ledger insertion order.
func BuildCSV(l *ledger.Ledger, conv *convert.Converter, target model.Currency, start, end *time.Time) ([]CSVRecord, error) {
	var records []CSVRecord

	for _, e := range l.Expenses() {
		if !inRange(e.Date, start, end) {
			continue
		}
		amount, err := conv.Convert(e.Amount, e.Currency, target)
		if err != nil {
			return nil, err
		}
		records = append(records, CSVRecord{
			Date:                e.Date,
			Description:         e.Description,
			PaymentMethod:       e.PaymentMethod,
			Tags:                e.Tags,
			Amount:              amount,
			Currency:            target,
			Category:            e.Category,
			IsRecurring:         e.IsRecurring,
			RecurringPeriodDays: e.RecurringPeriodDays,
		})
	}

	return records, nil
}
