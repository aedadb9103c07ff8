// Package charts renders aggregated report data as PNG images. It is a
// sink for the report package's structures; none of the aggregation
// logic lives here.
package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/report"
)

// Generator renders report data into chart images.
type Generator struct{}

// NewGenerator creates a chart generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// PieChart renders a category breakdown as a pie. Returns nil bytes
// when the breakdown is empty.
func (g *Generator) PieChart(breakdown map[model.Category]float64, currency model.Currency) ([]byte, error) {
	if len(breakdown) == 0 {
		return nil, nil
	}

	categories := make([]model.Category, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return breakdown[categories[i]] > breakdown[categories[j]]
	})

	values := make([]chart.Value, 0, len(categories))
	for _, category := range categories {
		amount := breakdown[category]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", category.Label(), convert.FormatAmount(amount, currency)),
			Value: amount,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Expense Distribution (%s)", currency.Symbol()),
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	var buffer bytes.Buffer
	if err := pie.Render(chart.PNG, &buffer); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}

	return buffer.Bytes(), nil
}

// TrendChart renders month buckets as stacked bars, one bar per
// calendar month. Returns nil bytes when there are no buckets.
func (g *Generator) TrendChart(buckets []report.MonthBucket, currency model.Currency) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, nil
	}

	bars := make([]chart.StackedBar, 0, len(buckets))
	for _, bucket := range buckets {
		values := make([]chart.Value, 0, len(bucket.Totals))
		for _, category := range model.Categories() {
			amount := bucket.Totals[category]
			if amount <= 0 {
				continue
			}
			values = append(values, chart.Value{
				Label: category.Label(),
				Value: amount,
				Style: chart.Style{
					FontSize:  10,
					FontColor: chart.ColorBlack,
				},
			})
		}
		// go-chart cannot render a bar without values; an empty month
		// gets a zero-height placeholder so the month still appears.
		if len(values) == 0 {
			values = append(values, chart.Value{Label: "", Value: 0})
		}
		bars = append(bars, chart.StackedBar{
			Name:   bucket.Month.Format("Jan 2006"),
			Values: values,
		})
	}

	graph := chart.StackedBarChart{
		Title:      fmt.Sprintf("Monthly Spending Trends (%s)", currency.Symbol()),
		TitleStyle: chart.Style{FontSize: 14, FontColor: chart.ColorBlack},
		Width:      1200,
		Height:     600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.Style{FontSize: 10, FontColor: chart.ColorBlack},
		YAxis: chart.Style{FontSize: 10, FontColor: chart.ColorBlack},
		Bars:  bars,
	}

	var buffer bytes.Buffer
	if err := graph.Render(chart.PNG, &buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}

	return buffer.Bytes(), nil
}
