package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nileshk/paisa/internal/charts"
	"github.com/nileshk/paisa/internal/cli"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summaries, exports, and charts",
	}

	cmd.AddCommand(summaryReportCmd())
	cmd.AddCommand(csvReportCmd())
	cmd.AddCommand(pieReportCmd())
	cmd.AddCommand(trendReportCmd())

	return cmd
}

func summaryReportCmd() *cobra.Command {
	var currencyStr, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a spending summary by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			target, start, end, err := reportRange(a, currencyStr, fromStr, toStr)
			if err != nil {
				return err
			}

			summary, err := report.BuildSummary(a.session.Ledger, a.converter, a.budgetTracker(), target, start, end)
			if err != nil {
				return err
			}

			printSummary(summary)
			return nil
		},
	}

	addReportFlags(cmd, &currencyStr, &fromStr, &toStr)
	return cmd
}

func csvReportCmd() *cobra.Command {
	var currencyStr, fromStr, toStr, output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export expenses as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			target, start, end, err := reportRange(a, currencyStr, fromStr, toStr)
			if err != nil {
				return err
			}

			records, err := report.BuildCSV(a.session.Ledger, a.converter, target, start, end)
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			w := csv.NewWriter(out)
			if err := w.Write(report.CSVHeader()); err != nil {
				return err
			}
			for _, r := range records {
				if err := w.Write(r.Fields()); err != nil {
					return err
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}

			if output != "" {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
					"✓ Exported %d expenses to %s", len(records), output)))
			}
			return nil
		},
	}

	addReportFlags(cmd, &currencyStr, &fromStr, &toStr)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to this file instead of stdout")
	return cmd
}

func pieReportCmd() *cobra.Command {
	var currencyStr, fromStr, toStr, output string

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Render a category breakdown pie chart (PNG)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			target, start, end, err := reportRange(a, currencyStr, fromStr, toStr)
			if err != nil {
				return err
			}

			breakdown, err := report.Breakdown(a.session.Ledger, a.converter, target, start, end)
			if err != nil {
				return err
			}

			png, err := charts.NewGenerator().PieChart(breakdown, target)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Pie chart written to " + output))
			return nil
		},
	}

	addReportFlags(cmd, &currencyStr, &fromStr, &toStr)
	cmd.Flags().StringVarP(&output, "output", "o", "breakdown.png", "output PNG path")
	return cmd
}

func trendReportCmd() *cobra.Command {
	var currencyStr, fromStr, toStr, output string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Render a monthly spending trend chart (PNG)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			target, start, end, err := reportRange(a, currencyStr, fromStr, toStr)
			if err != nil {
				return err
			}

			buckets, err := report.MonthlyTrend(a.session.Ledger, a.converter, target, start, end)
			if err != nil {
				return err
			}

			png, err := charts.NewGenerator().TrendChart(buckets, target)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Trend chart written to " + output))
			return nil
		},
	}

	addReportFlags(cmd, &currencyStr, &fromStr, &toStr)
	cmd.Flags().StringVarP(&output, "output", "o", "trend.png", "output PNG path")
	return cmd
}

func addReportFlags(cmd *cobra.Command, currencyStr, fromStr, toStr *string) {
	cmd.Flags().StringVar(currencyStr, "currency", "", "report currency (default: your configured currency)")
	cmd.Flags().StringVar(fromStr, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(toStr, "to", "", "end date, inclusive (YYYY-MM-DD)")
}

func reportRange(a *app, currencyStr, fromStr, toStr string) (target model.Currency, start, end *time.Time, err error) {
	target, err = parseCurrencyFlag(currencyStr, a.session.Ledger.DefaultCurrency())
	if err != nil {
		return
	}
	if start, err = parseDateFlag(fromStr); err != nil {
		return
	}
	end, err = parseDateFlag(toStr)
	return
}

func printSummary(s *report.Summary) {
	header := fmt.Sprintf("Expense Summary for %s (%s)", s.UserName, s.Currency)
	if s.Start != nil || s.End != nil {
		header += " " + formatRange(s.Start, s.End)
	}
	fmt.Println(cli.TitleStyle.Render(header))

	if len(s.Lines) == 0 {
		fmt.Println(cli.InfoStyle.Render("No expenses in this range."))
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
		for _, line := range s.Lines {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\n",
				line.Category.Label(),
				convert.FormatAmount(line.Amount, s.Currency),
				line.Percent)
		}
		fmt.Fprintf(w, "%s\t%s\t\n",
			cli.BoldStyle.Render("TOTAL"),
			cli.BoldStyle.Render(convert.FormatAmount(s.Total, s.Currency)))
		w.Flush()
	}

	if len(s.Budgets) > 0 {
		fmt.Println()
		fmt.Println(cli.TitleStyle.Render("Budgets"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tSPENT\tLIMIT\tUSED\tREMAINING")
		for _, b := range s.Budgets {
			used := fmt.Sprintf("%.1f%%", b.PercentUsed)
			if b.PercentUsed >= 100 {
				used = cli.ErrorStyle.Render(used)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				b.Category.Label(),
				convert.FormatAmount(b.Spent, s.Currency),
				convert.FormatAmount(b.Limit, s.Currency),
				used,
				convert.FormatAmount(b.Remaining, s.Currency))
		}
		w.Flush()
	}

	if len(s.Recurring) > 0 {
		fmt.Println()
		fmt.Println(cli.TitleStyle.Render("Recurring"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, r := range s.Recurring {
			fmt.Fprintf(w, "%s\t%s\tevery %d days\n",
				r.Description,
				convert.FormatAmount(r.Amount, s.Currency),
				r.PeriodDays)
		}
		w.Flush()
	}
}

func formatRange(start, end *time.Time) string {
	const layout = "2006-01-02"
	switch {
	case start != nil && end != nil:
		return fmt.Sprintf("from %s to %s", start.Format(layout), end.Format(layout))
	case start != nil:
		return "from " + start.Format(layout)
	default:
		return "until " + end.Format(layout)
	}
}
