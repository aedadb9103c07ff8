package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nileshk/paisa/internal/budget"
	"github.com/nileshk/paisa/internal/cli"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budgets",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var (
		currencyStr string
		threshold   float64
	)

	cmd := &cobra.Command{
		Use:   "set <category> <monthly-limit>",
		Short: "Set or replace a category's budget",
		Long: `Install a monthly spending policy for a category. Replacing an existing
policy resets its running spend and re-arms its threshold alert.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			currency, err := parseCurrencyFlag(currencyStr, a.session.Ledger.DefaultCurrency())
			if err != nil {
				return err
			}

			a.budgetTracker().SetPolicy(category, limit, currency, threshold)
			a.save(ctx)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Budget set for %s: %s per month (alert at %.0f%%)",
				category.Label(),
				convert.FormatAmount(limit, currency),
				threshold)))
			return nil
		},
	}

	cmd.Flags().StringVar(&currencyStr, "currency", "", "budget currency (default: your configured currency)")
	cmd.Flags().Float64Var(&threshold, "threshold", budget.DefaultAlertThreshold, "alert threshold percentage")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budget status per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			policies := a.budgetTracker().Policies()
			if len(policies) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'paisa budget set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "CATEGORY\tSPENT\tLIMIT\tUSED\tREMAINING")
			for _, p := range policies {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%s\n",
					p.Category.Label(),
					convert.FormatAmount(p.Spent(), p.Currency),
					convert.FormatAmount(p.MonthlyLimit, p.Currency),
					p.PercentUsed(),
					convert.FormatAmount(p.Remaining(), p.Currency))
			}
			return nil
		},
	}
}
