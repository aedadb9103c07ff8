package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nileshk/paisa/internal/cli"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/ledger"
	"github.com/nileshk/paisa/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and inspect expenses",
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(recurringExpensesCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		description   string
		dateStr       string
		categoryStr   string
		currencyStr   string
		paymentMethod string
		tags          []string
		recurring     bool
		periodDays    int
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a new expense",
		Long: `Record an expense. Without --category the expense is classified from
its tags, then from keywords in the description, falling back to Other.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var amount float64
			if _, err := fmt.Sscanf(args[0], "%f", &amount); err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			opts := ledger.AddOptions{
				Description:         description,
				PaymentMethod:       paymentMethod,
				Tags:                tags,
				Amount:              amount,
				IsRecurring:         recurring,
				RecurringPeriodDays: periodDays,
			}
			if dateStr != "" {
				date, err := parseDateFlag(dateStr)
				if err != nil {
					return err
				}
				opts.Date = *date
			}
			if categoryStr != "" {
				if opts.Category, err = model.ParseCategory(categoryStr); err != nil {
					return err
				}
			}
			if currencyStr != "" {
				if opts.Currency, err = model.ParseCurrency(currencyStr); err != nil {
					return err
				}
			}

			expense, err := a.session.Ledger.Add(opts)
			if err != nil {
				// The record is stored; only budget tracking failed.
				a.save(ctx)
				return err
			}
			a.save(ctx)

			fmt.Println(cli.SuccessStyle.Render("✓ Expense added:"))
			fmt.Println(expense.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "what the expense was for")
	cmd.Flags().StringVar(&dateStr, "date", "", "expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "explicit category code (skips classification)")
	cmd.Flags().StringVar(&currencyStr, "currency", "", "currency code (default: your configured currency)")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", `payment method label (default "Cash")`)
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags, in classification priority order")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "mark as a recurring expense")
	cmd.Flags().IntVar(&periodDays, "period-days", 0, "recurrence period in days (with --recurring)")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses in insertion order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			expenses := a.session.Ledger.Expenses()
			if tag != "" {
				expenses = a.session.Ledger.ByTag(tag)
			}
			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses recorded."))
				return nil
			}

			printExpenseTable(expenses)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only expenses carrying this tag")

	return cmd
}

func recurringExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recurring",
		Short: "List recurring expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			expenses := a.session.Ledger.Recurring()
			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recurring expenses."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "DATE\tAMOUNT\tDESCRIPTION\tEVERY")
			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d days\n",
					e.Date.Format("2006-01-02"),
					convert.FormatAmount(e.Amount, e.Currency),
					e.Description,
					e.RecurringPeriodDays)
			}
			return nil
		},
	}
}

func printExpenseTable(expenses []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tPAYMENT\tTAGS")
	for _, e := range expenses {
		tags := strings.Join(e.Tags, ", ")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Date.Format("2006-01-02"),
			convert.FormatAmount(e.Amount, e.Currency),
			e.Category.Label(),
			e.Description,
			e.PaymentMethod,
			tags)
	}
}
