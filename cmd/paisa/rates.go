package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nileshk/paisa/internal/cli"
	"github.com/nileshk/paisa/internal/model"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect and refresh exchange rates",
	}

	cmd.AddCommand(listRatesCmd())
	cmd.AddCommand(refreshRatesCmd())

	return cmd
}

func listRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show cached exchange rates relative to INR",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache := newRateCache(cmd.Context())

			updated := cache.LastUpdated()
			age := "never fetched (bootstrap rates)"
			if !updated.IsZero() {
				age = fmt.Sprintf("updated %s", updated.Format(time.RFC3339))
			}
			header := fmt.Sprintf("Exchange rates per 1 %s (%s)", model.BaseCurrency, age)
			if cache.Stale(time.Now()) {
				header += " " + cli.WarningStyle.Render("[stale]")
			}
			fmt.Println(cli.TitleStyle.Render(header))

			table := cache.Rates()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, code := range model.Currencies() {
				rate, ok := table[code]
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s\t%.6f\n", code, rate)
			}
			return nil
		},
	}
}

func refreshRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch fresh rates from the configured source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache := newRateCache(cmd.Context())

			if err := cache.Refresh(cmd.Context()); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Rates refreshed: %d currencies as of %s",
				len(cache.Rates()),
				cache.LastUpdated().Format(time.RFC3339))))
			return nil
		},
	}
}
