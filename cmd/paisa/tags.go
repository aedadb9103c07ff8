package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nileshk/paisa/internal/cli"
	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/model"
)

func tagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tag-to-category mappings",
		Long: `Tags map keywords to categories for automatic classification. An expense
tagged "groceries" lands in Food & Dining without an explicit category.`,
	}

	cmd.AddCommand(listTagsCmd())
	cmd.AddCommand(addTagCmd())
	cmd.AddCommand(deleteTagCmd())

	return cmd
}

func listTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all registered tags in scan order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			entries := a.session.Registry.Entries()
			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No tags registered."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "TAG\tCATEGORY")
			for _, tag := range entries {
				fmt.Fprintf(w, "%s\t%s\n", tag.Name, tag.Category.Label())
			}
			return nil
		},
	}
}

func addTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <category>",
		Short: "Register a tag, or remap an existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category, err := model.ParseCategory(args[1])
			if err != nil {
				return err
			}

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			a.session.Registry.Add(args[0], category)
			a.save(ctx)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Tag %q now maps to %s", args[0], category.Label())))
			return nil
		},
	}
}

func deleteTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a tag mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if !a.session.Registry.Remove(args[0]) {
				return common.NewUserError(
					fmt.Sprintf("No tag named %q. Run 'paisa tags list' to see what's registered.", args[0]),
					common.ErrNotFound)
			}
			a.save(ctx)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Tag %q removed", args[0])))
			return nil
		},
	}
}
