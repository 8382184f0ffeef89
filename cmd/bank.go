package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cmd, cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-40s  %s\n", "Category", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 51))

		groups := b.ByCategory()
		for _, category := range b.Categories() {
			fmt.Fprintf(out, "%-40s  %9d\n", category, len(groups[category]))
		}

		fmt.Fprintf(out, "\n%d questions in %d categories\n", b.Len(), len(groups))
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a question bank and exit non-zero on problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cmd, cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s has %d questions in %d categories\n",
			bankLabel(cfg.BankPath), b.Len(), len(b.Categories()))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
