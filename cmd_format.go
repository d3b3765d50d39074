package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"calcdesk/locale"
	"calcdesk/service"
)

var formatCmd = &cobra.Command{
	Use:   "format [kind] [value]",
	Short: "Render a value as currency, compact, number, percent or date",
	Example: `  calcdesk format currency 1234567.89 --locale en-IN
  calcdesk format date 2026-03-01 --locale en-GB`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := service.FormatValue(args[0], args[1], localeFlag(cmd))
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Formatted)
		return nil
	},
}

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the supported locales",
	RunE: func(cmd *cobra.Command, args []string) error {
		supported := locale.Supported()
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(supported)
		}
		for _, c := range supported {
			fmt.Fprintf(out, "%-6s %s %-2s %s\n", c.Tag, c.CurrencyCode, c.CurrencySymbol, c.DateFormatPattern)
		}
		return nil
	},
}
