package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"calcdesk/domain"
	"calcdesk/locale"
	"calcdesk/service"
)

// cliStore backs the one-shot commands: nothing is cached or recorded.
func cliStore() *service.Store {
	return service.NewStore(nil,
		service.WithDefaultLocale(cfg.Locale.Default),
		service.WithLogger(logger),
	)
}

func localeFlag(cmd *cobra.Command) string {
	tag, _ := cmd.Flags().GetString("locale")
	return tag
}

// amountFlag reads a money flag the way a user types it in the chosen
// locale ("£300,000", "12,34,567"). An unset flag is zero.
func amountFlag(cmd *cobra.Command, name string) (float64, error) {
	text, _ := cmd.Flags().GetString(name)
	if text == "" {
		return 0, nil
	}
	v, ok := locale.ParseAmount(text, localeFlag(cmd))
	if !ok {
		return 0, fmt.Errorf("%w: invalid --%s %q", domain.ErrNoResult, name, text)
	}
	return v, nil
}

// amountFlags reads several money flags, stopping at the first bad one.
func amountFlags(cmd *cobra.Command, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := amountFlag(cmd, name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// printResult writes v as indented JSON when --json is set, otherwise the
// display entries named by keys, one per line.
func printResult(cmd *cobra.Command, v any, display domain.Display, keys ...string) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	printDisplay(out, display, keys...)
	return nil
}

func printDisplay(w io.Writer, display domain.Display, keys ...string) {
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		value, ok := display[k]
		if !ok {
			continue
		}
		label := strings.ReplaceAll(k, "_", " ")
		fmt.Fprintf(w, "%-*s  %s\n", width, label, value)
	}
}

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Monthly payment and total interest of an amortizing loan",
	RunE: func(cmd *cobra.Command, args []string) error {
		amounts, err := amountFlags(cmd, "amount", "interest-cap")
		if err != nil {
			return err
		}
		amount, interestCap := amounts[0], amounts[1]
		rate, _ := cmd.Flags().GetFloat64("rate")
		months, _ := cmd.Flags().GetInt("months")
		schedule, _ := cmd.Flags().GetBool("schedule")
		taxRate, _ := cmd.Flags().GetFloat64("tax-rate")

		result, err := service.NewLoanService(cliStore()).CalculateLoan(context.Background(), domain.LoanInput{
			Amount:                amount,
			InterestRate:          rate,
			TermMonths:            months,
			IncludeSchedule:       schedule,
			MarginalTaxRate:       taxRate,
			DeductibleInterestCap: interestCap,
			Locale:                localeFlag(cmd),
		})
		if err != nil {
			return err
		}
		if err := printResult(cmd, result, result.Display,
			"amount", "interest_rate", "monthly_payment", "total_payment", "total_interest",
			"total_tax_savings", "effective_interest"); err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON || len(result.Schedule) == 0 {
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%4s  %16s  %16s  %16s\n", "year", "interest", "principal", "balance")
		for _, y := range result.Schedule {
			fmt.Fprintf(out, "%4d  %16s  %16s  %16s\n", y.Year,
				locale.FormatCurrency(y.Interest, result.Locale),
				locale.FormatCurrency(y.Principal, result.Locale),
				locale.FormatCurrency(y.EndingBalance, result.Locale))
		}
		return nil
	},
}

func init() {
	loanCmd.Flags().String("amount", "", "loan principal, e.g. 300000 or \"$300,000\"")
	loanCmd.Flags().Float64("rate", 0, "annual interest rate in percent")
	loanCmd.Flags().Int("months", 0, "term in months")
	loanCmd.Flags().Bool("schedule", false, "print the yearly amortization schedule")
	loanCmd.Flags().Float64("tax-rate", 0, "marginal tax rate in percent for the interest deduction")
	loanCmd.Flags().String("interest-cap", "", "yearly deductible interest ceiling")
	_ = loanCmd.MarkFlagRequired("amount")
	_ = loanCmd.MarkFlagRequired("rate")
	_ = loanCmd.MarkFlagRequired("months")
}

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Return on investment, annualized when the holding period is known",
	RunE: func(cmd *cobra.Command, args []string) error {
		amounts, err := amountFlags(cmd, "investment", "return", "dividends")
		if err != nil {
			return err
		}
		invested, returned, dividends := amounts[0], amounts[1], amounts[2]
		years, _ := cmd.Flags().GetFloat64("years")

		result, err := service.NewROIService(cliStore()).Calculate(context.Background(), domain.ROIInput{
			TotalInvestment: invested,
			TotalReturn:     returned,
			Dividends:       dividends,
			YearsHeld:       years,
			Locale:          localeFlag(cmd),
		})
		if err != nil {
			return err
		}
		return printResult(cmd, result, result.Display, "gain", "roi", "annualized_roi")
	},
}

func init() {
	roiCmd.Flags().String("investment", "", "total amount invested")
	roiCmd.Flags().String("return", "", "final value of the investment")
	roiCmd.Flags().String("dividends", "", "dividends received")
	roiCmd.Flags().Float64("years", 0, "holding period in years")
	_ = roiCmd.MarkFlagRequired("investment")
	_ = roiCmd.MarkFlagRequired("return")
}

var stampDutyCmd = &cobra.Command{
	Use:   "stamp-duty",
	Short: "UK stamp duty land tax on a property purchase",
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := amountFlag(cmd, "price")
		if err != nil {
			return err
		}
		buyer, _ := cmd.Flags().GetString("buyer")

		result, err := service.NewTaxService(cliStore()).StampDuty(context.Background(), domain.StampDutyInput{
			Price:     price,
			BuyerType: buyer,
			Locale:    localeFlag(cmd),
		})
		if err != nil {
			return err
		}
		if err := printResult(cmd, result, result.Display, "value", "total", "effective_rate", "net"); err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); !asJSON && result.Note != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.Note)
		}
		return nil
	},
}

func init() {
	stampDutyCmd.Flags().String("price", "", "purchase price, e.g. 400000 or \"£400,000\"")
	stampDutyCmd.Flags().String("buyer", domain.BuyerStandard, "buyer type: standard, first_time or additional")
	_ = stampDutyCmd.MarkFlagRequired("price")
}
