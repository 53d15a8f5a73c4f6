// Package income handles recording a single income event.
package income

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/internal/dateutils"
	"rsharma/upi-tracker/internal/models"
	"rsharma/upi-tracker/internal/report"
)

var (
	date        string
	description string
	amount      string
	pay         string
	start       string
)

// Cmd represents the income command.
var Cmd = &cobra.Command{
	Use:   "income",
	Short: "Add one income event",
	Long: `Add one income event to the ledger. Income is stored as a negated
expense with the reserved Income category. On a fresh ledger the base
balance defaults to zero unless --start is given.`,
	Run: incomeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date, e.g. 2025-09-14 (required)")
	Cmd.Flags().StringVarP(&description, "desc", "d", "", "Income description (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount received (required)")
	Cmd.Flags().StringVarP(&pay, "pay", "p", "", "Payment method (default from config)")
	Cmd.Flags().StringVar(&start, "start", "", "Explicit balance before this income")
	_ = Cmd.MarkFlagRequired("date")
	_ = Cmd.MarkFlagRequired("desc")
	_ = Cmd.MarkFlagRequired("amount")
}

func incomeFunc(cmd *cobra.Command, args []string) {
	parsedDate, _, err := dateutils.ParseDate(date)
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid --date value")
	}

	received, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid --amount value")
	}

	var startingBalance *decimal.Decimal
	if cmd.Flags().Changed("start") {
		d, err := decimal.NewFromString(start)
		if err != nil {
			root.Log.WithError(err).Fatal("Invalid --start value")
		}
		startingBalance = &d
	}

	tx := models.Transaction{
		Date:          parsedDate,
		Description:   description,
		PaymentMethod: pay,
	}

	created, err := root.NewEngine().AddIncome(tx, received, startingBalance)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to add income")
	}

	report.WriteTransaction(os.Stdout, created)
}
