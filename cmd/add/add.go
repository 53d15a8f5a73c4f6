// Package add handles recording a single expense.
package add

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
	category    string
	amount      string
	pay         string
	balance     string
	start       string
)

// Cmd represents the add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add one expense",
	Long: `Add one expense to the ledger. The running balance is derived from
the previous record; on a fresh ledger supply --start (the balance before
this expense) or --balance (the balance after it).`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date, e.g. 2025-09-14 (required)")
	Cmd.Flags().StringVarP(&description, "desc", "d", "", "Transaction description (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent (required)")
	Cmd.Flags().StringVarP(&category, "cat", "c", "", "Category (left empty, the classifier assigns one)")
	Cmd.Flags().StringVarP(&pay, "pay", "p", "", "Payment method (default from config)")
	Cmd.Flags().StringVar(&balance, "balance", "", "Explicit balance after this expense (overrides arithmetic)")
	Cmd.Flags().StringVar(&start, "start", "", "Explicit balance before this expense")
	_ = Cmd.MarkFlagRequired("date")
	_ = Cmd.MarkFlagRequired("desc")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	parsedDate, _, err := dateutils.ParseDate(date)
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid --date value")
	}

	spent, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid --amount value")
	}

	tx := models.Transaction{
		Date:          parsedDate,
		Category:      category,
		Description:   description,
		MoneySpent:    spent,
		PaymentMethod: pay,
	}

	created, err := root.NewEngine().AddExpense(tx, parseBalanceFlag(cmd, "balance", balance), parseBalanceFlag(cmd, "start", start))
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to add expense")
	}

	report.WriteTransaction(os.Stdout, created)
}

// parseBalanceFlag returns the flag's decimal value, or nil when the flag
// was not given.
func parseBalanceFlag(cmd *cobra.Command, name, value string) *decimal.Decimal {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid --" + name + " value")
	}
	return &d
}
