// Package show handles the tail view of the ledger.
package show

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/internal/ledger"
	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
	"rsharma/upi-tracker/internal/report"
)

var (
	count int
	month string
)

// Cmd represents the show command.
var Cmd = &cobra.Command{
	Use:   "show",
	Short: "Show the last N transactions",
	Run:   showFunc,
}

func init() {
	Cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of transactions to show (default from config)")
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Restrict to a calendar month (YYYY-MM)")
}

func showFunc(cmd *cobra.Command, args []string) {
	filter := monthFilter()

	if count == 0 {
		count = root.Cfg.Ledger.TailCount
	}

	records, err := root.NewEngine().Tail(count, filter)
	if err != nil {
		if errors.Is(err, ledger.ErrNoTransactions) {
			fmt.Println("No transactions yet.")
			return
		}
		root.Log.WithError(err).Fatal("Failed to read transactions")
	}

	report.WriteTransactions(os.Stdout, records)
}

// monthFilter parses the --month flag, nil when unset.
func monthFilter() *models.MonthFilter {
	if month == "" {
		return nil
	}
	f, err := models.ParseMonthFilter(month)
	if err != nil {
		root.Log.WithError(err).WithField(logging.FieldMonth, month).Fatal("Invalid --month value")
	}
	return &f
}
