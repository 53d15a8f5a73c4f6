// Package summary handles per-category and net-balance reporting.
package summary

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
	"rsharma/upi-tracker/internal/report"
)

var (
	month  string
	format string
)

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals and the net balance change",
	Run:   summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Restrict to a calendar month (YYYY-MM)")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or csv")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	var filter *models.MonthFilter
	if month != "" {
		f, err := models.ParseMonthFilter(month)
		if err != nil {
			root.Log.WithError(err).WithField(logging.FieldMonth, month).Fatal("Invalid --month value")
		}
		filter = &f
	}

	result, err := root.NewEngine().Summarize(filter)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to summarize transactions")
	}

	if format == "text" {
		report.WriteSummary(os.Stdout, result)
		return
	}

	data, err := report.NewSummaryExporter(root.Log).Export(result, format)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to export summary")
	}
	fmt.Fprintln(os.Stdout, string(data))
}
