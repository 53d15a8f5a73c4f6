// Package report renders ledger data as human-readable text.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rsharma/upi-tracker/internal/dateutils"
	"rsharma/upi-tracker/internal/ledger"
	"rsharma/upi-tracker/internal/models"
)

// WriteTransaction prints a single record as a confirmation line.
func WriteTransaction(w io.Writer, tx models.Transaction) {
	fmt.Fprintln(w, tx.String())
}

// WriteTransactions prints records as an aligned table with every field
// shown.
func WriteTransactions(w io.Writer, records []models.Transaction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tDESCRIPTION\tSPENT\tLEFT\tMETHOD")
	for _, tx := range records {
		date := "unknown"
		if tx.HasDate() {
			date = dateutils.ToISODate(tx.Date)
		}
		left := "-"
		if tx.MoneyLeft.Valid {
			left = tx.MoneyLeft.Decimal.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			date, tx.Category, tx.Description, tx.MoneySpent.StringFixed(2), left, tx.PaymentMethod)
	}
	tw.Flush()
}

// WriteSummary prints the per-category table followed by grand totals.
func WriteSummary(w io.Writer, s ledger.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tEXPENSE\tINCOME")
	for _, c := range s.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Category, c.Expense.StringFixed(2), c.Income.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal income:  %s\n", s.TotalIncome.StringFixed(2))
	fmt.Fprintf(w, "Total expense: %s\n", s.TotalExpense.StringFixed(2))
	fmt.Fprintf(w, "Net:           %s\n", s.Net.StringFixed(2))
}
