// Package recategorize handles the explicit full-store re-classification
// maintenance operation.
package recategorize

import (
	"github.com/spf13/cobra"

	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/internal/logging"
)

// Cmd represents the recategorize command.
var Cmd = &cobra.Command{
	Use:   "recategorize",
	Short: "Re-run the classifier over the whole store",
	Long: `Re-run the classifier over every stored transaction and persist the
result. Records that already carry a category are left unchanged, so running
this twice in a row changes nothing on the second run.`,
	Run: recategorizeFunc,
}

func recategorizeFunc(cmd *cobra.Command, args []string) {
	changed, err := root.NewEngine().Recategorize()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to re-categorize store")
	}

	root.Log.WithField(logging.FieldCount, changed).Info("Re-categorization completed")
}
