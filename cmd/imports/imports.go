// Package imports handles bulk import of transactions from CSV files.
package imports

import (
	"github.com/spf13/cobra"

	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/internal/importparser"
	"rsharma/upi-tracker/internal/logging"
)

var inputFile string

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file",
	Long: `Import transactions from a CSV file. Headers are matched after
lower-casing and trimming; a legacy "amount" column is accepted as an alias
for money_spent. Imported rows are appended after the existing records and
the whole store is re-classified.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) {
	parser := importparser.NewParser(root.Cfg.Delimiter(), root.Log)
	rows, err := parser.ParseFile(inputFile)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to parse import file")
	}

	count, err := root.NewEngine().Import(rows)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to import rows")
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: inputFile},
		logging.Field{Key: logging.FieldCount, Value: count},
	).Info("Import completed")
}
