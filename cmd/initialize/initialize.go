// Package initialize handles explicit first-time setup of the data store.
package initialize

import (
	"os"

	"github.com/spf13/cobra"

	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/internal/classifier"
)

// Cmd represents the init command.
var Cmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory, an empty transaction store and default category rules",
	Long: `init bootstraps the on-disk state: the data directory, an empty
transaction store with headers, and a categories file seeded with the
built-in rules so they can be edited. Existing files are left untouched.`,
	Run: initFunc,
}

func initFunc(cmd *cobra.Command, args []string) {
	if err := root.NewLedgerStore().Init(); err != nil {
		root.Log.WithError(err).Fatal("Failed to initialize transaction store")
	}

	catStore := root.NewCategoryStore()
	if _, err := os.Stat(catStore.CategoriesFile); os.IsNotExist(err) {
		if err := catStore.SaveCategories(classifier.DefaultCategories()); err != nil {
			root.Log.WithError(err).Fatal("Failed to write default category rules")
		}
	}

	root.Log.WithField("directory", root.Cfg.Data.Directory).Info("Store initialized")
}
