// Package root contains the root command and the shared wiring used by all
// subcommands.
package root

import (
	"context"

	"github.com/spf13/cobra"

	"rsharma/upi-tracker/internal/classifier"
	"rsharma/upi-tracker/internal/config"
	"rsharma/upi-tracker/internal/ledger"
	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/store"
)

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// DataDir overrides the configured data directory when set.
	DataDir string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "upi-tracker",
		Short: "A CLI tool to track personal UPI expenses and income.",
		Long: `upi-tracker records expenses and income to a flat CSV store,
auto-classifies transactions into spending categories and reports
per-category and net-balance summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to upi-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			if DataDir != "" {
				cfg.Data.Directory = DataDir
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefaultLogger(Log)
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data-dir", "", "Override the data directory")
}

// NewLedgerStore builds the store handle from the loaded configuration.
func NewLedgerStore() *store.LedgerStore {
	return store.NewLedgerStore(Cfg.StorePath(), Cfg.Delimiter(), Cfg.Ledger.PaymentMethod, Log)
}

// NewCategoryStore builds the category rules store from the configuration.
func NewCategoryStore() *store.CategoryStore {
	return store.NewCategoryStore(Cfg.CategoriesPath(), Log)
}

// NewEngine wires a ledger engine with the configured store and classifier.
// Missing category rules fall back to the built-in defaults; an unavailable
// AI suggester only disables suggestions, it never blocks the command.
func NewEngine() *ledger.Engine {
	configs, err := NewCategoryStore().LoadCategories()
	if err != nil {
		Log.WithError(err).Warn("Failed to load category rules, using built-in defaults")
		configs = nil
	}
	cls := classifier.New(configs, Log)

	if Cfg.AI.Enabled {
		suggester, err := classifier.NewGeminiSuggester(context.Background(), Cfg.AI.APIKey, Cfg.AI.Model, Log)
		if err != nil {
			Log.WithError(err).Warn("AI suggestions unavailable")
		} else {
			cls.SetSuggester(suggester)
		}
	}

	return ledger.NewEngine(NewLedgerStore(), cls, Cfg.Ledger.PaymentMethod, Log)
}
