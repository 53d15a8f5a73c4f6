package main

import (
	"fmt"
	"os"

	"rsharma/upi-tracker/cmd/add"
	"rsharma/upi-tracker/cmd/imports"
	"rsharma/upi-tracker/cmd/income"
	"rsharma/upi-tracker/cmd/initialize"
	"rsharma/upi-tracker/cmd/recategorize"
	"rsharma/upi-tracker/cmd/root"
	"rsharma/upi-tracker/cmd/show"
	"rsharma/upi-tracker/cmd/summary"
	"rsharma/upi-tracker/internal/config"
)

func init() {
	// Load environment variables before any logging happens, then configure
	// the global log level so it applies to all loggers created during
	// command wiring.
	config.LoadEnv()
	config.ConfigureLogging()

	root.Init()

	root.Cmd.AddCommand(initialize.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(income.Cmd)
	root.Cmd.AddCommand(imports.Cmd)
	root.Cmd.AddCommand(show.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(recategorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
