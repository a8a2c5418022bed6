// Package main is the entry point for the school-portal-cli application.
// It registers the database, admin account and payment gateway sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hillcrest-schools/school-portal/cmd/school-portal-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "school-portal-cli",
		Short: "Administration CLI for the school portal",
		Long: `school-portal-cli runs maintenance tasks for the school portal REST API.
It migrates the database schema, hashes the admin password for the configuration
and talks to the payment gateway (IPN registration, transaction status checks).

Commands that need the configuration read it from --config, CONFIG_PATH
or ../../configs/rest-app.yaml, in that order.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	commands.InitCommands(rootCmd)

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
