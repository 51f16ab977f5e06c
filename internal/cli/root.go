// Package cli implements the cobra-based libracat CLI. Each subcommand
// (add, remove, list, find, stats, history) lives in its own file and talks
// to a running catalogd through the clients package.
package cli

import (
	"github.com/spf13/cobra"
)

// Global flag variables, bound to persistent flags on the root command so
// every subcommand inherits them.
var (
	// serverAddr is the base URL of the catalogd instance to talk to.
	serverAddr string

	// jsonOutput switches command output to JSON for machine consumption.
	jsonOutput bool
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCommand creates the root cobra command. The root itself performs
// no action; functionality lives in the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "libracat",
		Short: "Library catalogue client",
		Long: `libracat manages an in-memory library catalogue served by catalogd.

Items are books or audio books, identified by an integer id chosen by the
caller. The catalogue preserves insertion order and does not deduplicate ids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8081", "Base URL of the catalogd server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewRemoveCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewFindCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewHistoryCommand())

	return rootCmd
}
