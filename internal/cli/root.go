package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lmoreno/courtbook/internal/dependencies/notifier"
)

var (
	cfg    *Config
	client *Client
	notify notifier.Notifier
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "courtbook",
		Short: "CLI tool for the courtbook booking API",
		Long: `courtbook is a CLI tool for interacting with the booking JSON API.

It supports player management, reservation management and schedule
availability queries against a running courtbook server.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL)
			notify = notifier.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: COURTBOOK_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&cfg.Yes, "yes", cfg.Yes, "Skip confirmation prompts")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newReservationCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// confirmed gates destructive commands behind the notifier; --yes skips
// the prompt
func confirmed(title, message string) bool {
	if cfg.Yes {
		return true
	}
	return notify.Confirm(title, message, "Sí", "Cancelar")
}
