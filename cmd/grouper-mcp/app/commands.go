// Package app provides the entry point for the grouper-mcp command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langedb/grouper-mcp/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "grouper-mcp",
	DisableAutoGenTag: true,
	Short:             "grouper-mcp exposes a Grouper groups registry as MCP tools",
	Long: `grouper-mcp is an MCP (Model Context Protocol) server for the Internet2 Grouper
groups management system. It lets AI assistants inspect and manage groups through
the Grouper web services API: listing memberships, searching groups, managing
members and privileges, and tracing how a membership is derived through nested
and composite groups.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Re-initialize once the debug flag has been parsed
		logger.Initialize()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
}

// NewRootCmd creates a new root command for the Grouper MCP CLI.
func NewRootCmd() *cobra.Command {
	// Add persistent flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	// Add subcommands
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
