// Package main is the entry point for the Grouper MCP server.
package main

import (
	"os"

	"github.com/langedb/grouper-mcp/cmd/grouper-mcp/app"
	"github.com/langedb/grouper-mcp/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
