package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/langedb/grouper-mcp/pkg/config"
	"github.com/langedb/grouper-mcp/pkg/grouper"
	"github.com/langedb/grouper-mcp/pkg/logger"
	"github.com/langedb/grouper-mcp/pkg/mcp/server"
)

const (
	// DefaultMCPPort is the default port for the MCP server in HTTP mode
	DefaultMCPPort = "8080"

	transportStdio = "stdio"
	transportHTTP  = "http"
)

var (
	serveTransport string
	serveHost      string
	servePort      string
)

// newServeCommand creates the 'serve' subcommand
func newServeCommand() *cobra.Command {
	// Check for MCP_PORT environment variable
	defaultPort := DefaultMCPPort
	if envPort := os.Getenv("MCP_PORT"); envPort != "" {
		defaultPort = envPort
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Grouper MCP server",
		Long: `Start an MCP (Model Context Protocol) server exposing Grouper operations as tools.

By default the server speaks MCP over stdin/stdout, which is how most MCP
clients launch it. Pass --transport http to listen on a streamable HTTP
endpoint instead.

Connection settings for the Grouper web services are read from the
GROUPER_BASE_URL, GROUPER_USERNAME and GROUPER_PASSWORD environment
variables (a .env file in the working directory is honored). The HTTP port
can be configured via the --port flag or the MCP_PORT environment variable.`,
		RunE: serveCmdFunc,
	}

	cmd.Flags().StringVar(&serveTransport, "transport", transportStdio, "Transport to serve on: stdio or http")
	cmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on (http transport only)")
	cmd.Flags().StringVar(&servePort, "port", defaultPort, "Port to listen on (http transport only, can also be set via MCP_PORT env var)")

	return cmd
}

func serveCmdFunc(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := grouper.NewClient(cfg)
	handler := server.NewHandler(client)
	mcpServer := server.New(handler)

	switch serveTransport {
	case transportStdio:
		return mcpServer.ServeStdio()
	case transportHTTP:
		return serveHTTP(cmd.Context(), mcpServer)
	default:
		return fmt.Errorf("unknown transport %q: must be stdio or http", serveTransport)
	}
}

func serveHTTP(ctx context.Context, mcpServer *server.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%s", serveHost, servePort)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return mcpServer.ServeHTTP(groupCtx, addr)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutting down MCP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return mcpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
