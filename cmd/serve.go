package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BRIKEV/twd-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the twd-mcp tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes suggestSelectors,
generateMocksFromNetwork and generateTestFromRecording as tools.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  twd-mcp serve
  twd-mcp serve --transport streamable-http --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().String("addr", ":8080", "Listen address for streamable-http transport")
	bindFlag("serve.transport", serveCmd.Flags().Lookup("transport"))
	bindFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(logger).Serve(ctx, cfg.Serve); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
