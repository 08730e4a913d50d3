package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unowned-ai/reflections/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Reflections MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes the journal as MCP
tools via STDIO: saving and listing entries, themes, mood trend, recent
entries, export, clear (with confirm=true), share text and word lookup.

The journal location comes from --db / --backend or the config file.

Example:
  reflections mcp
  reflections mcp --backend sqlite --db ~/journal.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, b, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer b.Close()

		srv := mcp.NewReflectionsMCPServer(store, cfg.Themes.Extractor(), logger)

		// Log to stderr so we don't contaminate the JSON-RPC stream on stdout.
		logger.Info(ctx, "reflections MCP server started",
			zap.String("backend", cfg.Storage.Backend),
			zap.String("path", cfg.Storage.ResolvedPath()),
			zap.Int("entries", store.Len()))
		fmt.Fprintln(os.Stderr, "Listening for MCP JSON-RPC on STDIN/STDOUT ... (Ctrl+C to quit)")

		return srv.Start()
	},
}
