package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	reflections "github.com/unowned-ai/reflections/pkg"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/themes"
)

// ReflectionsMCPServer exposes a journal store over MCP stdio.
type ReflectionsMCPServer struct {
	mcpServer *server.MCPServer
	tools     *Tools
}

// NewReflectionsMCPServer builds the server and registers every tool.
func NewReflectionsMCPServer(store *journal.Store, extractor *themes.Extractor, logger *logging.Logger) *ReflectionsMCPServer {
	s := server.NewMCPServer(
		"Reflections MCP Server",
		reflections.Version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
	)

	tools := NewTools(store, extractor, logger)
	tools.Register(s)

	return &ReflectionsMCPServer{mcpServer: s, tools: tools}
}

// Start runs the stdio event loop until stdin closes or the process is signalled.
func (s *ReflectionsMCPServer) Start() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPRawServer exposes the raw mcp-go server (useful for additional configuration).
func (s *ReflectionsMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}

// Tools holds the tool handlers and their shared dependencies.
type Tools struct {
	store     *journal.Store
	extractor *themes.Extractor
	logger    *logging.Logger
	now       func() time.Time
}

// NewTools returns handlers over store. A nil extractor uses the defaults.
func NewTools(store *journal.Store, extractor *themes.Extractor, logger *logging.Logger) *Tools {
	if extractor == nil {
		extractor = themes.New()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Tools{
		store:     store,
		extractor: extractor,
		logger:    logger.Named("mcp"),
		now:       time.Now,
	}
}

// Register adds every tool to s.
func (t *Tools) Register(s *server.MCPServer) {
	RegisterPingTool(s)
	t.RegisterSaveEntryTool(s)
	t.RegisterListEntriesTool(s)
	t.RegisterGetThemesTool(s)
	t.RegisterGetMoodTrendTool(s)
	t.RegisterGetRecentEntriesTool(s)
	t.RegisterExportEntriesTool(s)
	t.RegisterClearEntriesTool(s)
	t.RegisterComposeShareTextTool(s)
	t.RegisterDefineWordTool(s)
}
