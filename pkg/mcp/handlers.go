package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/unowned-ai/reflections/pkg/insights"
	"github.com/unowned-ai/reflections/pkg/journal"
)

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong_reflections' to check if the Reflections MCP server is alive."),
	)
	s.AddTool(pingTool, pingHandler)
}

func pingHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong_reflections"), nil
}

// draftOptions are the entry fields shared by save_entry and compose_share_text.
func draftOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("date", mcp.Description("Entry date as YYYY-MM-DD. Defaults to today.")),
		mcp.WithNumber("mood", mcp.Description("Mood score from 1 to 10. Defaults to 5.")),
		mcp.WithString("mood_label", mcp.Description("One or two words describing the mood.")),
		mcp.WithString("past", mcp.Description("Things I am grateful for.")),
		mcp.WithString("future", mcp.Description("Things I hope for.")),
		mcp.WithString("reflection", mcp.Description("Free-form reflection.")),
	}
}

// draftFromRequest reads the draft fields; absent ones take form defaults.
func (t *Tools) draftFromRequest(request mcp.CallToolRequest) (journal.Draft, error) {
	d := journal.NewDraft(t.now())

	var err error
	if d.Mood, err = intArg(request, "mood", d.Mood); err != nil {
		return d, err
	}
	fields := []struct {
		name string
		dst  *string
	}{
		{"mood_label", &d.MoodLabel},
		{"past", &d.Past},
		{"future", &d.Future},
		{"reflection", &d.Reflection},
	}
	for _, f := range fields {
		if *f.dst, err = stringArg(request, f.name); err != nil {
			return d, err
		}
	}

	date, err := stringArg(request, "date")
	if err != nil {
		return d, err
	}
	if date != "" {
		d.Date = date
	}
	return d, nil
}

// RegisterSaveEntryTool registers the save_entry tool.
func (t *Tools) RegisterSaveEntryTool(s *server.MCPServer) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Saves a journal entry. A mood label or a reflection is required."),
	}, draftOptions()...)
	s.AddTool(mcp.NewTool("save_entry", opts...), t.handleSaveEntry)
}

func (t *Tools) handleSaveEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	draft, err := t.draftFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entry, err := t.store.Append(ctx, draft)
	if err != nil {
		if errors.Is(err, journal.ErrEmptyEntry) {
			return mcp.NewToolResultError("Please enter at least a mood or a reflection."), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save entry: %v", err)), nil
	}

	t.logger.Debug(ctx, "entry saved", zap.Int64("id", entry.ID))
	return jsonResult(entry)
}

// RegisterListEntriesTool registers the list_entries tool.
func (t *Tools) RegisterListEntriesTool(s *server.MCPServer) {
	listTool := mcp.NewTool("list_entries",
		mcp.WithDescription("Lists every journal entry in the order they were written."),
	)
	s.AddTool(listTool, t.handleListEntries)
}

func (t *Tools) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.All())
}

// RegisterGetThemesTool registers the get_themes tool.
func (t *Tools) RegisterGetThemesTool(s *server.MCPServer) {
	themesTool := mcp.NewTool("get_themes",
		mcp.WithDescription("Returns the most frequent words across the gratitude and hope notes, most frequent first."),
		mcp.WithNumber("limit", mcp.Description("Optional maximum number of themes to return.")),
	)
	s.AddTool(themesTool, t.handleGetThemes)
}

func (t *Tools) handleGetThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit, err := intArg(request, "limit", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit < 0 {
		return mcp.NewToolResultError("'limit' must not be negative"), nil
	}

	stats := t.extractor.Extract(t.store.All())
	if limit > 0 && limit < len(stats) {
		stats = stats[:limit]
	}
	return jsonResult(stats)
}

// RegisterGetMoodTrendTool registers the get_mood_trend tool.
func (t *Tools) RegisterGetMoodTrendTool(s *server.MCPServer) {
	trendTool := mcp.NewTool("get_mood_trend",
		mcp.WithDescription("Returns one mood point per entry, in the order entries were written."),
	)
	s.AddTool(trendTool, t.handleGetMoodTrend)
}

func (t *Tools) handleGetMoodTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(insights.MoodTrend(t.store.All()))
}

// RegisterGetRecentEntriesTool registers the get_recent_entries tool.
func (t *Tools) RegisterGetRecentEntriesTool(s *server.MCPServer) {
	recentTool := mcp.NewTool("get_recent_entries",
		mcp.WithDescription("Returns short summaries of the latest entries, newest first."),
		mcp.WithNumber("count", mcp.Description("How many entries to return. Defaults to 4.")),
	)
	s.AddTool(recentTool, t.handleGetRecentEntries)
}

func (t *Tools) handleGetRecentEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, err := intArg(request, "count", insights.RecentLimit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(insights.Recent(t.store.All(), count))
}

// RegisterExportEntriesTool registers the export_entries tool.
func (t *Tools) RegisterExportEntriesTool(s *server.MCPServer) {
	exportTool := mcp.NewTool("export_entries",
		mcp.WithDescription("Returns the full journal as an indented JSON document suitable for backup."),
	)
	s.AddTool(exportTool, t.handleExportEntries)
}

func (t *Tools) handleExportEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := insights.MarshalExport(t.store.All())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RegisterClearEntriesTool registers the clear_entries tool.
func (t *Tools) RegisterClearEntriesTool(s *server.MCPServer) {
	clearTool := mcp.NewTool("clear_entries",
		mcp.WithDescription("Deletes every journal entry. This cannot be undone."),
		mcp.WithBoolean("confirm", mcp.Required(), mcp.Description("Must be true to delete all entries.")),
	)
	s.AddTool(clearTool, t.handleClearEntries)
}

func (t *Tools) handleClearEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !boolArg(request, "confirm") {
		return mcp.NewToolResultError("'confirm' must be true to delete all entries. This cannot be undone."), nil
	}
	removed := t.store.Len()
	if err := t.store.ClearAll(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear entries: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %d entries.", removed)), nil
}

// RegisterComposeShareTextTool registers the compose_share_text tool.
func (t *Tools) RegisterComposeShareTextTool(s *server.MCPServer) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Composes the shareable summary of a reflection without saving it."),
	}, draftOptions()...)
	s.AddTool(mcp.NewTool("compose_share_text", opts...), t.handleComposeShareText)
}

func (t *Tools) handleComposeShareText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	draft, err := t.draftFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(insights.ShareText(draft)), nil
}

// RegisterDefineWordTool registers the define_word tool.
func (t *Tools) RegisterDefineWordTool(s *server.MCPServer) {
	defineTool := mcp.NewTool("define_word",
		mcp.WithDescription("Returns a web search URL that defines the given word."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to look up.")),
	)
	s.AddTool(defineTool, t.handleDefineWord)
}

func (t *Tools) handleDefineWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, _ := stringArg(request, "word")
	url, ok := insights.DefineURL(word)
	if !ok {
		return mcp.NewToolResultError("'word' parameter is required and must be a non-empty string."), nil
	}
	return mcp.NewToolResultText(url), nil
}
