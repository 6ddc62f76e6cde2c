package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mood/pkg/export"
	"tableflip.dev/mood/pkg/mood"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogMoodTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerCalendarTool(srv, svc)
	registerSummaryTool(srv, svc)
	registerExportTool(srv, svc)
	registerListMoodsTool(srv)
}

func moodEnum(withAll bool) []string {
	ids := mood.IDs()
	if withAll {
		ids = append([]string{mood.All}, ids...)
	}
	return ids
}

func registerLogMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_mood",
		mcp.WithDescription("Record a new mood journal entry."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood id, label or selector number."),
		),
		mcp.WithString("note",
			mcp.Description("Optional free-text note. Surrounding whitespace is trimmed."),
		),
		mcp.WithBoolean("weather",
			mcp.Description("Attach the current weather (default true)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		alias, err := request.RequireString("mood")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		note := request.GetString("note", "")
		withWeather := request.GetBool("weather", true)

		res, err := svc.LogMood(ctx, alias, note, withWeather)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, newest first."),
		mcp.WithString("mood",
			mcp.Description("Only entries with this mood (default all)."),
			mcp.Enum(moodEnum(true)...),
		),
		mcp.WithString("window",
			mcp.Description("Only entries within this window, e.g. 7d, 2w, 1mo. Empty means all time."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(500),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moodID := request.GetString("mood", mood.All)
		window := request.GetString("window", "")
		limit := request.GetInt("limit", 20)

		results, err := svc.ListEntries(ctx, moodID, window, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		span, _ := Span(window)
		return toJSONResult(map[string]any{
			"mood":    moodID,
			"window":  window,
			"span":    span,
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier, the creation time in milliseconds."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"calendar",
		mcp.WithDescription("Month grid of entries, Sunday first, padded to whole weeks."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM (default current month)."),
		),
		mcp.WithString("mood",
			mcp.Description("Only entries with this mood (default all)."),
			mcp.Enum(moodEnum(true)...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := request.GetString("month", "")
		moodID := request.GetString("mood", mood.All)

		days, err := svc.Calendar(ctx, month, moodID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"month": month,
			"mood":  moodID,
			"days":  days,
		})
	})
}

func registerSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mood_summary",
		mcp.WithDescription("Count entries per mood."),
		mcp.WithString("window",
			mcp.Description("Only entries within this window, e.g. 30d. Empty means all time."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window := request.GetString("window", "")
		counts, total, err := svc.Summary(ctx, window)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		span, _ := Span(window)
		return toJSONResult(map[string]any{
			"window": window,
			"span":   span,
			"moods":  counts,
			"total":  total,
		})
	})
}

func registerExportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"export_journal",
		mcp.WithDescription("Render the whole journal as text."),
		mcp.WithString("format",
			mcp.Description("Export format (default csv)."),
			mcp.Enum(export.Formats()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := strings.TrimSpace(request.GetString("format", "csv"))
		text, err := svc.Export(ctx, format)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func registerListMoodsTool(srv *server.MCPServer) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List the moods an entry can carry."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(map[string]any{
			"moods": mood.DefaultMoods(),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
