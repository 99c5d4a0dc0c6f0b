// Package mcp exposes the lost & found store as MCP tools so an agent can
// search listings, inspect items and resolve pending claims over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/marvinridge/lostfound/internal/store"
)

// NewServer creates an MCPServer with the lost & found tools registered.
func NewServer(s store.Store) *server.MCPServer {
	srv := server.NewMCPServer(
		"lostfound",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	items := store.NewItems(s)
	claims := store.NewClaims(s)

	registerSearchItems(srv, items)
	registerGetItem(srv, items)
	registerReviewClaim(srv, claims)

	return srv
}

// ServeStdio runs the MCP server over stdin/stdout until EOF.
func ServeStdio(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}

func registerSearchItems(srv *server.MCPServer, items *store.Items) {
	tool := mcp.NewTool("search_items",
		mcp.WithDescription("Search approved lost & found listings by substring over title and description"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search text")),
	)
	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := strings.ToLower(stringArg(req.GetArguments(), "query"))
		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		approved, err := items.Approved(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var results []store.Item
		for _, item := range approved {
			if strings.Contains(strings.ToLower(item.Title), query) ||
				strings.Contains(strings.ToLower(item.Description), query) {
				results = append(results, item)
			}
		}
		return jsonResult(map[string]any{"results": results, "count": len(results)})
	})
}

func registerGetItem(srv *server.MCPServer, items *store.Items) {
	tool := mcp.NewTool("get_item",
		mcp.WithDescription("Fetch one lost & found listing by ID"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Item ID")),
	)
	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := stringArg(req.GetArguments(), "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		item, err := items.Get(ctx, id)
		if err != nil {
			if err == store.ErrNotFound {
				return mcp.NewToolResultError("item not found"), nil
			}
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(item)
	})
}

func registerReviewClaim(srv *server.MCPServer, claims *store.Claims) {
	tool := mcp.NewTool("review_claim",
		mcp.WithDescription("Resolve a pending ownership claim with an approve/reject decision"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Claim ID")),
		mcp.WithBoolean("approved", mcp.Required(), mcp.Description("Whether the claim is approved")),
		mcp.WithString("note", mcp.Description("Optional reviewer note")),
	)
	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		id := stringArg(args, "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		if _, err := claims.Get(ctx, id); err != nil {
			if err == store.ErrNotFound {
				return mcp.NewToolResultError("claim not found"), nil
			}
			return mcp.NewToolResultError(err.Error()), nil
		}

		approved, _ := args["approved"].(bool)
		status := store.StatusRejected
		if approved {
			status = store.StatusApproved
		}
		if err := claims.Resolve(ctx, id, status, stringArg(args, "note")); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]string{"id": id, "status": status})
	})
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
