package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/langedb/grouper-mcp/pkg/logger"
	"github.com/langedb/grouper-mcp/pkg/versions"
)

// Server wraps an MCP server with all Grouper tools registered.
type Server struct {
	mcpServer  *server.MCPServer
	httpServer *http.Server
}

// New creates an MCP server exposing the handler's tools.
func New(handler *Handler) *Server {
	versionInfo := versions.GetVersionInfo()
	mcpServer := server.NewMCPServer(
		"grouper-mcp",
		versionInfo.Version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	s := &Server{mcpServer: mcpServer}
	s.registerTools(handler)
	return s
}

func (s *Server) registerTools(handler *Handler) {
	subjectProperties := map[string]interface{}{
		"subjectId": map[string]interface{}{
			"type":        "string",
			"description": "Identifier of the subject (e.g. a user's login id)",
		},
		"subjectSourceId": map[string]interface{}{
			"type":        "string",
			"description": "Optional subject source to disambiguate the subject id",
		},
	}
	groupNameProperty := map[string]interface{}{
		"type":        "string",
		"description": "Full system name of the group (colon-separated path, e.g. 'app:staff')",
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name: "trace_membership",
		Description: "Trace how a subject's membership in a group is derived. " +
			"Follows effective memberships through intermediate groups and expands " +
			"composite group definitions (union, intersection, complement).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName":       groupNameProperty,
				"subjectId":       subjectProperties["subjectId"],
				"subjectSourceId": subjectProperties["subjectSourceId"],
			},
			Required: []string{"groupName", "subjectId"},
		},
	}, handler.TraceMembership)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_groups",
		Description: "List the groups a subject belongs to, including effective and composite memberships",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"subjectId":       subjectProperties["subjectId"],
				"subjectSourceId": subjectProperties["subjectSourceId"],
			},
			Required: []string{"subjectId"},
		},
	}, handler.GetGroups)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_members",
		Description: "List the members of a group, paginated",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName": groupNameProperty,
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number, starting at 1",
				},
				"pageSize": map[string]interface{}{
					"type":        "integer",
					"description": "Number of members per page (max 1000)",
				},
			},
			Required: []string{"groupName"},
		},
	}, handler.GetMembers)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "has_member",
		Description: "Check whether a subject is a member of a group",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName":       groupNameProperty,
				"subjectId":       subjectProperties["subjectId"],
				"subjectSourceId": subjectProperties["subjectSourceId"],
			},
			Required: []string{"groupName", "subjectId"},
		},
	}, handler.HasMember)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_group",
		Description: "Create a new group",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName": groupNameProperty,
				"displayExtension": map[string]interface{}{
					"type":        "string",
					"description": "Human-readable name for the last segment of the group path",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description of the group",
				},
			},
			Required: []string{"groupName"},
		},
	}, handler.CreateGroup)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_group",
		Description: "Delete a group",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName": groupNameProperty,
			},
			Required: []string{"groupName"},
		},
	}, handler.DeleteGroup)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "add_member",
		Description: "Add a subject as a direct member of a group",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName":       groupNameProperty,
				"subjectId":       subjectProperties["subjectId"],
				"subjectSourceId": subjectProperties["subjectSourceId"],
			},
			Required: []string{"groupName", "subjectId"},
		},
	}, handler.AddMember)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "remove_member",
		Description: "Remove a subject's direct membership in a group",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName":       groupNameProperty,
				"subjectId":       subjectProperties["subjectId"],
				"subjectSourceId": subjectProperties["subjectSourceId"],
			},
			Required: []string{"groupName", "subjectId"},
		},
	}, handler.RemoveMember)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "find_groups",
		Description: "Search for groups by approximate name match",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search text matched against group names",
				},
			},
			Required: []string{"query"},
		},
	}, handler.FindGroups)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "assign_privilege",
		Description: "Grant or revoke an access privilege (admin, update, read, view, optin, optout) on a group",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"groupName":       groupNameProperty,
				"subjectId":       subjectProperties["subjectId"],
				"subjectSourceId": subjectProperties["subjectSourceId"],
				"privilege": map[string]interface{}{
					"type":        "string",
					"description": "Privilege to assign: admin, update, read, view, optin or optout",
				},
				"allowed": map[string]interface{}{
					"type":        "boolean",
					"description": "true to grant (default), false to revoke",
				},
			},
			Required: []string{"groupName", "subjectId", "privilege"},
		},
	}, handler.AssignPrivilege)
}

// ServeStdio serves MCP over stdin/stdout and blocks until the client
// disconnects.
func (s *Server) ServeStdio() error {
	logger.Info("Starting Grouper MCP server on stdio")
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP serves MCP over streamable HTTP at /mcp on the given address
// and blocks until the listener fails or Shutdown is called.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	streamableServer := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithEndpointPath("/mcp"),
		server.WithHTTPContextFunc(func(_ context.Context, _ *http.Request) context.Context {
			return ctx
		}),
	)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           streamableServer,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	logger.Infof("Starting Grouper MCP server on http://%s/mcp", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP listener, if one is running.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
