package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type findGroupsArgs struct {
	Query string `json:"query"`
}

// GroupInfo describes a single group returned by a search
type GroupInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// FindGroupsResponse is the structured result of a group search
type FindGroupsResponse struct {
	Query  string      `json:"query"`
	Groups []GroupInfo `json:"groups"`
	Total  int         `json:"total"`
}

// FindGroups searches for groups whose name approximately matches a query
func (h *Handler) FindGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := findGroupsArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.Query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	groups, err := h.client.FindGroups(ctx, args.Query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find groups: %v", err)), nil
	}

	response := FindGroupsResponse{
		Query:  args.Query,
		Groups: make([]GroupInfo, 0, len(groups)),
		Total:  len(groups),
	}
	for _, g := range groups {
		response.Groups = append(response.Groups, GroupInfo{
			Name:        g.Name,
			DisplayName: g.DisplayName,
			Description: g.Description,
		})
	}

	return mcp.NewToolResultStructuredOnly(response), nil
}
