package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/langedb/grouper-mcp/pkg/pagination"
)

// getMembersArgs holds the arguments for listing a group's members
type getMembersArgs struct {
	GroupName string `json:"groupName"`
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

// GetMembers lists the members of a group, paginated
func (h *Handler) GetMembers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getMembersArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.GroupName == "" {
		return mcp.NewToolResultError("groupName is required"), nil
	}

	members, err := h.client.GetMembers(ctx, args.GroupName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get members: %v", err)), nil
	}

	page, err := pagination.Chunk(members, args.Page, args.PageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to paginate members: %v", err)), nil
	}

	return mcp.NewToolResultStructuredOnly(page), nil
}
