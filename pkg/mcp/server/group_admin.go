package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// createGroupArgs holds the arguments for creating a group
type createGroupArgs struct {
	GroupName        string `json:"groupName"`
	DisplayExtension string `json:"displayExtension,omitempty"`
	Description      string `json:"description,omitempty"`
}

// CreateGroup creates a group
func (h *Handler) CreateGroup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := createGroupArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.GroupName == "" {
		return mcp.NewToolResultError("groupName is required"), nil
	}

	group, err := h.client.CreateGroup(ctx, args.GroupName, args.DisplayExtension, args.Description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create group: %v", err)), nil
	}

	result := map[string]interface{}{
		"status": "created",
		"group":  group,
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}

// deleteGroupArgs holds the arguments for deleting a group
type deleteGroupArgs struct {
	GroupName string `json:"groupName"`
}

// DeleteGroup deletes a group
func (h *Handler) DeleteGroup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := deleteGroupArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.GroupName == "" {
		return mcp.NewToolResultError("groupName is required"), nil
	}

	if err := h.client.DeleteGroup(ctx, args.GroupName); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete group: %v", err)), nil
	}

	result := map[string]interface{}{
		"status":    "deleted",
		"groupName": args.GroupName,
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}
