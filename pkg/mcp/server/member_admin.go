package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/langedb/grouper-mcp/pkg/grouper"
)

// memberArgs holds the arguments for adding or removing a member
type memberArgs struct {
	GroupName       string `json:"groupName"`
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
}

func (a *memberArgs) validate() error {
	if a.GroupName == "" || a.SubjectID == "" {
		return fmt.Errorf("groupName and subjectId are required")
	}
	return nil
}

func (a *memberArgs) subject() grouper.Subject {
	return grouper.Subject{ID: a.SubjectID, SourceID: a.SubjectSourceID}
}

// AddMember adds a subject as a direct member of a group
func (h *Handler) AddMember(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := memberArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if err := args.validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.client.AddMember(ctx, args.GroupName, args.subject()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add member: %v", err)), nil
	}

	result := map[string]interface{}{
		"status":    "added",
		"groupName": args.GroupName,
		"subjectId": args.SubjectID,
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}

// RemoveMember removes a subject's direct membership in a group
func (h *Handler) RemoveMember(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := memberArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if err := args.validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.client.RemoveMember(ctx, args.GroupName, args.subject()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to remove member: %v", err)), nil
	}

	result := map[string]interface{}{
		"status":    "removed",
		"groupName": args.GroupName,
		"subjectId": args.SubjectID,
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}
