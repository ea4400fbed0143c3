package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/langedb/grouper-mcp/pkg/grouper"
)

// hasMemberArgs holds the arguments for a membership check
type hasMemberArgs struct {
	GroupName       string `json:"groupName"`
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
}

// HasMember checks whether a subject is a member of a group
func (h *Handler) HasMember(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := hasMemberArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.GroupName == "" || args.SubjectID == "" {
		return mcp.NewToolResultError("groupName and subjectId are required"), nil
	}

	subject := grouper.Subject{ID: args.SubjectID, SourceID: args.SubjectSourceID}
	isMember, err := h.client.HasMember(ctx, args.GroupName, subject)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to check membership: %v", err)), nil
	}

	result := map[string]interface{}{
		"groupName": args.GroupName,
		"subjectId": args.SubjectID,
		"isMember":  isMember,
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}
