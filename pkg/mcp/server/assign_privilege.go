package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/langedb/grouper-mcp/pkg/grouper"
)

type assignPrivilegeArgs struct {
	GroupName       string `json:"groupName"`
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
	Privilege       string `json:"privilege"`
	Allowed         *bool  `json:"allowed,omitempty"`
}

// AssignPrivilege grants or revokes an access privilege on a group
func (h *Handler) AssignPrivilege(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := assignPrivilegeArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.GroupName == "" || args.SubjectID == "" || args.Privilege == "" {
		return mcp.NewToolResultError("groupName, subjectId and privilege are required"), nil
	}

	// Grant by default; pass allowed=false to revoke.
	allowed := true
	if args.Allowed != nil {
		allowed = *args.Allowed
	}

	subject := grouper.Subject{ID: args.SubjectID, SourceID: args.SubjectSourceID}
	if err := h.client.AssignPrivilege(ctx, args.GroupName, subject, args.Privilege, allowed); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to assign privilege: %v", err)), nil
	}

	status := "granted"
	if !allowed {
		status = "revoked"
	}
	result := map[string]interface{}{
		"status":    status,
		"groupName": args.GroupName,
		"subjectId": args.SubjectID,
		"privilege": args.Privilege,
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}
