package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/langedb/grouper-mcp/pkg/grouper"
)

// getGroupsArgs holds the arguments for listing a subject's groups
type getGroupsArgs struct {
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
}

// GroupMembershipInfo is one group the subject belongs to
type GroupMembershipInfo struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName,omitempty"`
	Description    string `json:"description,omitempty"`
	MembershipType string `json:"membershipType"`
}

// GetGroups lists every group the subject belongs to
func (h *Handler) GetGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getGroupsArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.SubjectID == "" {
		return mcp.NewToolResultError("subjectId is required"), nil
	}

	subject := grouper.Subject{ID: args.SubjectID, SourceID: args.SubjectSourceID}
	memberships, err := h.client.ListMemberships(ctx, subject)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get groups: %v", err)), nil
	}

	results := make([]GroupMembershipInfo, 0, len(memberships))
	for _, m := range memberships {
		results = append(results, GroupMembershipInfo{
			Name:           m.Group.Name,
			DisplayName:    m.Group.DisplayName,
			Description:    m.Group.Description,
			MembershipType: m.RawType,
		})
	}

	return mcp.NewToolResultStructuredOnly(results), nil
}
