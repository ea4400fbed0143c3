package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/langedb/grouper-mcp/pkg/grouper"
	"github.com/langedb/grouper-mcp/pkg/trace"
)

// traceMembershipArgs holds the arguments for tracing a membership
type traceMembershipArgs struct {
	GroupName       string `json:"groupName"`
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
}

// TraceMembershipResponse is the structured result of trace_membership
type TraceMembershipResponse struct {
	IsMember       bool             `json:"isMember"`
	Message        string           `json:"message,omitempty"`
	Subject        *grouper.Subject `json:"subject,omitempty"`
	TargetGroup    *grouper.Group   `json:"targetGroup,omitempty"`
	MembershipType string           `json:"membershipType,omitempty"`
	MembershipPath []trace.Hop      `json:"membershipPath,omitempty"`
	PathSummary    string           `json:"pathSummary,omitempty"`
}

// TraceMembership explains why a subject belongs to a group
func (h *Handler) TraceMembership(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := traceMembershipArgs{}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse arguments: %v", err)), nil
	}
	if args.GroupName == "" || args.SubjectID == "" {
		return mcp.NewToolResultError("groupName and subjectId are required"), nil
	}

	subject := grouper.Subject{ID: args.SubjectID, SourceID: args.SubjectSourceID}
	result, err := h.tracer.Trace(ctx, subject, args.GroupName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to trace membership: %v", err)), nil
	}

	if !result.IsMember {
		return mcp.NewToolResultStructuredOnly(TraceMembershipResponse{
			IsMember: false,
			Message:  result.Message,
		}), nil
	}

	hops := trace.Flatten(result.Root)
	return mcp.NewToolResultStructuredOnly(TraceMembershipResponse{
		IsMember:       true,
		Subject:        &result.Subject,
		TargetGroup:    &result.TargetGroup,
		MembershipType: string(result.MembershipType),
		MembershipPath: hops,
		PathSummary:    trace.Summary(hops),
	}), nil
}
