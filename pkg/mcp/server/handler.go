// Package server provides the MCP (Model Context Protocol) server exposing
// Grouper operations as tools.
package server

import (
	"context"

	"github.com/langedb/grouper-mcp/pkg/grouper"
	"github.com/langedb/grouper-mcp/pkg/trace"
)

//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks github.com/langedb/grouper-mcp/pkg/mcp/server GrouperClient,MembershipTracer

// GrouperClient is the Grouper WS surface consumed by the tool handlers.
type GrouperClient interface {
	ListMemberships(ctx context.Context, subject grouper.Subject) ([]grouper.Membership, error)
	GetMembers(ctx context.Context, groupName string) ([]grouper.Subject, error)
	HasMember(ctx context.Context, groupName string, subject grouper.Subject) (bool, error)
	CreateGroup(ctx context.Context, name, displayExtension, description string) (*grouper.Group, error)
	DeleteGroup(ctx context.Context, name string) error
	AddMember(ctx context.Context, groupName string, subject grouper.Subject) error
	RemoveMember(ctx context.Context, groupName string, subject grouper.Subject) error
	FindGroups(ctx context.Context, query string) ([]grouper.Group, error)
	AssignPrivilege(ctx context.Context, groupName string, subject grouper.Subject, privilege string, allowed bool) error
}

// MembershipTracer resolves membership derivations.
type MembershipTracer interface {
	Trace(ctx context.Context, subject grouper.Subject, targetGroupName string) (*trace.Result, error)
}

// Handler handles MCP tool requests against a Grouper WS instance.
type Handler struct {
	client GrouperClient
	tracer MembershipTracer
}

// NewHandler creates a handler backed by the given Grouper client.
func NewHandler(client *grouper.Client) *Handler {
	return &Handler{
		client: client,
		tracer: trace.NewTracer(client),
	}
}
