package trace

import (
	"context"
	"fmt"

	"github.com/langedb/grouper-mcp/pkg/grouper"
	"github.com/langedb/grouper-mcp/pkg/logger"
)

//go:generate mockgen -destination=mocks/mock_reader.go -package=mocks github.com/langedb/grouper-mcp/pkg/trace MembershipReader

// MembershipReader is the read surface of the Grouper client consumed by the
// tracer. Each call is a single backend request.
type MembershipReader interface {
	// GetMembership fetches the membership record for one subject/group
	// pair, nil when the subject is not a member.
	GetMembership(ctx context.Context, subject grouper.Subject, groupName string) (*grouper.Membership, error)

	// GetImmediateMemberships fetches the names of the groups the subject
	// is directly assigned to.
	GetImmediateMemberships(ctx context.Context, subject grouper.Subject) (grouper.GroupNameSet, error)

	// GetAllMemberships fetches the names of every group the subject
	// belongs to through any membership type.
	GetAllMemberships(ctx context.Context, subject grouper.Subject) (grouper.GroupNameSet, error)

	// GetImmediateGroupMembers fetches the group's direct group-typed
	// members in backend order.
	GetImmediateGroupMembers(ctx context.Context, groupName string) ([]grouper.Group, error)
}

// MaxDepth bounds the recursion. Effective chains can be arbitrarily deep
// through nested hierarchies, and every level costs backend calls.
const MaxDepth = 5

// Tracer resolves membership derivations. Backend calls are issued
// sequentially; a failure anywhere aborts the whole trace.
type Tracer struct {
	reader MembershipReader
}

// NewTracer creates a Tracer over the given reader.
func NewTracer(reader MembershipReader) *Tracer {
	return &Tracer{reader: reader}
}

// Result is the outcome of a trace. When IsMember is false only Message is
// meaningful; otherwise Root holds the derivation tree.
type Result struct {
	IsMember       bool
	Message        string
	Subject        grouper.Subject
	TargetGroup    grouper.Group
	MembershipType grouper.MembershipType
	Root           Node
}

// Trace determines whether and why subject belongs to targetGroupName. The
// existence check is a single backend call; the recursive resolution only
// runs for confirmed members.
func (t *Tracer) Trace(ctx context.Context, subject grouper.Subject, targetGroupName string) (*Result, error) {
	fact, err := t.reader.GetMembership(ctx, subject, targetGroupName)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return &Result{
			IsMember: false,
			Subject:  subject,
			Message:  fmt.Sprintf("Subject %s is not a member of group %s", subject.ID, targetGroupName),
		}, nil
	}

	logger.Debugw("tracing membership", "subject", subject.ID, "group", targetGroupName, "type", fact.RawType)

	root, err := t.resolve(ctx, subject, fact, visitedSet{targetGroupName: {}}, 0)
	if err != nil {
		return nil, err
	}

	return &Result{
		IsMember:       true,
		Subject:        fact.Subject,
		TargetGroup:    fact.Group,
		MembershipType: fact.Type,
		Root:           root,
	}, nil
}

// trace is the recursive step: bound checks, fetch, resolve. A nil node with
// a nil error means the subject turned out not to be a member of groupName;
// the parent omits the chain.
func (t *Tracer) trace(ctx context.Context, subject grouper.Subject, groupName string, visited visitedSet, depth int) (Node, error) {
	if depth > MaxDepth {
		return &MaxDepthNode{
			GroupName:   groupName,
			Description: fmt.Sprintf("trace stopped at %s: maximum depth of %d reached", groupName, MaxDepth),
		}, nil
	}
	if visited.has(groupName) {
		return &CycleNode{
			GroupName:   groupName,
			Description: fmt.Sprintf("trace stopped at %s: group already visited on this path", groupName),
		}, nil
	}

	fact, err := t.reader.GetMembership(ctx, subject, groupName)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return nil, nil
	}

	return t.resolve(ctx, subject, fact, visited.with(groupName), depth)
}

// resolve explains an already-fetched membership fact. visited already
// contains fact's group.
func (t *Tracer) resolve(ctx context.Context, subject grouper.Subject, fact *grouper.Membership, visited visitedSet, depth int) (Node, error) {
	switch fact.Type {
	case grouper.MembershipImmediate:
		return &ImmediateNode{Group: fact.Group}, nil
	case grouper.MembershipEffective:
		return t.resolveEffective(ctx, subject, fact, visited, depth)
	case grouper.MembershipComposite:
		return t.resolveComposite(ctx, subject, fact, visited, depth)
	default:
		return &UnknownNode{
			Group:       fact.Group,
			RawType:     fact.RawType,
			Description: fmt.Sprintf("membership type %q is not traced", fact.RawType),
		}, nil
	}
}

// resolveEffective finds the intermediate group carrying an effective
// membership. Two calls regardless of how many groups the subject belongs
// to: the subject's immediate memberships intersected with the target's
// direct group-typed members. The first intersecting group in backend member
// order is taken as the intermediate; multiple simultaneous paths are not
// enumerated.
func (t *Tracer) resolveEffective(ctx context.Context, subject grouper.Subject, fact *grouper.Membership, visited visitedSet, depth int) (Node, error) {
	subjectGroups, err := t.reader.GetImmediateMemberships(ctx, subject)
	if err != nil {
		return nil, err
	}
	groupMembers, err := t.reader.GetImmediateGroupMembers(ctx, fact.Group.Name)
	if err != nil {
		return nil, err
	}

	var intermediate *grouper.Group
	for i := range groupMembers {
		if subjectGroups.Has(groupMembers[i].Name) {
			intermediate = &groupMembers[i]
			break
		}
	}

	if intermediate == nil {
		// The path runs through a nested grandchild group; finding it
		// would cost a backend call per candidate. Report the
		// cardinalities instead and stop here.
		return &EffectiveNode{
			Group:                           fact.Group,
			Note:                            "exact path could not be resolved: no direct group member of the target is among the subject's immediate memberships",
			SubjectImmediateGroupCount:      len(subjectGroups),
			TargetImmediateGroupMemberCount: len(groupMembers),
		}, nil
	}

	chain, err := t.trace(ctx, subject, intermediate.Name, visited.clone(), depth+1)
	if err != nil {
		return nil, err
	}

	return &EffectiveNode{
		Group:        fact.Group,
		Intermediate: intermediate,
		Chain:        chain,
	}, nil
}

// resolveComposite explains membership in a composite group. One call for
// the subject's full membership list; branch membership is a name lookup.
// Branches are traced sequentially, each with its own copy of the visited
// set.
func (t *Tracer) resolveComposite(ctx context.Context, subject grouper.Subject, fact *grouper.Membership, visited visitedSet, depth int) (Node, error) {
	detail := fact.Detail
	if detail == nil || !detail.HasComposite || detail.Left == nil || detail.Right == nil {
		return &UnknownNode{
			Group:       fact.Group,
			RawType:     fact.RawType,
			Description: "composite group definition was not returned by the backend",
		}, nil
	}

	allGroups, err := t.reader.GetAllMemberships(ctx, subject)
	if err != nil {
		return nil, err
	}

	left := Branch{Group: *detail.Left, IsMember: allGroups.Has(detail.Left.Name)}
	right := Branch{Group: *detail.Right, IsMember: allGroups.Has(detail.Right.Name)}

	// Complement membership is explained by the left branch alone; being
	// outside the right group needs no derivation. For intersection and
	// union, every branch the subject is in gets traced.
	if left.IsMember {
		left.Chain, err = t.trace(ctx, subject, left.Group.Name, visited.clone(), depth+1)
		if err != nil {
			return nil, err
		}
	}
	if detail.CompositeType != grouper.CompositeComplement && right.IsMember {
		right.Chain, err = t.trace(ctx, subject, right.Group.Name, visited.clone(), depth+1)
		if err != nil {
			return nil, err
		}
	}

	return &CompositeNode{
		Group:         fact.Group,
		CompositeType: detail.CompositeType,
		Left:          left,
		Right:         right,
	}, nil
}
