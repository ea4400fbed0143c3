// Package trace reconstructs why a subject belongs to a group, walking
// immediate, effective, and composite membership down to directly-verifiable
// facts. The derivation is a tree of typed nodes built fresh per call; the
// flattener turns it into a linear path for display.
package trace

import "github.com/langedb/grouper-mcp/pkg/grouper"

// NodeKind discriminates the trace node variants.
type NodeKind string

// Node kinds. The three membership kinds carry children; the remaining
// kinds are terminal.
const (
	KindImmediate NodeKind = "immediate"
	KindEffective NodeKind = "effective"
	KindComposite NodeKind = "composite"
	KindMaxDepth  NodeKind = "max_depth_reached"
	KindCycle     NodeKind = "cycle_detected"
	KindUnknown   NodeKind = "unknown"
)

// Node is one step of a membership derivation.
type Node interface {
	Kind() NodeKind
}

// ImmediateNode is terminal: the subject is directly assigned to the group.
type ImmediateNode struct {
	Group grouper.Group
}

// Kind implements Node.
func (*ImmediateNode) Kind() NodeKind { return KindImmediate }

// EffectiveNode explains membership via an intermediate group. When the
// intermediate could not be determined (the path runs through a nested
// grandchild rather than a direct group member), Intermediate and Chain are
// nil and the diagnostic counts describe the two sets that failed to
// intersect.
type EffectiveNode struct {
	Group        grouper.Group
	Intermediate *grouper.Group
	Chain        Node

	Note                            string
	SubjectImmediateGroupCount      int
	TargetImmediateGroupMemberCount int
}

// Kind implements Node.
func (*EffectiveNode) Kind() NodeKind { return KindEffective }

// Branch is one constituent of a composite group. Chain is non-nil only for
// branches that were traced.
type Branch struct {
	Group    grouper.Group
	IsMember bool
	Chain    Node
}

// CompositeNode explains membership in a composite group as the boolean
// combination of its two constituents.
type CompositeNode struct {
	Group         grouper.Group
	CompositeType grouper.CompositeType
	Left          Branch
	Right         Branch
}

// Kind implements Node.
func (*CompositeNode) Kind() NodeKind { return KindComposite }

// MaxDepthNode is terminal: the search hit the depth bound.
type MaxDepthNode struct {
	GroupName   string
	Description string
}

// Kind implements Node.
func (*MaxDepthNode) Kind() NodeKind { return KindMaxDepth }

// CycleNode is terminal: the group was already visited on this path.
type CycleNode struct {
	GroupName   string
	Description string
}

// Kind implements Node.
func (*CycleNode) Kind() NodeKind { return KindCycle }

// UnknownNode is terminal: the backend reported a membership type this
// package does not trace.
type UnknownNode struct {
	Group       grouper.Group
	RawType     string
	Description string
}

// Kind implements Node.
func (*UnknownNode) Kind() NodeKind { return KindUnknown }

// visitedSet tracks group names already on the current derivation path.
// It is never mutated in place: with() copies, so sibling branches cannot
// poison each other's cycle detection.
type visitedSet map[string]struct{}

func (v visitedSet) has(name string) bool {
	_, ok := v[name]
	return ok
}

// with returns a copy of the set with name added.
func (v visitedSet) with(name string) visitedSet {
	next := make(visitedSet, len(v)+1)
	for k := range v {
		next[k] = struct{}{}
	}
	next[name] = struct{}{}
	return next
}

// clone returns an independent copy for a sibling branch.
func (v visitedSet) clone() visitedSet {
	next := make(visitedSet, len(v))
	for k := range v {
		next[k] = struct{}{}
	}
	return next
}
