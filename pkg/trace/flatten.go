package trace

import "strings"

// BranchRef describes one constituent of a composite hop.
type BranchRef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	IsMember    bool   `json:"isMember"`
}

// Hop is one step of a flattened membership path. The most indirect evidence
// comes first; the target group's own hop comes last.
type Hop struct {
	Group          string `json:"group"`
	DisplayName    string `json:"displayName,omitempty"`
	MembershipType string `json:"membershipType"`

	// ViaGroup names the intermediate group of an effective hop.
	ViaGroup string `json:"viaGroup,omitempty"`

	// Note and the two counts describe an effective hop whose exact path
	// could not be resolved.
	Note                            string `json:"note,omitempty"`
	SubjectImmediateGroupCount      *int   `json:"subjectImmediateGroupCount,omitempty"`
	TargetImmediateGroupMemberCount *int   `json:"targetImmediateGroupMemberCount,omitempty"`

	// Composite summary fields.
	CompositeType         string     `json:"compositeType,omitempty"`
	LeftGroup             *BranchRef `json:"leftGroup,omitempty"`
	RightGroup            *BranchRef `json:"rightGroup,omitempty"`
	PathThroughLeftGroup  bool       `json:"pathThroughLeftGroup,omitempty"`
	PathThroughRightGroup bool       `json:"pathThroughRightGroup,omitempty"`

	// RawType and Description carry terminal-node detail verbatim.
	RawType     string `json:"rawType,omitempty"`
	Description string `json:"description,omitempty"`
}

// Flatten converts a derivation tree into an ordered hop sequence. Pure
// function: chain and branch hops precede the hop of the node that owns
// them, left branches precede right ones.
func Flatten(node Node) []Hop {
	switch n := node.(type) {
	case *ImmediateNode:
		return []Hop{{
			Group:          n.Group.Name,
			DisplayName:    n.Group.DisplayName,
			MembershipType: string(KindImmediate),
		}}

	case *EffectiveNode:
		var hops []Hop
		if n.Chain != nil {
			hops = append(hops, Flatten(n.Chain)...)
		}

		hop := Hop{
			Group:          n.Group.Name,
			DisplayName:    n.Group.DisplayName,
			MembershipType: string(KindEffective),
		}
		if n.Intermediate != nil {
			hop.ViaGroup = n.Intermediate.Name
		} else {
			hop.Note = n.Note
			subjectCount := n.SubjectImmediateGroupCount
			targetCount := n.TargetImmediateGroupMemberCount
			hop.SubjectImmediateGroupCount = &subjectCount
			hop.TargetImmediateGroupMemberCount = &targetCount
		}
		return append(hops, hop)

	case *CompositeNode:
		var hops []Hop
		if n.Left.Chain != nil {
			hops = append(hops, Flatten(n.Left.Chain)...)
		}
		if n.Right.Chain != nil {
			hops = append(hops, Flatten(n.Right.Chain)...)
		}

		return append(hops, Hop{
			Group:                 n.Group.Name,
			DisplayName:           n.Group.DisplayName,
			MembershipType:        string(KindComposite),
			CompositeType:         string(n.CompositeType),
			LeftGroup:             branchRef(n.Left),
			RightGroup:            branchRef(n.Right),
			PathThroughLeftGroup:  n.Left.Chain != nil,
			PathThroughRightGroup: n.Right.Chain != nil,
		})

	case *MaxDepthNode:
		return []Hop{{
			Group:          n.GroupName,
			MembershipType: string(KindMaxDepth),
			Description:    n.Description,
		}}

	case *CycleNode:
		return []Hop{{
			Group:          n.GroupName,
			MembershipType: string(KindCycle),
			Description:    n.Description,
		}}

	case *UnknownNode:
		return []Hop{{
			Group:          n.Group.Name,
			DisplayName:    n.Group.DisplayName,
			MembershipType: string(KindUnknown),
			RawType:        n.RawType,
			Description:    n.Description,
		}}
	}

	return nil
}

func branchRef(b Branch) *BranchRef {
	return &BranchRef{
		Name:        b.Group.Name,
		DisplayName: b.Group.DisplayName,
		IsMember:    b.IsMember,
	}
}

// Summary renders a path as an arrow-joined chain of display names.
func Summary(hops []Hop) string {
	names := make([]string, 0, len(hops))
	for _, hop := range hops {
		name := hop.DisplayName
		if name == "" {
			name = hop.Group
		}
		names = append(names, name)
	}
	return strings.Join(names, " -> ")
}
