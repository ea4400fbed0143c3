// Package grouper is a client for the Internet2 Grouper Web Services REST
// API. It issues authenticated POST requests with JSON envelopes and maps the
// backend's denormalized responses into typed entities.
package grouper

import "strings"

// MembershipType classifies how a subject belongs to a group.
type MembershipType string

// Membership types reported by Grouper. Other strings are carried through
// opaquely via Membership.RawType.
const (
	// MembershipImmediate is a direct assignment to the group.
	MembershipImmediate MembershipType = "immediate"

	// MembershipEffective is membership via one or more intermediate
	// groups that are themselves members of the group.
	MembershipEffective MembershipType = "effective"

	// MembershipComposite is membership derived from a composite group's
	// boolean combination rule.
	MembershipComposite MembershipType = "composite"

	// MembershipUnknown covers backend type strings not otherwise
	// enumerated.
	MembershipUnknown MembershipType = "unknown"
)

// NormalizeMembershipType maps a backend membership-type string onto one of
// the known types, or MembershipUnknown for anything unrecognized.
func NormalizeMembershipType(raw string) MembershipType {
	switch MembershipType(strings.ToLower(raw)) {
	case MembershipImmediate:
		return MembershipImmediate
	case MembershipEffective:
		return MembershipEffective
	case MembershipComposite:
		return MembershipComposite
	default:
		return MembershipUnknown
	}
}

// CompositeType is the boolean combination rule of a composite group.
type CompositeType string

// Composite types defined by Grouper. A composite group always combines
// exactly two constituent groups.
const (
	CompositeUnion        CompositeType = "union"
	CompositeIntersection CompositeType = "intersection"
	CompositeComplement   CompositeType = "complement"
)

// GroupSourceID is the subject source reserved for group-typed members.
// Members of a group whose source is this value are groups, not people.
const GroupSourceID = "g:gsa"

// Subject identifies a person or entity. SourceID distinguishes subjects
// with the same ID resolved against different backing directories; empty
// means the backend searches all sources.
type Subject struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Group is a named, colon-delimited hierarchically-namespaced entity.
type Group struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

// GroupDetail carries the composite definition of a group when the group is
// composite. Left and Right are the two constituent groups.
type GroupDetail struct {
	HasComposite  bool
	CompositeType CompositeType
	Left          *Group
	Right         *Group
}

// Membership is a read-only fact "subject has relation Type to group". It is
// fetched fresh per query and never persisted.
type Membership struct {
	Subject Subject
	Group   Group
	Type    MembershipType

	// RawType is the backend's verbatim membership-type string, kept for
	// forward compatibility with types not enumerated here.
	RawType string

	// Detail is the group detail when it was requested, nil otherwise.
	Detail *GroupDetail
}

// GroupNameSet is a set of group names.
type GroupNameSet map[string]struct{}

// Has reports whether name is in the set.
func (s GroupNameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s GroupNameSet) Add(name string) {
	s[name] = struct{}{}
}
