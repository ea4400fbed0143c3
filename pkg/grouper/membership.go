package grouper

import (
	"context"
)

// GetMembership fetches the membership record for exactly one subject/group
// pair, including group detail (to recover composite definitions) and
// subject detail. Returns nil, nil when the backend reports zero records:
// the subject is simply not a member, which is not an error.
//
// When the backend reports more than one record for the pair (a subject can
// hold several membership types in the same group), the first record in
// backend order wins.
func (c *Client) GetMembership(ctx context.Context, subject Subject, groupName string) (*Membership, error) {
	request := getMembershipsRequestEnvelope{
		WsRestGetMembershipsRequest: wsRestGetMembershipsRequest{
			WsSubjectLookups:     []wsSubjectLookup{subjectLookup(subject)},
			WsGroupLookups:       []wsGroupLookup{{GroupName: groupName}},
			MemberFilter:         memberFilterAll,
			IncludeGroupDetail:   wsBoolStr(true),
			IncludeSubjectDetail: wsBoolStr(true),
		},
	}

	var response getMembershipsResultsEnvelope
	if err := c.post(ctx, pathMemberships, request, &response); err != nil {
		return nil, err
	}

	results := &response.WsGetMembershipsResults
	if err := checkResult(results.ResultMetadata, "get memberships"); err != nil {
		return nil, err
	}

	if len(results.WsMemberships) == 0 {
		return nil, nil
	}

	membership := parseMembership(results.WsMemberships[0], results)
	return &membership, nil
}

// ListMemberships fetches every membership the subject holds, across all
// membership types, annotated with group detail.
func (c *Client) ListMemberships(ctx context.Context, subject Subject) ([]Membership, error) {
	results, err := c.fetchMemberships(ctx, subject, memberFilterAll)
	if err != nil {
		return nil, err
	}

	memberships := make([]Membership, 0, len(results.WsMemberships))
	for _, m := range results.WsMemberships {
		memberships = append(memberships, parseMembership(m, results))
	}
	return memberships, nil
}

// GetImmediateMemberships fetches the names of every group the subject is
// directly assigned to.
func (c *Client) GetImmediateMemberships(ctx context.Context, subject Subject) (GroupNameSet, error) {
	return c.membershipNames(ctx, subject, memberFilterImmediate)
}

// GetAllMemberships fetches the names of every group the subject belongs to
// through any membership type.
func (c *Client) GetAllMemberships(ctx context.Context, subject Subject) (GroupNameSet, error) {
	return c.membershipNames(ctx, subject, memberFilterAll)
}

func (c *Client) membershipNames(ctx context.Context, subject Subject, filter string) (GroupNameSet, error) {
	results, err := c.fetchMemberships(ctx, subject, filter)
	if err != nil {
		return nil, err
	}

	names := make(GroupNameSet, len(results.WsMemberships))
	for _, m := range results.WsMemberships {
		names.Add(m.GroupName)
	}
	return names, nil
}

func (c *Client) fetchMemberships(ctx context.Context, subject Subject, filter string) (*wsGetMembershipsResults, error) {
	request := getMembershipsRequestEnvelope{
		WsRestGetMembershipsRequest: wsRestGetMembershipsRequest{
			WsSubjectLookups:   []wsSubjectLookup{subjectLookup(subject)},
			MemberFilter:       filter,
			IncludeGroupDetail: wsBoolStr(true),
		},
	}

	var response getMembershipsResultsEnvelope
	if err := c.post(ctx, pathMemberships, request, &response); err != nil {
		return nil, err
	}

	results := &response.WsGetMembershipsResults
	if err := checkResult(results.ResultMetadata, "get memberships"); err != nil {
		return nil, err
	}
	return results, nil
}

// GetImmediateGroupMembers fetches the group's direct members filtered to
// those that are themselves groups, in backend order. Group-typed members
// are identified by the reserved g:gsa subject source.
func (c *Client) GetImmediateGroupMembers(ctx context.Context, groupName string) ([]Group, error) {
	request := getMembersRequestEnvelope{
		WsRestGetMembersRequest: wsRestGetMembersRequest{
			WsGroupLookups:       []wsGroupLookup{{GroupName: groupName}},
			MemberFilter:         memberFilterImmediate,
			IncludeSubjectDetail: wsBoolStr(true),
		},
	}

	var response getMembersResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return nil, err
	}

	results := &response.WsGetMembersResults
	if err := checkResult(results.ResultMetadata, "get members"); err != nil {
		return nil, err
	}

	var groups []Group
	for _, result := range results.Results {
		for _, s := range result.WsSubjects {
			if s.SourceID == GroupSourceID {
				groups = append(groups, parseGroupMember(s))
			}
		}
	}
	return groups, nil
}

// GetMembers fetches every direct member of the group, people and groups
// alike, with subject detail.
func (c *Client) GetMembers(ctx context.Context, groupName string) ([]Subject, error) {
	request := getMembersRequestEnvelope{
		WsRestGetMembersRequest: wsRestGetMembersRequest{
			WsGroupLookups:       []wsGroupLookup{{GroupName: groupName}},
			MemberFilter:         memberFilterAll,
			IncludeSubjectDetail: wsBoolStr(true),
		},
	}

	var response getMembersResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return nil, err
	}

	results := &response.WsGetMembersResults
	if err := checkResult(results.ResultMetadata, "get members"); err != nil {
		return nil, err
	}

	var members []Subject
	for _, result := range results.Results {
		for _, s := range result.WsSubjects {
			members = append(members, Subject{ID: s.ID, SourceID: s.SourceID, Name: s.Name})
		}
	}
	return members, nil
}

// HasMember reports whether the subject is a member of the group through any
// membership type.
func (c *Client) HasMember(ctx context.Context, groupName string, subject Subject) (bool, error) {
	request := hasMemberRequestEnvelope{
		WsRestHasMemberRequest: wsRestHasMemberRequest{
			WsGroupLookup:  wsGroupLookup{GroupName: groupName},
			SubjectLookups: []wsSubjectLookup{subjectLookup(subject)},
		},
	}

	var response hasMemberResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return false, err
	}

	results := &response.WsHasMemberResults
	if err := checkResult(results.ResultMetadata, "has member"); err != nil {
		return false, err
	}

	for _, result := range results.Results {
		if result.ResultMetadata.ResultCode == "IS_MEMBER" {
			return true, nil
		}
	}
	return false, nil
}
