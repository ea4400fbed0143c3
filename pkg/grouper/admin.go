package grouper

import (
	"context"
	"fmt"
	"strings"
)

// Access privileges assignable on a group.
var accessPrivileges = map[string]struct{}{
	"admin":  {},
	"update": {},
	"read":   {},
	"view":   {},
	"optin":  {},
	"optout": {},
}

// CreateGroup creates (or updates) a group. displayExtension defaults to the
// last segment of the colon-delimited name.
func (c *Client) CreateGroup(ctx context.Context, name, displayExtension, description string) (*Group, error) {
	if displayExtension == "" {
		segments := strings.Split(name, ":")
		displayExtension = segments[len(segments)-1]
	}

	request := groupSaveRequestEnvelope{
		WsRestGroupSaveRequest: wsRestGroupSaveRequest{
			WsGroupToSaves: []wsGroupToSave{
				{
					WsGroup: wsGroup{
						Name:             name,
						DisplayExtension: displayExtension,
						Description:      description,
					},
					WsGroupLookup: wsGroupLookup{GroupName: name},
				},
			},
		},
	}

	var response groupSaveResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return nil, err
	}

	results := &response.WsGroupSaveResults
	if err := checkResult(results.ResultMetadata, "group save"); err != nil {
		return nil, err
	}

	if len(results.Results) == 0 {
		return nil, fmt.Errorf("grouper group save returned no results for %s", name)
	}
	group := parseGroup(&results.Results[0].WsGroup)
	return &group, nil
}

// DeleteGroup deletes a group by name.
func (c *Client) DeleteGroup(ctx context.Context, name string) error {
	request := groupDeleteRequestEnvelope{
		WsRestGroupDeleteRequest: wsRestGroupDeleteRequest{
			WsGroupLookups: []wsGroupLookup{{GroupName: name}},
		},
	}

	var response groupDeleteResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return err
	}
	return checkResult(response.WsGroupDeleteResults.ResultMetadata, "group delete")
}

// AddMember adds the subject as a direct member of the group.
func (c *Client) AddMember(ctx context.Context, groupName string, subject Subject) error {
	request := addMemberRequestEnvelope{
		WsRestAddMemberRequest: wsRestAddMemberRequest{
			WsGroupLookup:  wsGroupLookup{GroupName: groupName},
			SubjectLookups: []wsSubjectLookup{subjectLookup(subject)},
		},
	}

	var response addMemberResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return err
	}
	return checkResult(response.WsAddMemberResults.ResultMetadata, "add member")
}

// RemoveMember removes the subject's direct membership in the group.
func (c *Client) RemoveMember(ctx context.Context, groupName string, subject Subject) error {
	request := deleteMemberRequestEnvelope{
		WsRestDeleteMemberRequest: wsRestDeleteMemberRequest{
			WsGroupLookup:  wsGroupLookup{GroupName: groupName},
			SubjectLookups: []wsSubjectLookup{subjectLookup(subject)},
		},
	}

	var response deleteMemberResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return err
	}
	return checkResult(response.WsDeleteMemberResults.ResultMetadata, "delete member")
}

// FindGroups searches for groups by approximate name match.
func (c *Client) FindGroups(ctx context.Context, query string) ([]Group, error) {
	request := findGroupsRequestEnvelope{
		WsRestFindGroupsRequest: wsRestFindGroupsRequest{
			WsQueryFilter: wsQueryFilter{
				QueryFilterType: "FIND_BY_GROUP_NAME_APPROXIMATE",
				GroupName:       query,
			},
		},
	}

	var response findGroupsResultsEnvelope
	if err := c.post(ctx, pathGroups, request, &response); err != nil {
		return nil, err
	}

	results := &response.WsFindGroupsResults
	if err := checkResult(results.ResultMetadata, "find groups"); err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(results.GroupResults))
	for i := range results.GroupResults {
		groups = append(groups, parseGroup(&results.GroupResults[i]))
	}
	return groups, nil
}

// AssignPrivilege grants or revokes an access privilege for the subject on
// the group. privilege must be one of admin, update, read, view, optin,
// optout.
func (c *Client) AssignPrivilege(ctx context.Context, groupName string, subject Subject, privilege string, allowed bool) error {
	privilege = strings.ToLower(privilege)
	if _, ok := accessPrivileges[privilege]; !ok {
		return fmt.Errorf("unknown access privilege %q", privilege)
	}

	request := assignPrivilegesRequestEnvelope{
		WsRestAssignGrouperPrivilegesLiteRequest: wsRestAssignGrouperPrivilegesLiteRequest{
			GroupName:       groupName,
			SubjectID:       subject.ID,
			SubjectSourceID: subject.SourceID,
			PrivilegeType:   "access",
			PrivilegeName:   privilege,
			Allowed:         wsBoolStr(allowed),
		},
	}

	var response assignPrivilegesResultsEnvelope
	if err := c.post(ctx, pathPrivileges, request, &response); err != nil {
		return err
	}
	return checkResult(response.WsAssignGrouperPrivilegesLiteResult.ResultMetadata, "assign privilege")
}
