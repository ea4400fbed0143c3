package grouper

// Wire types for the Grouper WS REST JSON envelopes. Requests and responses
// are wrapped in a single-key object named after the operation
// (WsRestGetMembershipsRequest -> WsGetMembershipsResults, and so on).
// Booleans are the strings "T" and "F".

// Endpoint paths under the WS REST base URL.
const (
	pathMemberships = "/memberships"
	pathGroups      = "/groups"
	pathPrivileges  = "/grouperPrivileges"
)

// Member filters accepted by the memberships and members operations.
const (
	memberFilterAll       = "All"
	memberFilterImmediate = "Immediate"
)

func wsBool(s string) bool {
	return s == "T"
}

func wsBoolStr(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

type wsSubjectLookup struct {
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
}

func subjectLookup(subject Subject) wsSubjectLookup {
	return wsSubjectLookup{SubjectID: subject.ID, SubjectSourceID: subject.SourceID}
}

type wsGroupLookup struct {
	GroupName string `json:"groupName"`
}

type wsSubject struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`
	Name     string `json:"name"`
}

type wsGroup struct {
	Name             string         `json:"name"`
	DisplayName      string         `json:"displayName"`
	Description      string         `json:"description,omitempty"`
	DisplayExtension string         `json:"displayExtension,omitempty"`
	Detail           *wsGroupDetail `json:"detail,omitempty"`
}

type wsGroupDetail struct {
	HasComposite  string   `json:"hasComposite"`
	CompositeType string   `json:"compositeType,omitempty"`
	LeftGroup     *wsGroup `json:"leftGroup,omitempty"`
	RightGroup    *wsGroup `json:"rightGroup,omitempty"`
}

type wsMembership struct {
	MembershipType  string `json:"membershipType"`
	GroupName       string `json:"groupName"`
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId"`
	Enabled         string `json:"enabled,omitempty"`
}

type wsResultMetadata struct {
	ResultCode    string `json:"resultCode"`
	ResultMessage string `json:"resultMessage,omitempty"`
	Success       string `json:"success"`
}

// get memberships

type wsRestGetMembershipsRequest struct {
	WsSubjectLookups     []wsSubjectLookup `json:"wsSubjectLookups,omitempty"`
	WsGroupLookups       []wsGroupLookup   `json:"wsGroupLookups,omitempty"`
	MemberFilter         string            `json:"memberFilter,omitempty"`
	IncludeGroupDetail   string            `json:"includeGroupDetail,omitempty"`
	IncludeSubjectDetail string            `json:"includeSubjectDetail,omitempty"`
}

type getMembershipsRequestEnvelope struct {
	WsRestGetMembershipsRequest wsRestGetMembershipsRequest `json:"WsRestGetMembershipsRequest"`
}

type wsGetMembershipsResults struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
	WsMemberships  []wsMembership   `json:"wsMemberships"`
	WsGroups       []wsGroup        `json:"wsGroups"`
	WsSubjects     []wsSubject      `json:"wsSubjects"`
}

type getMembershipsResultsEnvelope struct {
	WsGetMembershipsResults wsGetMembershipsResults `json:"WsGetMembershipsResults"`
}

// get members

type wsRestGetMembersRequest struct {
	WsGroupLookups       []wsGroupLookup `json:"wsGroupLookups"`
	MemberFilter         string          `json:"memberFilter,omitempty"`
	IncludeSubjectDetail string          `json:"includeSubjectDetail,omitempty"`
}

type getMembersRequestEnvelope struct {
	WsRestGetMembersRequest wsRestGetMembersRequest `json:"WsRestGetMembersRequest"`
}

type wsGetMembersResult struct {
	WsGroup        wsGroup          `json:"wsGroup"`
	WsSubjects     []wsSubject      `json:"wsSubjects"`
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
}

type wsGetMembersResults struct {
	ResultMetadata wsResultMetadata     `json:"resultMetadata"`
	Results        []wsGetMembersResult `json:"results"`
}

type getMembersResultsEnvelope struct {
	WsGetMembersResults wsGetMembersResults `json:"WsGetMembersResults"`
}

// has member

type wsRestHasMemberRequest struct {
	WsGroupLookup  wsGroupLookup     `json:"wsGroupLookup"`
	SubjectLookups []wsSubjectLookup `json:"subjectLookups"`
}

type hasMemberRequestEnvelope struct {
	WsRestHasMemberRequest wsRestHasMemberRequest `json:"WsRestHasMemberRequest"`
}

type wsHasMemberResult struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
	WsSubject      wsSubject        `json:"wsSubject"`
}

type wsHasMemberResults struct {
	ResultMetadata wsResultMetadata    `json:"resultMetadata"`
	Results        []wsHasMemberResult `json:"results"`
}

type hasMemberResultsEnvelope struct {
	WsHasMemberResults wsHasMemberResults `json:"WsHasMemberResults"`
}

// group save

type wsGroupToSave struct {
	WsGroup       wsGroup       `json:"wsGroup"`
	WsGroupLookup wsGroupLookup `json:"wsGroupLookup"`
}

type wsRestGroupSaveRequest struct {
	WsGroupToSaves []wsGroupToSave `json:"wsGroupToSaves"`
}

type groupSaveRequestEnvelope struct {
	WsRestGroupSaveRequest wsRestGroupSaveRequest `json:"WsRestGroupSaveRequest"`
}

type wsGroupSaveResult struct {
	WsGroup        wsGroup          `json:"wsGroup"`
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
}

type wsGroupSaveResults struct {
	ResultMetadata wsResultMetadata    `json:"resultMetadata"`
	Results        []wsGroupSaveResult `json:"results"`
}

type groupSaveResultsEnvelope struct {
	WsGroupSaveResults wsGroupSaveResults `json:"WsGroupSaveResults"`
}

// group delete

type wsRestGroupDeleteRequest struct {
	WsGroupLookups []wsGroupLookup `json:"wsGroupLookups"`
}

type groupDeleteRequestEnvelope struct {
	WsRestGroupDeleteRequest wsRestGroupDeleteRequest `json:"WsRestGroupDeleteRequest"`
}

type wsGroupDeleteResults struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
}

type groupDeleteResultsEnvelope struct {
	WsGroupDeleteResults wsGroupDeleteResults `json:"WsGroupDeleteResults"`
}

// add / delete member

type wsRestAddMemberRequest struct {
	WsGroupLookup  wsGroupLookup     `json:"wsGroupLookup"`
	SubjectLookups []wsSubjectLookup `json:"subjectLookups"`
}

type addMemberRequestEnvelope struct {
	WsRestAddMemberRequest wsRestAddMemberRequest `json:"WsRestAddMemberRequest"`
}

type wsAddMemberResults struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
}

type addMemberResultsEnvelope struct {
	WsAddMemberResults wsAddMemberResults `json:"WsAddMemberResults"`
}

type wsRestDeleteMemberRequest struct {
	WsGroupLookup  wsGroupLookup     `json:"wsGroupLookup"`
	SubjectLookups []wsSubjectLookup `json:"subjectLookups"`
}

type deleteMemberRequestEnvelope struct {
	WsRestDeleteMemberRequest wsRestDeleteMemberRequest `json:"WsRestDeleteMemberRequest"`
}

type wsDeleteMemberResults struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
}

type deleteMemberResultsEnvelope struct {
	WsDeleteMemberResults wsDeleteMemberResults `json:"WsDeleteMemberResults"`
}

// find groups

type wsQueryFilter struct {
	QueryFilterType string `json:"queryFilterType"`
	GroupName       string `json:"groupName,omitempty"`
}

type wsRestFindGroupsRequest struct {
	WsQueryFilter wsQueryFilter `json:"wsQueryFilter"`
}

type findGroupsRequestEnvelope struct {
	WsRestFindGroupsRequest wsRestFindGroupsRequest `json:"WsRestFindGroupsRequest"`
}

type wsFindGroupsResults struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
	GroupResults   []wsGroup        `json:"groupResults"`
}

type findGroupsResultsEnvelope struct {
	WsFindGroupsResults wsFindGroupsResults `json:"WsFindGroupsResults"`
}

// assign privileges

type wsRestAssignGrouperPrivilegesLiteRequest struct {
	GroupName       string `json:"groupName"`
	SubjectID       string `json:"subjectId"`
	SubjectSourceID string `json:"subjectSourceId,omitempty"`
	PrivilegeType   string `json:"privilegeType"`
	PrivilegeName   string `json:"privilegeName"`
	Allowed         string `json:"allowed"`
}

type assignPrivilegesRequestEnvelope struct {
	WsRestAssignGrouperPrivilegesLiteRequest wsRestAssignGrouperPrivilegesLiteRequest `json:"WsRestAssignGrouperPrivilegesLiteRequest"`
}

type wsAssignGrouperPrivilegesLiteResult struct {
	ResultMetadata wsResultMetadata `json:"resultMetadata"`
}

type assignPrivilegesResultsEnvelope struct {
	WsAssignGrouperPrivilegesLiteResult wsAssignGrouperPrivilegesLiteResult `json:"WsAssignGrouperPrivilegesLiteResult"`
}
