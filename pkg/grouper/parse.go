package grouper

// Mapping from the WS envelopes into typed entities. The backend returns
// denormalized parallel arrays (wsMemberships, wsGroups, wsSubjects)
// correlated by name and id rather than foreign keys, and leaves optional
// fields empty instead of omitting records. All defaulting happens here so
// the rest of the code never probes alternate field names.

// parseGroup maps a wsGroup onto a Group. An empty displayName falls back to
// the system name.
func parseGroup(g *wsGroup) Group {
	if g == nil {
		return Group{}
	}
	displayName := g.DisplayName
	if displayName == "" {
		displayName = g.Name
	}
	return Group{
		Name:        g.Name,
		DisplayName: displayName,
		Description: g.Description,
	}
}

// parseGroupDetail maps a wsGroupDetail onto a GroupDetail. Returns nil when
// no detail was present.
func parseGroupDetail(d *wsGroupDetail) *GroupDetail {
	if d == nil {
		return nil
	}
	detail := &GroupDetail{
		HasComposite:  wsBool(d.HasComposite),
		CompositeType: CompositeType(d.CompositeType),
	}
	if d.LeftGroup != nil {
		left := parseGroup(d.LeftGroup)
		detail.Left = &left
	}
	if d.RightGroup != nil {
		right := parseGroup(d.RightGroup)
		detail.Right = &right
	}
	return detail
}

// parseMembership correlates one wsMembership record with the group and
// subject arrays of its envelope.
func parseMembership(m wsMembership, results *wsGetMembershipsResults) Membership {
	membership := Membership{
		Subject: Subject{ID: m.SubjectID, SourceID: m.SubjectSourceID},
		Group:   Group{Name: m.GroupName, DisplayName: m.GroupName},
		Type:    NormalizeMembershipType(m.MembershipType),
		RawType: m.MembershipType,
	}

	for i := range results.WsGroups {
		g := &results.WsGroups[i]
		if g.Name == m.GroupName {
			membership.Group = parseGroup(g)
			membership.Detail = parseGroupDetail(g.Detail)
			break
		}
	}

	for i := range results.WsSubjects {
		s := &results.WsSubjects[i]
		if s.ID == m.SubjectID {
			membership.Subject.Name = s.Name
			if membership.Subject.SourceID == "" {
				membership.Subject.SourceID = s.SourceID
			}
			break
		}
	}

	return membership
}

// parseGroupMember maps a group-typed wsSubject (source g:gsa) onto a Group.
// The subject's name attribute carries the group's system name; there is no
// separate display name on the membership record.
func parseGroupMember(s wsSubject) Group {
	return Group{Name: s.Name, DisplayName: s.Name}
}
