package trace

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/langedb/grouper-mcp/pkg/grouper"
	"github.com/langedb/grouper-mcp/pkg/trace/mocks"
)

func membershipFact(subject grouper.Subject, group grouper.Group, membershipType grouper.MembershipType) *grouper.Membership {
	return &grouper.Membership{
		Subject: subject,
		Group:   group,
		Type:    membershipType,
		RawType: string(membershipType),
	}
}

func TestTrace_NotAMember_SingleBackendCall(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "nobody"}
	reader := mocks.NewMockMembershipReader(ctrl)
	// Exactly one backend call; gomock fails the test on any other call.
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:staff").
		Return(nil, nil).
		Times(1)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "dept:staff")
	require.NoError(t, err)

	assert.False(t, result.IsMember)
	assert.Contains(t, result.Message, "nobody")
	assert.Contains(t, result.Message, "dept:staff")
	assert.Nil(t, result.Root)
}

func TestTrace_Immediate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "banderson"}
	group := grouper.Group{Name: "dept:staff", DisplayName: "Staff"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:staff").
		Return(membershipFact(subject, group, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "dept:staff")
	require.NoError(t, err)

	require.True(t, result.IsMember)
	assert.Equal(t, grouper.MembershipImmediate, result.MembershipType)

	hops := Flatten(result.Root)
	require.Len(t, hops, 1)
	assert.Equal(t, "dept:staff", hops[0].Group)
	assert.Equal(t, string(KindImmediate), hops[0].MembershipType)
}

func TestTrace_EffectiveWithIntermediate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "banderson"}
	target := grouper.Group{Name: "dept:all", DisplayName: "Everyone"}
	intermediate := grouper.Group{Name: "dept:staff", DisplayName: "Staff"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:all").
		Return(membershipFact(subject, target, grouper.MembershipEffective), nil)
	reader.EXPECT().
		GetImmediateMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"dept:staff": {}, "other:group": {}}, nil)
	reader.EXPECT().
		GetImmediateGroupMembers(gomock.Any(), "dept:all").
		Return([]grouper.Group{intermediate}, nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:staff").
		Return(membershipFact(subject, intermediate, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "dept:all")
	require.NoError(t, err)
	require.True(t, result.IsMember)

	hops := Flatten(result.Root)
	require.Len(t, hops, 2)
	assert.Equal(t, "dept:staff", hops[0].Group)
	assert.Equal(t, string(KindImmediate), hops[0].MembershipType)
	assert.Equal(t, "dept:all", hops[1].Group)
	assert.Equal(t, string(KindEffective), hops[1].MembershipType)
	assert.Equal(t, "dept:staff", hops[1].ViaGroup)
}

func TestTrace_EffectiveFirstIntersectionWins(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "banderson"}
	target := grouper.Group{Name: "dept:all"}

	// Two of the target's group members intersect the subject's immediate
	// memberships; the first in backend member order wins.
	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:all").
		Return(membershipFact(subject, target, grouper.MembershipEffective), nil)
	reader.EXPECT().
		GetImmediateMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"dept:it": {}, "dept:hr": {}}, nil)
	reader.EXPECT().
		GetImmediateGroupMembers(gomock.Any(), "dept:all").
		Return([]grouper.Group{
			{Name: "dept:finance"},
			{Name: "dept:hr"},
			{Name: "dept:it"},
		}, nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:hr").
		Return(membershipFact(subject, grouper.Group{Name: "dept:hr"}, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "dept:all")
	require.NoError(t, err)

	effective, ok := result.Root.(*EffectiveNode)
	require.True(t, ok)
	require.NotNil(t, effective.Intermediate)
	assert.Equal(t, "dept:hr", effective.Intermediate.Name)
}

func TestTrace_EffectiveEmptyIntersection(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "banderson"}
	target := grouper.Group{Name: "dept:all"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:all").
		Return(membershipFact(subject, target, grouper.MembershipEffective), nil)
	reader.EXPECT().
		GetImmediateMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"dept:it:oncall": {}}, nil)
	reader.EXPECT().
		GetImmediateGroupMembers(gomock.Any(), "dept:all").
		Return([]grouper.Group{{Name: "dept:it"}, {Name: "dept:hr"}}, nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "dept:all")
	require.NoError(t, err)

	effective, ok := result.Root.(*EffectiveNode)
	require.True(t, ok)
	assert.Nil(t, effective.Chain)
	assert.Nil(t, effective.Intermediate)
	assert.Equal(t, 1, effective.SubjectImmediateGroupCount)
	assert.Equal(t, 2, effective.TargetImmediateGroupMemberCount)

	// The flattener produces exactly one hop carrying the counts.
	hops := Flatten(result.Root)
	require.Len(t, hops, 1)
	assert.NotEmpty(t, hops[0].Note)
	require.NotNil(t, hops[0].SubjectImmediateGroupCount)
	require.NotNil(t, hops[0].TargetImmediateGroupMemberCount)
	assert.Equal(t, 1, *hops[0].SubjectImmediateGroupCount)
	assert.Equal(t, 2, *hops[0].TargetImmediateGroupMemberCount)
}

func compositeFact(subject grouper.Subject, group grouper.Group, compositeType grouper.CompositeType, left, right grouper.Group) *grouper.Membership {
	fact := membershipFact(subject, group, grouper.MembershipComposite)
	fact.Detail = &grouper.GroupDetail{
		HasComposite:  true,
		CompositeType: compositeType,
		Left:          &left,
		Right:         &right,
	}
	return fact
}

func TestTrace_CompositeComplement(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "testuser"}
	target := grouper.Group{Name: "test:authorized", DisplayName: "Authorized"}
	left := grouper.Group{Name: "test:eligible", DisplayName: "Eligible"}
	right := grouper.Group{Name: "test:unauthorized", DisplayName: "Unauthorized"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:authorized").
		Return(compositeFact(subject, target, grouper.CompositeComplement, left, right), nil)
	reader.EXPECT().
		GetAllMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"test:authorized": {}, "test:eligible": {}}, nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:eligible").
		Return(membershipFact(subject, left, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "test:authorized")
	require.NoError(t, err)
	require.True(t, result.IsMember)
	assert.Equal(t, grouper.MembershipComposite, result.MembershipType)

	composite, ok := result.Root.(*CompositeNode)
	require.True(t, ok)
	assert.True(t, composite.Left.IsMember)
	assert.NotNil(t, composite.Left.Chain)
	assert.False(t, composite.Right.IsMember)
	// Right-branch membership is irrelevant to explaining presence in a
	// complement; it is never traced.
	assert.Nil(t, composite.Right.Chain)

	hops := Flatten(result.Root)
	require.Len(t, hops, 2)
	assert.Equal(t, "test:eligible", hops[0].Group)

	summary := hops[len(hops)-1]
	assert.Equal(t, string(KindComposite), summary.MembershipType)
	assert.Equal(t, string(grouper.CompositeComplement), summary.CompositeType)
	require.NotNil(t, summary.LeftGroup)
	require.NotNil(t, summary.RightGroup)
	assert.True(t, summary.LeftGroup.IsMember)
	assert.False(t, summary.RightGroup.IsMember)
	assert.True(t, summary.PathThroughLeftGroup)
	assert.False(t, summary.PathThroughRightGroup)
}

func TestTrace_CompositeComplement_RightMemberNotTraced(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "testuser"}
	target := grouper.Group{Name: "test:authorized"}
	left := grouper.Group{Name: "test:eligible"}
	right := grouper.Group{Name: "test:unauthorized"}

	// Subject is in both constituents. The right branch records IsMember
	// but is not traced for a complement.
	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:authorized").
		Return(compositeFact(subject, target, grouper.CompositeComplement, left, right), nil)
	reader.EXPECT().
		GetAllMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"test:eligible": {}, "test:unauthorized": {}}, nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:eligible").
		Return(membershipFact(subject, left, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "test:authorized")
	require.NoError(t, err)

	composite := result.Root.(*CompositeNode)
	assert.True(t, composite.Right.IsMember)
	assert.Nil(t, composite.Right.Chain)
}

func TestTrace_CompositeIntersection(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "testuser"}
	target := grouper.Group{Name: "test:both"}
	left := grouper.Group{Name: "test:a"}
	right := grouper.Group{Name: "test:b"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:both").
		Return(compositeFact(subject, target, grouper.CompositeIntersection, left, right), nil)
	reader.EXPECT().
		GetAllMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"test:a": {}, "test:b": {}}, nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:a").
		Return(membershipFact(subject, left, grouper.MembershipImmediate), nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:b").
		Return(membershipFact(subject, right, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "test:both")
	require.NoError(t, err)

	composite := result.Root.(*CompositeNode)
	assert.NotNil(t, composite.Left.Chain)
	assert.NotNil(t, composite.Right.Chain)

	// Left branch hops precede right branch hops, summary hop last.
	hops := Flatten(result.Root)
	require.Len(t, hops, 3)
	assert.Equal(t, "test:a", hops[0].Group)
	assert.Equal(t, "test:b", hops[1].Group)
	assert.Equal(t, "test:both", hops[2].Group)
}

func TestTrace_CompositeUnion_RightOnly(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "testuser"}
	target := grouper.Group{Name: "test:either"}
	left := grouper.Group{Name: "test:a"}
	right := grouper.Group{Name: "test:b"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:either").
		Return(compositeFact(subject, target, grouper.CompositeUnion, left, right), nil)
	reader.EXPECT().
		GetAllMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"test:b": {}}, nil)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:b").
		Return(membershipFact(subject, right, grouper.MembershipImmediate), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "test:either")
	require.NoError(t, err)

	composite := result.Root.(*CompositeNode)
	assert.False(t, composite.Left.IsMember)
	assert.Nil(t, composite.Left.Chain)
	assert.True(t, composite.Right.IsMember)
	assert.NotNil(t, composite.Right.Chain)
}

func TestTrace_CompositeWithoutDetail(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "testuser"}
	target := grouper.Group{Name: "test:broken"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "test:broken").
		Return(membershipFact(subject, target, grouper.MembershipComposite), nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "test:broken")
	require.NoError(t, err)

	unknown, ok := result.Root.(*UnknownNode)
	require.True(t, ok)
	assert.Contains(t, unknown.Description, "composite group definition")
}

func TestTrace_UnknownMembershipType(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "x"}
	target := grouper.Group{Name: "a:b"}
	fact := membershipFact(subject, target, grouper.MembershipUnknown)
	fact.RawType = "NonImmediate"

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "a:b").
		Return(fact, nil)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "a:b")
	require.NoError(t, err)

	unknown, ok := result.Root.(*UnknownNode)
	require.True(t, ok)
	assert.Equal(t, "NonImmediate", unknown.RawType)

	hops := Flatten(result.Root)
	require.Len(t, hops, 1)
	assert.Equal(t, string(KindUnknown), hops[0].MembershipType)
	assert.Equal(t, "NonImmediate", hops[0].RawType)
}

// levelGroup returns "app:levelN" and levelIndex parses it back.
func levelGroup(n int) string {
	return fmt.Sprintf("app:level%d", n)
}

func levelIndex(name string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(name, "app:level"))
	return n
}

func TestTrace_MaxDepthTerminates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "x"}

	// A synthetic backend where every group is an effective member of a
	// fresh, distinct intermediate. The trace must stop at the depth
	// bound, not follow the chain forever.
	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, gomock.Any()).
		DoAndReturn(func(_ context.Context, s grouper.Subject, groupName string) (*grouper.Membership, error) {
			return membershipFact(s, grouper.Group{Name: groupName}, grouper.MembershipEffective), nil
		}).
		AnyTimes()
	reader.EXPECT().
		GetImmediateMemberships(gomock.Any(), subject).
		DoAndReturn(func(context.Context, grouper.Subject) (grouper.GroupNameSet, error) {
			all := make(grouper.GroupNameSet, 64)
			for i := 0; i < 64; i++ {
				all.Add(levelGroup(i))
			}
			return all, nil
		}).
		AnyTimes()
	reader.EXPECT().
		GetImmediateGroupMembers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, groupName string) ([]grouper.Group, error) {
			next := levelGroup(levelIndex(groupName) + 1)
			return []grouper.Group{{Name: next}}, nil
		}).
		AnyTimes()

	result, err := NewTracer(reader).Trace(context.Background(), subject, levelGroup(0))
	require.NoError(t, err)
	require.True(t, result.IsMember)

	// Walk the chain: every non-terminal node is effective, the terminal
	// node reports the depth bound, and the chain length never exceeds
	// the bound.
	depth := 0
	node := result.Root
	for {
		effective, ok := node.(*EffectiveNode)
		if !ok {
			break
		}
		require.NotNil(t, effective.Chain)
		node = effective.Chain
		depth++
		require.LessOrEqual(t, depth, MaxDepth+1, "chain exceeded the depth bound")
	}

	terminal, ok := node.(*MaxDepthNode)
	require.True(t, ok, "expected a max_depth_reached terminal, got %T", node)
	assert.Contains(t, terminal.Description, "maximum depth")

	hops := Flatten(result.Root)
	assert.Equal(t, string(KindMaxDepth), hops[0].MembershipType, "deepest evidence comes first")
}

func TestTrace_CycleDetected(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "x"}

	// ring1 and ring2 are effective members of each other.
	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, gomock.Any()).
		DoAndReturn(func(_ context.Context, s grouper.Subject, groupName string) (*grouper.Membership, error) {
			return membershipFact(s, grouper.Group{Name: groupName}, grouper.MembershipEffective), nil
		}).
		AnyTimes()
	reader.EXPECT().
		GetImmediateMemberships(gomock.Any(), subject).
		Return(grouper.GroupNameSet{"a:ring1": {}, "a:ring2": {}}, nil).
		AnyTimes()
	reader.EXPECT().
		GetImmediateGroupMembers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, groupName string) ([]grouper.Group, error) {
			if groupName == "a:ring1" {
				return []grouper.Group{{Name: "a:ring2"}}, nil
			}
			return []grouper.Group{{Name: "a:ring1"}}, nil
		}).
		AnyTimes()

	result, err := NewTracer(reader).Trace(context.Background(), subject, "a:ring1")
	require.NoError(t, err)

	outer, ok := result.Root.(*EffectiveNode)
	require.True(t, ok)
	inner, ok := outer.Chain.(*EffectiveNode)
	require.True(t, ok)

	terminal, ok := inner.Chain.(*CycleNode)
	require.True(t, ok, "expected a cycle_detected terminal, got %T", inner.Chain)
	assert.Equal(t, "a:ring1", terminal.GroupName)
}

func TestTrace_BackendErrorAbortsTrace(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	subject := grouper.Subject{ID: "x"}
	target := grouper.Group{Name: "dept:all"}

	reader := mocks.NewMockMembershipReader(ctrl)
	reader.EXPECT().
		GetMembership(gomock.Any(), subject, "dept:all").
		Return(membershipFact(subject, target, grouper.MembershipEffective), nil)
	reader.EXPECT().
		GetImmediateMemberships(gomock.Any(), subject).
		Return(nil, assert.AnError)

	result, err := NewTracer(reader).Trace(context.Background(), subject, "dept:all")
	require.Error(t, err)
	assert.Nil(t, result, "no partial result on failure")
}

func TestVisitedSet_BranchIsolation(t *testing.T) {
	t.Parallel()

	base := visitedSet{"root": {}}
	left := base.with("left")
	right := base.with("right")

	assert.True(t, left.has("left"))
	assert.False(t, left.has("right"))
	assert.True(t, right.has("right"))
	assert.False(t, right.has("left"))
	assert.False(t, base.has("left"), "with() must not mutate the receiver")

	cloned := base.clone()
	cloned["extra"] = struct{}{}
	assert.False(t, base.has("extra"))
}
