package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/longhorn/pods"
	"github.com/katalvlaran/longhorn/referral"
	"github.com/katalvlaran/longhorn/session"
	"github.com/katalvlaran/longhorn/social"
	"github.com/katalvlaran/longhorn/student"
)

func str(s string) *string { return &s }

func TestQueriesBeforeLoad(t *testing.T) {
	s := session.New()
	_, err := s.Current()
	require.ErrorIs(t, err, session.ErrNotLoaded)
	_, err = s.Graph()
	require.ErrorIs(t, err, session.ErrNotLoaded)
	_, err = s.Roommates()
	require.ErrorIs(t, err, session.ErrNotLoaded)
	_, err = s.Referral("Alice", "Google")
	require.ErrorIs(t, err, session.ErrNotLoaded)
	_, err = s.Student("Alice")
	require.ErrorIs(t, err, session.ErrNotLoaded)
	_, err = s.Students()
	require.ErrorIs(t, err, session.ErrNotLoaded)
	_, err = s.Pods(2)
	require.ErrorIs(t, err, session.ErrNotLoaded)
}

func TestCases(t *testing.T) {
	cases := session.Cases()
	require.Len(t, cases, 3)
	assert.Equal(t, session.CaseInfo{ID: 2, Name: "Test Case 2", Description: "3 students, DummyCompany referral"}, cases[1])

	_, ok := session.CaseStudents(0)
	assert.False(t, ok)
	a, ok := session.CaseStudents(1)
	require.True(t, ok)
	b, _ := session.CaseStudents(1)
	assert.NotSame(t, a[0], b[0], "every call returns fresh records")

	_, err := session.New().LoadCase(context.Background(), 4)
	require.ErrorIs(t, err, session.ErrUnknownCase)
}

func TestSeedTasks(t *testing.T) {
	one, _ := session.CaseStudents(1)
	assert.Empty(t, session.SeedTasks(one[:1]))
	assert.Len(t, session.SeedTasks(one[:2]), 2)
	tasks := session.SeedTasks(one)
	require.Len(t, tasks, 4)
	assert.Equal(t, social.Chat(one[1], one[2], "Hi there!"), tasks[3])
}

// CaseOneSuite runs queries against the two-cluster population.
type CaseOneSuite struct {
	suite.Suite
	s    *session.Session
	info session.LoadInfo
}

func (cs *CaseOneSuite) SetupTest() {
	cs.s = session.New()
	info, err := cs.s.LoadCase(context.Background(), 1)
	cs.Require().NoError(err)
	cs.info = info
}

func (cs *CaseOneSuite) TestLoadInfo() {
	cs.Len(cs.info.ID, 36)
	cs.Equal("case 1", cs.info.Source)
	cs.Equal(1, cs.info.Case)
	cs.Equal(6, cs.info.Students)
	cs.Equal(4, cs.info.Edges)
	cs.Equal(3, cs.info.Pairs)
	cs.Empty(cs.info.Unmatched)

	cur, err := cs.s.Current()
	cs.Require().NoError(err)
	cs.Equal(cs.info, cur)
}

func (cs *CaseOneSuite) TestGraphIncludesRoommateBonus() {
	g, err := cs.s.Graph()
	cs.Require().NoError(err)
	cs.Require().Len(g.Nodes, 6)
	cs.Equal(session.NodeView{ID: "Alice", Label: "Alice", Major: "Computer Science", Age: 20, Year: 2, GPA: 3.5}, g.Nodes[0])
	cs.Equal([]session.EdgeView{
		{From: "Alice", To: "Bob", Weight: 9, Label: "9"},
		{From: "Alice", To: "Charlie", Weight: 1, Label: "1"},
		{From: "Charlie", To: "Frank", Weight: 4, Label: "4"},
		{From: "Dana", To: "Evan", Weight: 10, Label: "10"},
	}, g.Edges)
	cs.Equal([][]string{{"Alice", "Bob", "Charlie", "Frank"}, {"Dana", "Evan"}}, g.Groups)
}

func (cs *CaseOneSuite) TestRoommates() {
	rm, err := cs.s.Roommates()
	cs.Require().NoError(err)
	cs.Equal([]session.RoommateView{
		{Student: "Alice", Roommate: str("Bob")},
		{Student: "Bob", Roommate: str("Alice")},
		{Student: "Charlie", Roommate: str("Frank")},
		{Student: "Frank", Roommate: str("Charlie")},
		{Student: "Dana", Roommate: str("Evan")},
		{Student: "Evan", Roommate: str("Dana")},
	}, rm)
}

func (cs *CaseOneSuite) TestReferral() {
	r, err := cs.s.Referral("Frank", "Google")
	cs.Require().NoError(err)
	cs.Equal(session.ReferralView{Start: "Frank", Company: "Google", Found: true, Path: []string{"Frank", "Charlie", "Alice"}}, r)

	r, err = cs.s.Referral("Dana", "Google")
	cs.Require().NoError(err)
	cs.False(r.Found)
	cs.NotNil(r.Path)
	cs.Empty(r.Path)

	r, err = cs.s.Referral("Bob", "Microsoft")
	cs.Require().NoError(err)
	cs.Equal([]string{"Bob"}, r.Path)

	_, err = cs.s.Referral("Zed", "Google")
	cs.Require().ErrorIs(err, session.ErrUnknownStudent)
}

func (cs *CaseOneSuite) TestStudentDetail() {
	bob, err := cs.s.Student("Bob")
	cs.Require().NoError(err)
	cs.Equal("Bob", bob.Name)
	cs.Equal(str("Alice"), bob.Roommate)
	cs.Equal([]string{"Google", "Microsoft"}, bob.PreviousInternships)
	cs.ElementsMatch([]string{"Alice", "Charlie"}, bob.Friends)
	cs.ElementsMatch([]string{"Alice -> Bob: Hello!", "Bob -> Charlie: Hi there!"}, bob.ChatHistory)

	frank, err := cs.s.Student("Frank")
	cs.Require().NoError(err)
	cs.Empty(frank.Friends)
	cs.Empty(frank.ChatHistory)
	cs.NotNil(frank.PreviousInternships)

	_, err = cs.s.Student("Zed")
	cs.Require().ErrorIs(err, session.ErrUnknownStudent)

	all, err := cs.s.Students()
	cs.Require().NoError(err)
	cs.Require().Len(all, 6)
	cs.Equal("Evan", all[5].Name)
}

func (cs *CaseOneSuite) TestPods() {
	got, err := cs.s.Pods(2)
	cs.Require().NoError(err)
	cs.Equal([]pods.Pod{
		{Members: []string{"Alice", "Bob"}, Strength: 9},
		{Members: []string{"Charlie", "Frank"}, Strength: 4},
		{Members: []string{"Dana", "Evan"}, Strength: 10},
	}, got)

	_, err = cs.s.Pods(0)
	cs.Require().ErrorIs(err, pods.ErrBadPodSize)
}

func (cs *CaseOneSuite) TestFailedLoadKeepsPrevious() {
	dup := []*student.Student{
		student.New("A", 20, "F", 1, "Art", 3, nil, nil),
		student.New("A", 21, "F", 1, "Art", 3, nil, nil),
	}
	_, err := cs.s.Load(context.Background(), dup)
	cs.Require().ErrorIs(err, student.ErrDuplicateName)

	_, err = cs.s.Load(context.Background(), nil)
	cs.Require().Error(err)

	cur, err := cs.s.Current()
	cs.Require().NoError(err)
	cs.Equal(cs.info.ID, cur.ID)
}

func TestCaseOneSuite(t *testing.T) {
	suite.Run(t, new(CaseOneSuite))
}

func TestLoadCase_TwoAndThree(t *testing.T) {
	s := session.New()
	ctx := context.Background()

	_, err := s.LoadCase(ctx, 2)
	require.NoError(t, err)
	r, err := s.Referral("Greg", "DummyCompany")
	require.NoError(t, err)
	assert.Equal(t, []string{"Greg", "Ivy"}, r.Path)

	info, err := s.LoadCase(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Leo"}, info.Unmatched)
	r, err = s.Referral("Leo", "MuseumIntern")
	require.NoError(t, err)
	assert.Equal(t, []string{"Leo", "Jack"}, r.Path)

	_, err = s.Student("Greg")
	require.ErrorIs(t, err, session.ErrUnknownStudent, "case 2 was replaced")
}

func TestLoad_CopiesInput(t *testing.T) {
	a := student.New("A", 20, "F", 1, "Art", 3, []string{"B"}, nil)
	b := student.New("B", 20, "M", 1, "Art", 3, []string{"A"}, nil)
	s := session.New()

	_, err := s.Load(context.Background(), []*student.Student{a, b}, social.FriendRequest(a, b))
	require.NoError(t, err)
	assert.False(t, a.HasRoommate(), "caller records are not mutated")
	assert.Empty(t, a.Friends())

	v, err := s.Student("A")
	require.NoError(t, err)
	assert.Equal(t, str("B"), v.Roommate)
	assert.Equal(t, []string{"B"}, v.Friends)
}

func TestLoad_AcceptsUncheckedAttributes(t *testing.T) {
	c := student.New("C", 20, "F", 1, "Art", 7.5, []string{"", "D"}, nil)
	d := student.New("D", -1, "M", 1, "Art", 3, nil, nil)
	s := session.New()

	info, err := s.Load(context.Background(), []*student.Student{c, d})
	require.NoError(t, err)
	assert.Equal(t, 2, info.Students)
	assert.Equal(t, 1, info.Pairs)

	v, err := s.Student("C")
	require.NoError(t, err)
	assert.Equal(t, str("D"), v.Roommate)
}

func TestLoad_Errors(t *testing.T) {
	a := student.New("A", 20, "F", 1, "Art", 3, nil, nil)
	ghost := student.New("Ghost", 20, "F", 1, "Art", 3, nil, nil)
	s := session.New()

	_, err := s.Load(context.Background(), []*student.Student{a}, social.FriendRequest(a, ghost))
	require.ErrorIs(t, err, session.ErrUnknownStudent)

	_, err = s.Load(context.Background(), []*student.Student{a}, social.Chat(a, a, "hi"))
	require.ErrorIs(t, err, social.ErrSelfRequest)

	bad := session.New(session.WithReferralOptions(referral.WithMinCost(0)))
	_, err = bad.LoadCase(context.Background(), 1)
	require.ErrorIs(t, err, referral.ErrBadMinCost)

	_, err = s.Current()
	require.ErrorIs(t, err, session.ErrNotLoaded)
}

func TestLoad_CostBaseOption(t *testing.T) {
	// Charlie's only route to Google runs through Alice at any cost base.
	s := session.New(session.WithReferralOptions(referral.WithCostBase(100)))
	_, err := s.LoadCase(context.Background(), 1)
	require.NoError(t, err)
	r, err := s.Referral("Charlie", "Google")
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "Alice"}, r.Path)
}

func TestLoad_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := session.New(session.WithLogger(zap.New(core)), session.WithSocialWorkers(1))

	info, err := s.LoadCase(context.Background(), 1)
	require.NoError(t, err)
	loaded := logs.FilterMessage("population loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, info.ID, loaded[0].ContextMap()["load_id"])
	assert.Equal(t, "case 1", loaded[0].ContextMap()["source"])
	assert.Equal(t, 1, logs.FilterMessage("roommates assigned").Len())

	_, err = s.LoadCase(context.Background(), 9)
	require.Error(t, err)
	_, err = s.Load(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("load failed, keeping previous population").Len())
}

func TestConcurrentReadsDuringLoads(t *testing.T) {
	s := session.New()
	ctx := context.Background()
	_, err := s.LoadCase(ctx, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				g, err := s.Graph()
				if assert.NoError(t, err) {
					assert.Contains(t, []int{3, 6}, len(g.Nodes))
				}
				_, _ = s.Students()
				_, _ = s.Pods(2)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		_, err := s.LoadCase(ctx, 1+i%3)
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestLoad_LogsBrokenPairings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := session.New(session.WithLogger(zap.New(core)))
	cycle := []*student.Student{
		student.New("A", 20, "F", 1, "Art", 3, []string{"B", "C"}, nil),
		student.New("B", 20, "F", 1, "Art", 3, []string{"C", "A"}, nil),
		student.New("C", 20, "F", 1, "Art", 3, []string{"A", "B"}, nil),
	}
	info, err := s.Load(context.Background(), cycle)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, info.Unmatched)

	broken := logs.FilterMessage("roommate pairing broken").All()
	require.Len(t, broken, 3)
	assert.Equal(t, "B", broken[0].ContextMap()["target"])
	assert.Equal(t, "A", broken[0].ContextMap()["dropped"])
}
