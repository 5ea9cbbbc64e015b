package matching_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhorn/matching"
	"github.com/katalvlaran/longhorn/student"
)

func mk(name string, prefs ...string) *student.Student {
	return student.New(name, 20, "X", 1, "Undeclared", 3.0, prefs, nil)
}

// requireSymmetric asserts the roommate relation is symmetric and one-to-one.
func requireSymmetric(t *testing.T, students []*student.Student) {
	t.Helper()
	byName := make(map[string]*student.Student, len(students))
	for _, s := range students {
		byName[s.Name] = s
	}
	taken := make(map[string]string)
	for _, s := range students {
		if !s.HasRoommate() {
			continue
		}
		mate, ok := byName[s.Roommate()]
		require.True(t, ok, "%s matched to unknown %q", s.Name, s.Roommate())
		require.Equal(t, s.Name, mate.Roommate(), "%s -> %s is not symmetric", s.Name, mate.Name)
		require.NotEqual(t, s.Name, mate.Name)
		if prev, dup := taken[mate.Name]; dup {
			require.Equal(t, s.Name, prev, "%s claimed twice", mate.Name)
		}
		taken[mate.Name] = s.Name
	}
}

func TestAssign_TwoClusters(t *testing.T) {
	students := []*student.Student{
		mk("Alice", "Bob", "Charlie", "Frank"),
		mk("Bob", "Alice", "Charlie", "Frank"),
		mk("Charlie", "Alice", "Bob", "Frank"),
		mk("Frank", "Alice", "Bob", "Charlie"),
		mk("Dana", "Evan"),
		mk("Evan", "Dana"),
	}
	res, err := matching.Assign(students)
	require.NoError(t, err)
	requireSymmetric(t, students)

	assert.Equal(t, []matching.Pair{
		{A: "Alice", B: "Bob"},
		{A: "Charlie", B: "Frank"},
		{A: "Dana", B: "Evan"},
	}, res.Pairs)
	assert.Empty(t, res.Unmatched)
}

func TestAssign_ThreeWayCycleLeavesOneOut(t *testing.T) {
	a := mk("A", "B", "C")
	b := mk("B", "C", "A")
	c := mk("C", "A", "B")
	students := []*student.Student{a, b, c}

	var breaks []string
	res, err := matching.Assign(students, matching.WithOnBreak(func(target, dropped string) {
		breaks = append(breaks, fmt.Sprintf("%s drops %s", target, dropped))
	}))
	require.NoError(t, err)
	requireSymmetric(t, students)

	require.Len(t, res.Pairs, 1)
	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, matching.Pair{A: "A", B: "B"}, res.Pairs[0])
	assert.Equal(t, []string{"C"}, res.Unmatched)
	assert.Equal(t, []string{"B drops A", "C drops B", "A drops C"}, breaks)
}

func TestAssign_OneSidedAndEmptyLists(t *testing.T) {
	// Leo ranks nobody but can still be chosen.
	jack := mk("Jack", "Kim")
	kim := mk("Kim", "Jack")
	leo := mk("Leo")
	students := []*student.Student{jack, kim, leo}

	res, err := matching.Assign(students)
	require.NoError(t, err)
	requireSymmetric(t, students)
	assert.Equal(t, "Kim", jack.Roommate())
	assert.Equal(t, []string{"Leo"}, res.Unmatched)

	// Passive student matched as a side effect of being proposed to.
	p := mk("P", "Q")
	q := mk("Q")
	_, err = matching.Assign([]*student.Student{p, q})
	require.NoError(t, err)
	assert.Equal(t, "Q", p.Roommate())
	assert.Equal(t, "P", q.Roommate())
}

func TestAssign_UnknownNamesAreSkipped(t *testing.T) {
	x := mk("X", "Ghost", "Phantom", "Y")
	y := mk("Y", "Nobody")
	var proposals []string
	res, err := matching.Assign([]*student.Student{x, y}, matching.WithOnPropose(func(p, tgt string) {
		proposals = append(proposals, p+">"+tgt)
	}))
	require.NoError(t, err)
	assert.Equal(t, "Y", x.Roommate())
	assert.Equal(t, "X", y.Roommate())
	assert.Equal(t, []string{"X>Y"}, proposals)
	assert.Equal(t, 1, res.Proposals)
}

func TestAssign_BlankPreferenceSkipped(t *testing.T) {
	c := mk("C", "", "D")
	d := mk("D")
	var proposals []string
	res, err := matching.Assign([]*student.Student{c, d}, matching.WithOnPropose(func(p, tgt string) {
		proposals = append(proposals, p+">"+tgt)
	}))
	require.NoError(t, err)
	assert.Equal(t, "D", c.Roommate())
	assert.Equal(t, "C", d.Roommate())
	assert.Equal(t, []string{"C>D"}, proposals)
	assert.Empty(t, res.Unmatched)
}

func TestAssign_SelfPreferenceIgnored(t *testing.T) {
	s := mk("Narcissus", "Narcissus")
	res, err := matching.Assign([]*student.Student{s})
	require.NoError(t, err)
	assert.False(t, s.HasRoommate())
	assert.Equal(t, []string{"Narcissus"}, res.Unmatched)
}

func TestAssign_ClearsPreviousRun(t *testing.T) {
	a := mk("A", "B")
	b := mk("B", "A")
	c := mk("C")
	a.SetRoommate("C")
	c.SetRoommate("A")

	_, err := matching.Assign([]*student.Student{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, "B", a.Roommate())
	assert.False(t, c.HasRoommate())
}

func TestAssign_Errors(t *testing.T) {
	_, err := matching.Assign([]*student.Student{mk("A"), nil})
	require.ErrorIs(t, err, matching.ErrNilStudent)

	_, err = matching.Assign([]*student.Student{mk("A"), mk("A")})
	require.ErrorIs(t, err, matching.ErrDuplicateName)

	res, err := matching.Assign(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	assert.Empty(t, res.Unmatched)
}

func TestPrefers_TieBreak(t *testing.T) {
	target := mk("T", "A", "B")
	assert.True(t, matching.Prefers(target, "A", "B"), "both ranked, lower index wins")
	assert.False(t, matching.Prefers(target, "B", "A"))
	assert.True(t, matching.Prefers(target, "B", "Z"), "only current absent")
	assert.False(t, matching.Prefers(target, "Z", "A"), "only candidate absent")
	assert.False(t, matching.Prefers(target, "Y", "Z"), "both absent keeps current")
}

// TestAssign_RandomTerminatesSymmetric runs random one-sided preference
// lists, including unknown names, and checks the output contract.
func TestAssign_RandomTerminatesSymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 2 + r.Intn(12)
		students := make([]*student.Student, n)
		for i := range students {
			var prefs []string
			for k := r.Intn(n + 2); k > 0; k-- {
				j := r.Intn(n + 3) // indexes ≥ n name unknown students
				prefs = append(prefs, fmt.Sprintf("S%d", j))
			}
			students[i] = mk(fmt.Sprintf("S%d", i), prefs...)
		}
		res, err := matching.Assign(students)
		require.NoError(t, err)
		requireSymmetric(t, students)
		assert.Equal(t, n, 2*len(res.Pairs)+len(res.Unmatched))
	}
}
