package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhorn/network"
	"github.com/katalvlaran/longhorn/student"
)

func TestComponents(t *testing.T) {
	g, err := network.Build(sixStudents())
	require.NoError(t, err)

	// Frank shares nothing with anyone before roommates are assigned.
	assert.Equal(t, [][]string{
		{"Alice", "Bob", "Charlie"},
		{"Frank"},
		{"Dana", "Evan"},
	}, g.Components())

	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, g.Reachable("Charlie"))
	assert.Equal(t, []string{"Frank"}, g.Reachable("Frank"))
	assert.Nil(t, g.Reachable("Zed"))
}

func TestComponents_RoommateJoinsGroups(t *testing.T) {
	students := sixStudents()
	students[2].SetRoommate("Frank") // Charlie
	students[3].SetRoommate("Charlie")
	g, err := network.Build(students)
	require.NoError(t, err)

	groups := g.Components()
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie", "Frank"}, groups[0])
	assert.Equal(t, []string{"Dana", "Evan"}, groups[1])
}

func TestComponents_Isolated(t *testing.T) {
	g, err := network.Build([]*student.Student{
		student.New("A", 19, "F", 1, "Art", 3, nil, nil),
		student.New("B", 30, "M", 1, "Law", 3, nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, g.Components())
}
