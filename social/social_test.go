package social_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhorn/social"
	"github.com/katalvlaran/longhorn/student"
)

func mk(name string) *student.Student {
	return student.New(name, 20, "X", 1, "Art", 3, nil, nil)
}

func fixedHub() *social.Hub {
	at := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	n := 0

	return social.NewHub(
		social.WithClock(func() time.Time { return at }),
		social.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("m%d", n)
		}),
	)
}

func TestSendFriendRequest(t *testing.T) {
	h := social.NewHub()
	a, b := mk("A"), mk("B")

	changed, err := h.SendFriendRequest(a, b)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"B"}, h.Friends(a))
	assert.Equal(t, []string{"A"}, h.Friends(b))

	changed, err = h.SendFriendRequest(b, a)
	require.NoError(t, err)
	assert.False(t, changed, "already friends")
	assert.Len(t, h.Friends(a), 1)

	_, err = h.SendFriendRequest(a, nil)
	require.ErrorIs(t, err, social.ErrNilStudent)
	_, err = h.SendFriendRequest(a, a)
	require.ErrorIs(t, err, social.ErrSelfRequest)
	assert.Empty(t, h.Friends(nil))
}

func TestSendMessage(t *testing.T) {
	h := fixedHub()
	a, b := mk("A"), mk("B")

	m, err := h.SendMessage(a, b, "Hello!")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "A -> B: Hello!", m.String())
	assert.Equal(t, time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC), m.SentAt)

	assert.Equal(t, []student.Message{m}, h.Messages(a))
	assert.Equal(t, []student.Message{m}, h.Messages(b))

	_, err = h.SendMessage(a, b, "   ")
	require.ErrorIs(t, err, social.ErrEmptyMessage)
	_, err = h.SendMessage(nil, b, "x")
	require.ErrorIs(t, err, social.ErrNilStudent)
	_, err = h.SendMessage(a, mk("A"), "x")
	require.ErrorIs(t, err, social.ErrSelfRequest)
	assert.Len(t, h.Messages(a), 1)
}

func TestDefaultIDsAreUUIDs(t *testing.T) {
	h := social.NewHub()
	m1, err := h.SendMessage(mk("A"), mk("B"), "x")
	require.NoError(t, err)
	m2, err := h.SendMessage(mk("A"), mk("B"), "y")
	require.NoError(t, err)
	assert.Len(t, m1.ID, 36)
	assert.NotEqual(t, m1.ID, m2.ID)
}

func TestRun_SeedTasks(t *testing.T) {
	h := fixedHub()
	s := []*student.Student{mk("A"), mk("B"), mk("C")}
	tasks := []social.Task{
		social.FriendRequest(s[0], s[1]),
		social.Chat(s[0], s[1], "Hello!"),
		social.FriendRequest(s[1], s[2]),
		social.Chat(s[1], s[2], "Hi there!"),
	}
	require.NoError(t, h.Run(context.Background(), tasks, 4))

	assert.Equal(t, []string{"B"}, h.Friends(s[0]))
	assert.ElementsMatch(t, []string{"A", "C"}, h.Friends(s[1]))
	assert.Equal(t, []string{"B"}, h.Friends(s[2]))

	var texts []string
	for _, m := range h.Messages(s[1]) {
		texts = append(texts, m.String())
	}
	assert.ElementsMatch(t, []string{"A -> B: Hello!", "B -> C: Hi there!"}, texts)
}

func TestRun_ConcurrentChatsAllRecorded(t *testing.T) {
	h := social.NewHub()
	a, b := mk("A"), mk("B")
	const n = 200
	tasks := make([]social.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, social.Chat(a, b, fmt.Sprintf("msg %d", i)))
	}
	require.NoError(t, h.Run(context.Background(), tasks, 8))
	assert.Len(t, h.Messages(a), n)
	assert.Len(t, h.Messages(b), n)

	ids := make(map[string]bool, n)
	texts := make(map[string]bool, n)
	for _, m := range h.Messages(a) {
		ids[m.ID] = true
		texts[m.Text] = true
	}
	assert.Len(t, ids, n)
	assert.Len(t, texts, n, "each goroutine runs its own task")
}

func TestRun_Errors(t *testing.T) {
	h := social.NewHub()
	a := mk("A")

	err := h.Run(context.Background(), []social.Task{social.FriendRequest(a, a)}, 0)
	require.ErrorIs(t, err, social.ErrSelfRequest)
	assert.Contains(t, err.Error(), "task 0 (friend_request)")

	err = h.Run(context.Background(), []social.Task{{Kind: 99, From: a, To: mk("B")}}, 1)
	require.ErrorIs(t, err, social.ErrUnknownTask)

	err = h.Run(context.Background(), []social.Task{
		social.Chat(a, mk("B"), "ok"),
		social.Chat(a, mk("C"), "ok"),
		social.Chat(a, a, "echo"),
	}, 1)
	require.ErrorIs(t, err, social.ErrSelfRequest)
	assert.Contains(t, err.Error(), "task 2 (chat)")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := mk("B")
	err = h.Run(ctx, []social.Task{social.FriendRequest(a, b)}, 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.Friends(a))

	require.NoError(t, h.Run(context.Background(), nil, 3))
}

func TestTaskKind_String(t *testing.T) {
	assert.Equal(t, "friend_request", social.KindFriendRequest.String())
	assert.Equal(t, "chat", social.KindChat.String())
	assert.Equal(t, "TaskKind(7)", social.TaskKind(7).String())
}
