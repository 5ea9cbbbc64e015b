package social

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/longhorn/student"
)

// TaskKind selects what a Task does.
type TaskKind int

const (
	// KindFriendRequest makes From and To friends.
	KindFriendRequest TaskKind = iota + 1

	// KindChat sends Text from From to To.
	KindChat
)

// String returns the kind name used in logs.
func (k TaskKind) String() string {
	switch k {
	case KindFriendRequest:
		return "friend_request"
	case KindChat:
		return "chat"
	default:
		return fmt.Sprintf("TaskKind(%d)", int(k))
	}
}

// Task is one unit of social activity.
type Task struct {
	Kind TaskKind
	From *student.Student
	To   *student.Student
	Text string
}

// FriendRequest returns a task making from and to friends.
func FriendRequest(from, to *student.Student) Task {
	return Task{Kind: KindFriendRequest, From: from, To: to}
}

// Chat returns a task sending text from from to to.
func Chat(from, to *student.Student, text string) Task {
	return Task{Kind: KindChat, From: from, To: to, Text: text}
}

// Do executes a single task.
func (h *Hub) Do(t Task) error {
	switch t.Kind {
	case KindFriendRequest:
		_, err := h.SendFriendRequest(t.From, t.To)
		return err
	case KindChat:
		_, err := h.SendMessage(t.From, t.To, t.Text)
		return err
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTask, int(t.Kind))
	}
}

// Run executes tasks on at most workers goroutines (minimum 1) and waits
// for all of them. The first failing task cancels the tasks not yet started;
// its error is returned wrapped with the task index and kind. A cancelled
// ctx stops tasks not yet started and its error is returned.
func (h *Hub) Run(ctx context.Context, tasks []Task, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, t := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := h.Do(t); err != nil {
				return fmt.Errorf("social: task %d (%s): %w", i, t.Kind, err)
			}

			return nil
		})
	}

	return g.Wait()
}
