package social

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/longhorn/student"
)

// Hub serializes relationship updates for one population.
type Hub struct {
	mu   sync.Mutex
	opts Options
}

// NewHub returns a Hub configured by opts.
func NewHub(opts ...Option) *Hub {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Hub{opts: o}
}

// SendFriendRequest makes from and to friends of each other. Repeating a
// request is a no-op; the returned bool reports whether anything changed.
func (h *Hub) SendFriendRequest(from, to *student.Student) (bool, error) {
	if err := checkPair(from, to); err != nil {
		return false, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	a := from.AddFriend(to.Name)
	b := to.AddFriend(from.Name)

	return a || b, nil
}

// SendMessage records text in both students' chat logs and returns the message.
func (h *Hub) SendMessage(from, to *student.Student, text string) (student.Message, error) {
	if err := checkPair(from, to); err != nil {
		return student.Message{}, err
	}
	if strings.TrimSpace(text) == "" {
		return student.Message{}, ErrEmptyMessage
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	m := student.Message{
		ID:     h.opts.NewID(),
		From:   from.Name,
		To:     to.Name,
		Text:   text,
		SentAt: h.opts.Clock(),
	}
	from.AppendMessage(m)
	to.AppendMessage(m)

	return m, nil
}

// Friends returns a snapshot of s's friend list.
func (h *Hub) Friends(s *student.Student) []string {
	if s == nil {
		return []string{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	return s.Friends()
}

// Messages returns a snapshot of s's chat log.
func (h *Hub) Messages(s *student.Student) []student.Message {
	if s == nil {
		return []student.Message{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	return s.Messages()
}

func checkPair(from, to *student.Student) error {
	if from == nil || to == nil {
		return ErrNilStudent
	}
	if from == to || from.Name == to.Name {
		return fmt.Errorf("%w: %q", ErrSelfRequest, from.Name)
	}

	return nil
}
