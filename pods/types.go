package pods

import "errors"

var (
	// ErrNilGraph is returned when Form receives a nil graph.
	ErrNilGraph = errors.New("pods: graph is nil")

	// ErrBadPodSize is returned when the requested pod size is below 1.
	ErrBadPodSize = errors.New("pods: pod size must be at least 1")
)

// Pod is one group of students.
type Pod struct {
	// Members are student names in graph order.
	Members []string `json:"members"`

	// Strength is the total weight of the connections that formed the pod.
	Strength int64 `json:"strength"`
}

// Size returns the number of members.
func (p Pod) Size() int { return len(p.Members) }
