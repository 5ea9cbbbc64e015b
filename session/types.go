package session

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/longhorn/referral"
)

// Sentinel errors returned by Session.
var (
	// ErrNotLoaded is returned by queries before the first successful load.
	ErrNotLoaded = errors.New("session: no population loaded")

	// ErrUnknownStudent is returned when a queried name is not in the population.
	ErrUnknownStudent = errors.New("session: unknown student")

	// ErrUnknownCase is returned by LoadCase for an id outside Cases().
	ErrUnknownCase = errors.New("session: unknown test case")
)

// Options configures a Session.
type Options struct {
	Logger        *zap.Logger
	SocialWorkers int
	Referral      []referral.Option
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSocialWorkers bounds the goroutines running social tasks during a load.
func WithSocialWorkers(n int) Option {
	return func(o *Options) {
		o.SocialWorkers = n
	}
}

// WithReferralOptions passes cost options to every referral search.
func WithReferralOptions(opts ...referral.Option) Option {
	return func(o *Options) {
		o.Referral = append(o.Referral, opts...)
	}
}

// DefaultOptions returns a silent session with four social workers.
func DefaultOptions() Options {
	return Options{
		Logger:        zap.NewNop(),
		SocialWorkers: 4,
	}
}

// CaseInfo describes a built-in test case.
type CaseInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadInfo describes the population currently loaded.
type LoadInfo struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Case      int       `json:"case,omitempty"`
	Students  int       `json:"students"`
	Edges     int       `json:"edges"`
	Pairs     int       `json:"pairs"`
	Unmatched []string  `json:"unmatched"`
	LoadedAt  time.Time `json:"loadedAt"`
}

// NodeView is one graph node with its display attributes.
type NodeView struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Major string  `json:"major"`
	Age   int     `json:"age"`
	Year  int     `json:"year"`
	GPA   float64 `json:"gpa"`
}

// EdgeView is one undirected connection, reported once.
type EdgeView struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
	Label  string `json:"label"`
}

// GraphView is the whole connection graph. Groups lists the connected
// components, each in breadth-first order from its first student.
type GraphView struct {
	Nodes  []NodeView `json:"nodes"`
	Edges  []EdgeView `json:"edges"`
	Groups [][]string `json:"groups"`
}

// RoommateView is one student's assignment; Roommate is nil when unmatched.
type RoommateView struct {
	Student  string  `json:"student"`
	Roommate *string `json:"roommate"`
}

// ReferralView is the result of a referral search.
type ReferralView struct {
	Start   string   `json:"start"`
	Company string   `json:"company"`
	Found   bool     `json:"found"`
	Path    []string `json:"path"`
}

// StudentView is the full detail of one student.
type StudentView struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	Year                int      `json:"year"`
	Major               string   `json:"major"`
	GPA                 float64  `json:"gpa"`
	RoommatePreferences []string `json:"roommatePreferences"`
	PreviousInternships []string `json:"previousInternships"`
	Roommate            *string  `json:"roommate"`
	Friends             []string `json:"friends"`
	ChatHistory         []string `json:"chatHistory"`
}
