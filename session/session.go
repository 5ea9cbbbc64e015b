// Package session is the consumer facade over one loaded population.
//
// A load clones the given records, scores the connection graph, assigns
// roommates, applies social tasks and rescores the graph so roommate bonuses
// are visible. The finished state is published atomically; readers always
// see either the previous population or the new one, never a mix, and a
// failed load leaves the previous population in place.
package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/longhorn/matching"
	"github.com/katalvlaran/longhorn/network"
	"github.com/katalvlaran/longhorn/parser"
	"github.com/katalvlaran/longhorn/pods"
	"github.com/katalvlaran/longhorn/referral"
	"github.com/katalvlaran/longhorn/social"
	"github.com/katalvlaran/longhorn/student"
)

// Session owns the current population and answers queries about it.
// It is safe for concurrent use.
type Session struct {
	opts Options

	mu sync.RWMutex
	st *state
}

// state is one fully processed population. It is never mutated after
// publication except through hub, which locks on its own.
type state struct {
	info     LoadInfo
	students []*student.Student
	graph    *network.Graph
	finder   *referral.Finder
	hub      *social.Hub
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{opts: o}
}

// Load replaces the current population with copies of students. Tasks may
// refer to the given records or to any record with the same name.
func (s *Session) Load(ctx context.Context, students []*student.Student, tasks ...social.Task) (LoadInfo, error) {
	return s.load(ctx, "custom", 0, students, tasks)
}

// LoadCase loads built-in test case id with its seed tasks.
func (s *Session) LoadCase(ctx context.Context, id int) (LoadInfo, error) {
	students, ok := CaseStudents(id)
	if !ok {
		return LoadInfo{}, fmt.Errorf("%w: %d (have 1..%d)", ErrUnknownCase, id, len(builtinCases))
	}

	return s.load(ctx, "case "+strconv.Itoa(id), id, students, SeedTasks(students))
}

// LoadFile parses path (text or YAML) and loads it with the seed tasks.
func (s *Session) LoadFile(ctx context.Context, path string) (LoadInfo, error) {
	students, err := parser.LoadFile(path)
	if err != nil {
		return LoadInfo{}, err
	}

	return s.load(ctx, path, 0, students, SeedTasks(students))
}

func (s *Session) load(ctx context.Context, source string, caseID int, students []*student.Student, tasks []social.Task) (LoadInfo, error) {
	log := s.opts.Logger.With(zap.String("source", source))
	st, err := s.build(ctx, log, students, tasks)
	if err != nil {
		log.Warn("load failed, keeping previous population", zap.Error(err))
		return LoadInfo{}, err
	}
	st.info.Source = source
	st.info.Case = caseID

	s.mu.Lock()
	s.st = st
	s.mu.Unlock()

	log.Info("population loaded",
		zap.String("load_id", st.info.ID),
		zap.Int("students", st.info.Students),
		zap.Int("edges", st.info.Edges),
		zap.Int("pairs", st.info.Pairs),
		zap.Strings("unmatched", st.info.Unmatched))

	return st.info, nil
}

// build runs the whole pipeline on private copies.
func (s *Session) build(ctx context.Context, log *zap.Logger, students []*student.Student, tasks []social.Task) (*state, error) {
	clones := student.CloneAll(students)
	if _, err := network.Build(clones); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	res, err := matching.Assign(clones, matching.WithOnBreak(func(target, dropped string) {
		log.Debug("roommate pairing broken", zap.String("target", target), zap.String("dropped", dropped))
	}))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	log.Debug("roommates assigned", zap.Int("proposals", res.Proposals), zap.Int("pairs", len(res.Pairs)))

	byName := make(map[string]*student.Student, len(clones))
	for _, c := range clones {
		byName[c.Name] = c
	}
	remapped, err := remap(tasks, byName)
	if err != nil {
		return nil, err
	}
	hub := social.NewHub()
	if err := hub.Run(ctx, remapped, s.opts.SocialWorkers); err != nil {
		return nil, fmt.Errorf("session: social tasks: %w", err)
	}

	g, err := network.Build(clones)
	if err != nil {
		return nil, fmt.Errorf("session: rebuild: %w", err)
	}
	finder, err := referral.NewFinder(g, s.opts.Referral...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &state{
		info: LoadInfo{
			ID:        uuid.NewString(),
			Students:  len(clones),
			Edges:     g.EdgeCount(),
			Pairs:     len(res.Pairs),
			Unmatched: res.Unmatched,
			LoadedAt:  time.Now().UTC(),
		},
		students: clones,
		graph:    g,
		finder:   finder,
		hub:      hub,
	}, nil
}

// remap points every task at the cloned record of the same name.
func remap(tasks []social.Task, byName map[string]*student.Student) ([]social.Task, error) {
	out := make([]social.Task, len(tasks))
	for i, t := range tasks {
		if t.From == nil || t.To == nil {
			return nil, fmt.Errorf("session: task %d: %w", i, social.ErrNilStudent)
		}
		from, ok := byName[t.From.Name]
		if !ok {
			return nil, fmt.Errorf("session: task %d: %w: %q", i, ErrUnknownStudent, t.From.Name)
		}
		to, ok := byName[t.To.Name]
		if !ok {
			return nil, fmt.Errorf("session: task %d: %w: %q", i, ErrUnknownStudent, t.To.Name)
		}
		t.From, t.To = from, to
		out[i] = t
	}

	return out, nil
}

func (s *Session) current() (*state, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st == nil {
		return nil, ErrNotLoaded
	}

	return s.st, nil
}

// Current describes the loaded population.
func (s *Session) Current() (LoadInfo, error) {
	st, err := s.current()
	if err != nil {
		return LoadInfo{}, err
	}

	return st.info, nil
}

// Graph returns every node in load order and every edge once.
func (s *Session) Graph() (GraphView, error) {
	st, err := s.current()
	if err != nil {
		return GraphView{}, err
	}
	view := GraphView{
		Nodes:  make([]NodeView, 0, st.graph.Len()),
		Edges:  make([]EdgeView, 0, st.graph.EdgeCount()),
		Groups: st.graph.Components(),
	}
	for _, n := range st.graph.Nodes() {
		view.Nodes = append(view.Nodes, NodeView{
			ID:    n.Name,
			Label: n.Name,
			Major: n.Major,
			Age:   n.Age,
			Year:  n.Year,
			GPA:   n.GPA,
		})
	}
	for _, e := range st.graph.Edges() {
		view.Edges = append(view.Edges, EdgeView{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Label:  strconv.FormatInt(e.Weight, 10),
		})
	}

	return view, nil
}

// Roommates returns every student's assignment in load order.
func (s *Session) Roommates() ([]RoommateView, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	out := make([]RoommateView, 0, len(st.students))
	for _, stu := range st.students {
		out = append(out, RoommateView{Student: stu.Name, Roommate: roommateOf(stu)})
	}

	return out, nil
}

// Referral finds the cheapest chain from start to someone who interned at company.
func (s *Session) Referral(start, company string) (ReferralView, error) {
	st, err := s.current()
	if err != nil {
		return ReferralView{}, err
	}
	if _, ok := st.graph.Lookup(start); !ok {
		return ReferralView{}, fmt.Errorf("%w: %q", ErrUnknownStudent, start)
	}
	path, err := st.finder.FindPathByName(start, company)
	if err != nil {
		return ReferralView{}, fmt.Errorf("session: %w", err)
	}

	return ReferralView{Start: start, Company: company, Found: len(path) > 0, Path: path}, nil
}

// Student returns the detail of one student.
func (s *Session) Student(name string) (StudentView, error) {
	st, err := s.current()
	if err != nil {
		return StudentView{}, err
	}
	stu, ok := st.graph.Lookup(name)
	if !ok {
		return StudentView{}, fmt.Errorf("%w: %q", ErrUnknownStudent, name)
	}

	return st.view(stu), nil
}

// Students returns the detail of every student in load order.
func (s *Session) Students() ([]StudentView, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	out := make([]StudentView, 0, len(st.students))
	for _, stu := range st.students {
		out = append(out, st.view(stu))
	}

	return out, nil
}

// Pods groups the population into pods of at most size members.
func (s *Session) Pods(size int) ([]pods.Pod, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}

	return pods.Form(st.graph, size)
}

func (st *state) view(stu *student.Student) StudentView {
	msgs := st.hub.Messages(stu)
	chat := make([]string, len(msgs))
	for i, m := range msgs {
		chat[i] = m.String()
	}

	return StudentView{
		Name:                stu.Name,
		Age:                 stu.Age,
		Gender:              stu.Gender,
		Year:                stu.Year,
		Major:               stu.Major,
		GPA:                 stu.GPA,
		RoommatePreferences: append([]string{}, stu.RoommatePreferences...),
		PreviousInternships: append([]string{}, stu.Internships...),
		Roommate:            roommateOf(stu),
		Friends:             st.hub.Friends(stu),
		ChatHistory:         chat,
	}
}

func roommateOf(stu *student.Student) *string {
	if !stu.HasRoommate() {
		return nil
	}
	name := stu.Roommate()

	return &name
}
