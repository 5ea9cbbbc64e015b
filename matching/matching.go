// Package matching assigns roommates with a propose/reject procedure adapted
// from Gale–Shapley to a single population with one-sided preference lists.
//
// Students with a non-empty preference list start in a FIFO queue. Each pop
// serves one proposer: it proposes to the next name on its list; an
// unmatched target accepts, a matched target accepts only if it ranks the
// proposer above its current roommate (the dropped roommate re-enters the
// queue). A rejected proposer, or one whose preference names nobody in the
// population, re-enters the queue and tries its next name later.
//
// Each service strictly advances the proposer's cursor, so a student is
// served at most len(preferences)+1 times and the run always terminates.
//
// The result is symmetric and one-to-one, but it is not a stable roommates
// solution in the textbook sense: blocking pairs may remain.
package matching

import (
	"fmt"

	"github.com/katalvlaran/longhorn/student"
)

// engine holds the mutable state of one run.
type engine struct {
	opts   Options
	byName map[string]*student.Student
	next   map[*student.Student]int // cursor into RoommatePreferences
	queue  []*student.Student
	res    *Result
}

// Assign pairs the students in place: every roommate field is cleared first,
// then set symmetrically by the propose/reject rounds.
//
// Errors: ErrNilStudent, ErrDuplicateName. No other input fails; unknown
// names in a preference list are skipped over.
//
// Complexity: O(Σ len(preferences) · max len(preferences)).
func Assign(students []*student.Student, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &engine{
		opts:   o,
		byName: make(map[string]*student.Student, len(students)),
		next:   make(map[*student.Student]int, len(students)),
		res:    &Result{Pairs: []Pair{}, Unmatched: []string{}},
	}
	for i, s := range students {
		if s == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilStudent, i)
		}
		if _, dup := e.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		e.byName[s.Name] = s
	}

	for _, s := range students {
		s.ClearRoommate()
		if len(s.RoommatePreferences) > 0 {
			e.next[s] = 0
			e.enqueue(s)
		}
	}
	e.loop()
	e.collect(students)

	return e.res, nil
}

func (e *engine) enqueue(s *student.Student) {
	e.queue = append(e.queue, s)
}

func (e *engine) dequeue() *student.Student {
	s := e.queue[0]
	e.queue = e.queue[1:]

	return s
}

// loop serves proposers until the queue drains.
func (e *engine) loop() {
	for len(e.queue) > 0 {
		proposer := e.dequeue()
		if proposer.HasRoommate() {
			continue // matched as a side effect since it was queued
		}
		i := e.next[proposer]
		if i >= len(proposer.RoommatePreferences) {
			continue // list exhausted; stays unmatched
		}
		e.next[proposer] = i + 1

		target, ok := e.byName[proposer.RoommatePreferences[i]]
		if !ok || target == proposer {
			e.enqueue(proposer)
			continue
		}
		e.propose(proposer, target)
	}
}

// propose resolves one proposal from proposer to target.
func (e *engine) propose(proposer, target *student.Student) {
	e.res.Proposals++
	e.opts.OnPropose(proposer.Name, target.Name)

	if !target.HasRoommate() {
		pair(proposer, target)
		return
	}

	dropped := target.Roommate()
	if !Prefers(target, proposer.Name, dropped) {
		e.enqueue(proposer)
		return
	}

	if current, ok := e.byName[dropped]; ok {
		current.ClearRoommate()
		e.enqueue(current)
	}
	e.opts.OnBreak(target.Name, dropped)
	pair(proposer, target)
}

// collect fills Pairs and Unmatched in input order.
func (e *engine) collect(students []*student.Student) {
	seen := make(map[string]bool, len(students))
	for _, s := range students {
		if !s.HasRoommate() {
			e.res.Unmatched = append(e.res.Unmatched, s.Name)
			continue
		}
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		seen[s.Roommate()] = true
		e.res.Pairs = append(e.res.Pairs, Pair{A: s.Name, B: s.Roommate()})
	}
}

func pair(a, b *student.Student) {
	a.SetRoommate(b.Name)
	b.SetRoommate(a.Name)
}

// Prefers reports whether target ranks candidate above current in its own
// preference list. An unranked name sits below every ranked one:
//
//	both ranked           → the lower index wins
//	only current absent   → candidate wins
//	only candidate absent → current is kept
//	both absent           → current is kept
func Prefers(target *student.Student, candidate, current string) bool {
	cand := target.PreferenceRank(candidate)
	if cand < 0 {
		return false
	}
	cur := target.PreferenceRank(current)
	if cur < 0 {
		return true
	}

	return cand < cur
}
