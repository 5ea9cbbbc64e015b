// Package referral finds the strongest chain of acquaintance from a student
// to anyone who has interned at a target company.
//
// The search is Dijkstra's algorithm over the connection graph with each
// edge costed by Options.Cost (by default max(1, 10 - weight)), so strongly
// connected neighbors are cheap to traverse. It stops at the first popped
// node other than the start whose internship list holds the company.
//
// Notes on implementation choices:
//
//   - A start that already interned at the company returns [start] without searching.
//   - We use a "lazy" decrease-key strategy: improved distances are pushed as
//     new heap entries and stale entries are skipped on pop.
//   - Equal-distance entries pop in push order (FIFO), and a predecessor is
//     only replaced by a strictly shorter distance. Together these fix which
//     of several equal-cost paths is returned.
//   - An unreachable company is a normal outcome: an empty, non-nil path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package referral

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/longhorn/network"
	"github.com/katalvlaran/longhorn/student"
)

// Finder runs referral searches over one built graph.
// A Finder is read-only and safe for concurrent use.
type Finder struct {
	g    *network.Graph
	opts Options
}

// NewFinder validates the options and binds them to g.
func NewFinder(g *network.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinCost < 1 {
		return nil, ErrBadMinCost
	}

	return &Finder{g: g, opts: cfg}, nil
}

// FindPath returns the minimum-cost path from start to the nearest student
// who interned at company, start and destination inclusive.
//
// Returns:
//   - [start] if start itself interned at company.
//   - an empty slice if no such student is reachable.
//
// Errors: ErrNilStart, ErrStartNotFound.
func (f *Finder) FindPath(start *student.Student, company string) ([]*student.Student, error) {
	if start == nil {
		return nil, ErrNilStart
	}
	if !f.g.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start.Name)
	}
	if start.HasInternship(company) {
		return []*student.Student{start}, nil
	}

	r := &runner{
		g:       f.g,
		opts:    f.opts,
		start:   start,
		company: company,
		dist:    make(map[string]int64, f.g.Len()),
		prev:    make(map[string]*student.Student, f.g.Len()),
		visited: make(map[string]bool, f.g.Len()),
	}

	return r.run(), nil
}

// FindPathByName resolves startName in the graph and returns the path as names.
func (f *Finder) FindPathByName(startName, company string) ([]string, error) {
	start, ok := f.g.Lookup(startName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startName)
	}
	path, err := f.FindPath(start, company)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.Name
	}

	return names, nil
}

// Options returns the cost transform in use.
func (f *Finder) Options() Options { return f.opts }

// runner holds the mutable state of a single search.
type runner struct {
	g       *network.Graph
	opts    Options
	start   *student.Student
	company string

	dist    map[string]int64            // best known distance; absent means +∞
	prev    map[string]*student.Student // predecessor on the best known path
	visited map[string]bool             // distance finalized
	pq      nodePQ
	seq     uint64 // push counter for FIFO tie order
}

// run performs the search and reconstructs the path.
func (r *runner) run() []*student.Student {
	r.dist[r.start.Name] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.s

		// Skip stale entries: already finalized, or superseded by a shorter push.
		if r.visited[u.Name] || item.dist > r.dist[u.Name] {
			continue
		}
		r.visited[u.Name] = true

		if u != r.start && u.HasInternship(r.company) {
			return r.path(u)
		}
		r.relax(u)
	}

	return []*student.Student{}
}

// relax improves distances to u's neighbors through u.
func (r *runner) relax(u *student.Student) {
	du := r.dist[u.Name]
	for _, l := range r.g.Neighbors(u) {
		v := l.Student
		if r.visited[v.Name] {
			continue
		}
		nd := du + r.opts.Cost(l.Weight)
		if old, seen := r.dist[v.Name]; seen && nd >= old {
			continue
		}
		r.dist[v.Name] = nd
		r.prev[v.Name] = u
		r.push(v, nd)
	}
}

func (r *runner) push(s *student.Student, d int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{s: s, dist: d, seq: r.seq})
}

// path walks predecessor links back from dst and returns start..dst.
func (r *runner) path(dst *student.Student) []*student.Student {
	var rev []*student.Student
	for cur := dst; cur != nil; cur = r.prev[cur.Name] {
		rev = append(rev, cur)
		if cur == r.start {
			break
		}
	}
	out := make([]*student.Student, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}

// nodeItem is a heap entry: a student and a tentative distance.
type nodeItem struct {
	s    *student.Student
	dist int64
	seq  uint64
}

// nodePQ is a min-heap ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
