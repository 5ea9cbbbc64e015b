package network

import (
	"fmt"

	"github.com/katalvlaran/longhorn/core"
	"github.com/katalvlaran/longhorn/student"
)

// Graph is the connection graph of one population.
type Graph struct {
	g   *core.Graph
	pop *student.Population
}

// Build scores every unordered pair of students and returns the resulting
// graph. A single student yields a graph with one node and no edges.
//
// Implementation:
//   - Stage 1: Index the population (nil records and duplicate names fail here).
//   - Stage 2: Register every student as a vertex, in input order.
//   - Stage 3: For i < j, add edge {i,j} with Strength(i, j) when it is positive.
//
// Complexity: O(n² · k) where k bounds the internship list lengths.
func Build(students []*student.Student) (*Graph, error) {
	if len(students) == 0 {
		return nil, ErrEmptyPopulation
	}
	pop, err := student.NewPopulation(students...)
	if err != nil {
		return nil, fmt.Errorf("network: build: %w", err)
	}

	g := core.NewGraph(core.WithWeighted())
	members := pop.All()
	for _, s := range members {
		if err := g.AddVertex(s.Name); err != nil {
			return nil, fmt.Errorf("network: add %q: %w", s.Name, err)
		}
	}
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			w := Strength(members[i], members[j])
			if w <= 0 {
				continue
			}
			if _, err := g.AddEdge(members[i].Name, members[j].Name, w); err != nil {
				return nil, fmt.Errorf("network: connect %q-%q: %w", members[i].Name, members[j].Name, err)
			}
		}
	}

	return &Graph{g: g, pop: pop}, nil
}

// Neighbors returns s's adjacent students with edge weights, in the order the
// edges were created. Unknown or isolated students yield an empty slice.
func (n *Graph) Neighbors(s *student.Student) []Link {
	if s == nil {
		return []Link{}
	}

	return n.NeighborsOf(s.Name)
}

// NeighborsOf is Neighbors keyed by name.
func (n *Graph) NeighborsOf(name string) []Link {
	edges, err := n.g.Neighbors(name)
	if err != nil {
		return []Link{}
	}
	out := make([]Link, 0, len(edges))
	for _, e := range edges {
		other, ok := n.pop.Lookup(e.Other(name))
		if !ok {
			continue
		}
		out = append(out, Link{Student: other, Weight: e.Weight})
	}

	return out
}

// Nodes returns every student passed to Build, in input order.
func (n *Graph) Nodes() []*student.Student { return n.pop.All() }

// Lookup resolves a name to its student.
func (n *Graph) Lookup(name string) (*student.Student, bool) { return n.pop.Lookup(name) }

// Contains reports whether s is a node of this graph (same record, not just
// the same name).
func (n *Graph) Contains(s *student.Student) bool {
	if s == nil {
		return false
	}
	got, ok := n.pop.Lookup(s.Name)

	return ok && got == s
}

// Weight returns the weight of edge {a,b} and whether it exists.
func (n *Graph) Weight(a, b string) (int64, bool) {
	e, ok := n.g.Edge(a, b)
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// Edges returns each undirected edge once, in creation order, oriented the
// way it was scored (earlier student first).
func (n *Graph) Edges() []EdgeView {
	edges := n.g.Edges()
	out := make([]EdgeView, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeView{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

// Len returns the number of nodes.
func (n *Graph) Len() int { return n.g.VertexCount() }

// EdgeCount returns the number of edges.
func (n *Graph) EdgeCount() int { return n.g.EdgeCount() }
