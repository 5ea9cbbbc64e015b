// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edge IDs are "e1", "e2", … in creation order.
//   - Edges() returns edges in creation order.
package core

import "fmt"

const edgeIDPrefix = "e"

// AddEdge creates an undirected edge {from,to} with the given weight and
// returns its ID. Missing endpoints are added as vertices first.
//
// Implementation:
//   - Stage 1: Validate IDs, weight policy and the no-loop rule.
//   - Stage 2: Ensure both endpoints exist (idempotent AddVertex).
//   - Stage 3: Under muEdgeAdj, reject a second edge for the same pair, then
//     store the edge and append it to both adjacency slices.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := keyOf(from, to)
	if _, exists := g.pairs[k]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:   from,
		To:     to,
		Weight: weight,
	}
	g.edges = append(g.edges, e)
	g.pairs[k] = e
	g.adj[from] = append(g.adj[from], e)
	g.adj[to] = append(g.adj[to], e)

	return e.ID, nil
}

// Edge returns the edge connecting {from,to}, in either orientation.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) (*Edge, bool) {
	if from == "" || to == "" {
		return nil, false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.pairs[keyOf(from, to)]

	return e, ok
}

// Edges returns all edges in creation order. Each undirected edge appears once.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
