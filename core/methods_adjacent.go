// File: methods_adjacent.go
// Role: Adjacency queries.
//
// Determinism:
//   - Neighbors() and NeighborIDs() follow edge insertion order, not sorted order.
package core

// Neighbors returns the edges incident to id in insertion order.
// The returned slice is a copy; the *Edge values are shared and must not be mutated.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	src := g.adj[id]
	out := make([]*Edge, len(src))
	copy(out, src)

	return out, nil
}

// NeighborIDs returns the IDs of vertices adjacent to id, in edge insertion order.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.Other(id))
	}

	return ids, nil
}
