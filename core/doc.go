// Package core provides the in-memory graph storage shared by the longhorn
// packages: a thread-safe, undirected Graph with integer edge weights.
//
// The Graph G = (V,E) keeps:
//
//   - Vertices in insertion order (Vertices() is stable across calls).
//   - At most one edge per unordered pair {u,v}.
//   - Per-vertex adjacency as an ordered slice of edge pointers, so
//     Neighbors(v) reports edges in the order they were added.
//   - Collision-free Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj). Many readers may query one Graph concurrently.
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
// Self-loops are never stored: AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	Edge(from, to string) (*Edge, bool) // O(1)
//	Edges() []*Edge                     // O(E), insertion order
//
//	// Adjacency
//	Neighbors(id string) ([]*Edge, error)    // O(d), insertion order
//	NeighborIDs(id string) ([]string, error) // O(d), insertion order
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop (from == to).
//	ErrMultiEdgeNotAllowed - a second edge for an already connected pair.
package core
