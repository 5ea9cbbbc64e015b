// File: types.go
// Role: Vertex, Edge and Graph declarations, options, sentinel errors, constructor.
//
// Concurrency:
//   - muVert guards vertices/order; muEdgeAdj guards edges, pairs and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for an already connected pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents an undirected connection between two vertices.
//
// From and To keep the orientation the edge was added with; algorithms that
// walk the graph should use Other to find the opposite endpoint.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint, as passed to AddEdge.
	From string

	// To is the second endpoint, as passed to AddEdge.
	To string

	// Weight is the integer weight of the edge.
	Weight int64
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory undirected graph.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and order
	muEdgeAdj sync.RWMutex // guards edges, pairs and adjacency

	weighted bool

	nextEdgeID uint64 // guarded by muEdgeAdj

	vertices map[string]*Vertex
	order    []string // vertex IDs in insertion order

	edges []*Edge            // insertion order
	pairs map[pairKey]*Edge  // unordered pair → edge
	adj   map[string][]*Edge // vertex → incident edges, insertion order
}

// pairKey is the canonical (lo, hi) key of an unordered vertex pair.
type pairKey struct {
	lo, hi string
}

func keyOf(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted. Self-loops are always rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		pairs:    make(map[pairKey]*Edge),
		adj:      make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
