// Package referral defines options and sentinel errors for the referral
// path search over a network.Graph.
//
// Options:
//
//	– CostBase: edge cost is CostBase - weight before clamping (default 10).
//	– MinCost:  lower clamp of every edge cost (default 1, must be ≥ 1).
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the finder is built on a nil graph.
//	– ErrNilStart      if FindPath receives a nil start.
//	– ErrStartNotFound if the start is not a node of the graph.
//	– ErrBadMinCost    if MinCost < 1.
package referral

import "errors"

// Sentinel errors returned by the referral finder.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed to NewFinder.
	ErrNilGraph = errors.New("referral: graph is nil")

	// ErrNilStart indicates that FindPath was called with a nil start.
	ErrNilStart = errors.New("referral: start student is nil")

	// ErrStartNotFound indicates the start student is not part of the graph.
	ErrStartNotFound = errors.New("referral: start student not found in graph")

	// ErrBadMinCost indicates MinCost was set below 1, which would allow
	// zero-cost edges and make path choice among strong ties arbitrary.
	ErrBadMinCost = errors.New("referral: MinCost must be at least 1")
)

// Default cost transform parameters: cost = max(DefaultMinCost, DefaultCostBase - weight).
const (
	DefaultCostBase int64 = 10
	DefaultMinCost  int64 = 1
)

// Options configures the cost transform of a Finder.
type Options struct {
	CostBase int64
	MinCost  int64
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// WithCostBase sets the value edge weights are subtracted from.
func WithCostBase(base int64) Option {
	return func(o *Options) {
		o.CostBase = base
	}
}

// WithMinCost sets the lower clamp of edge costs. Values below 1 make
// NewFinder fail with ErrBadMinCost.
func WithMinCost(min int64) Option {
	return func(o *Options) {
		o.MinCost = min
	}
}

// DefaultOptions returns the cost transform of the referral search:
// CostBase 10, MinCost 1.
func DefaultOptions() Options {
	return Options{
		CostBase: DefaultCostBase,
		MinCost:  DefaultMinCost,
	}
}

// Cost maps a connection weight to a traversal cost: stronger ties are
// cheaper, and no edge is cheaper than MinCost.
func (o Options) Cost(weight int64) int64 {
	c := o.CostBase - weight
	if c < o.MinCost {
		return o.MinCost
	}

	return c
}
