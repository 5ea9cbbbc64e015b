// Package matching provides options, results and sentinel errors for the
// roommate matching engine.
package matching

import "errors"

// ErrNilStudent is returned when the input contains a nil record.
var ErrNilStudent = errors.New("matching: nil student")

// ErrDuplicateName is returned when two input records share a name.
var ErrDuplicateName = errors.New("matching: duplicate name")

// Option configures the engine via functional arguments.
type Option func(*Options)

// Options holds callbacks observing the propose/reject rounds.
type Options struct {
	// OnPropose is called for every proposal to a resolved target, before the
	// target decides.
	OnPropose func(proposer, target string)

	// OnBreak is called when a target drops its current roommate for a
	// better-ranked proposer.
	OnBreak func(target, dropped string)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPropose: func(string, string) {},
		OnBreak:   func(string, string) {},
	}
}

// WithOnPropose installs a proposal hook. A nil fn is ignored.
func WithOnPropose(fn func(proposer, target string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPropose = fn
		}
	}
}

// WithOnBreak installs a hook for broken pairs. A nil fn is ignored.
func WithOnBreak(fn func(target, dropped string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBreak = fn
		}
	}
}

// Pair is one roommate assignment.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Result summarizes a finished run.
type Result struct {
	// Pairs lists each assignment once; A is the member that appears first
	// in the input order.
	Pairs []Pair `json:"pairs"`

	// Unmatched lists students left without a roommate, in input order.
	Unmatched []string `json:"unmatched"`

	// Proposals counts proposals that reached a resolved target.
	Proposals int `json:"proposals"`
}
