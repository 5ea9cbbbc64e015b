// Package social carries friend requests and chat messages between students.
//
// Relationship state lives on the student records; a Hub serializes every
// read and write of it behind one mutex, so tasks may run on any number of
// goroutines. Hub.Run is the batch entry point: it executes tasks on a
// bounded errgroup and returns only after every worker has finished.
package social

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors returned by Hub operations.
var (
	// ErrNilStudent indicates a nil sender or receiver.
	ErrNilStudent = errors.New("social: nil student")

	// ErrSelfRequest indicates a student addressed itself.
	ErrSelfRequest = errors.New("social: sender and receiver are the same student")

	// ErrEmptyMessage indicates a chat message with no text.
	ErrEmptyMessage = errors.New("social: empty message")

	// ErrUnknownTask indicates a Task whose Kind is not recognized.
	ErrUnknownTask = errors.New("social: unknown task kind")
)

// Options configures a Hub.
type Options struct {
	// Clock stamps messages. Default time.Now.
	Clock func() time.Time

	// NewID mints message IDs. Default uuid.NewString.
	NewID func() string
}

// Option is a functional option for NewHub.
type Option func(*Options)

// WithClock replaces the message timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithIDGenerator replaces the message ID source.
func WithIDGenerator(newID func() string) Option {
	return func(o *Options) {
		o.NewID = newID
	}
}

// DefaultOptions returns wall-clock timestamps and random UUIDs.
func DefaultOptions() Options {
	return Options{
		Clock: time.Now,
		NewID: uuid.NewString,
	}
}
