// Package student defines the individual record scored by the connection
// graph and paired by the roommate matching engine, plus Population, the
// name-indexed set of records a graph is built from.
package student

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for record and population handling.
var (
	// ErrNilStudent indicates a nil *Student was passed where a record is required.
	ErrNilStudent = errors.New("student: nil student")

	// ErrInvalidStudent indicates a record failed attribute validation at an
	// input boundary. Populations and graphs never check attributes.
	ErrInvalidStudent = errors.New("student: invalid student")

	// ErrDuplicateName indicates two records in one population share a name.
	ErrDuplicateName = errors.New("student: duplicate name")
)

// Message is one entry of a student's chat log.
type Message struct {
	ID     string    `json:"id" yaml:"id"`
	From   string    `json:"from" yaml:"from"`
	To     string    `json:"to" yaml:"to"`
	Text   string    `json:"text" yaml:"text"`
	SentAt time.Time `json:"sentAt" yaml:"sentAt"`
}

// String renders the message the way chat histories are displayed.
func (m Message) String() string {
	return fmt.Sprintf("%s -> %s: %s", m.From, m.To, m.Text)
}

// Student is one individual of the population.
//
// Name is the identity key: records are compared by name only. The
// attribute fields are set once at construction. Roommate, friends and the
// message log are relationship state; the roommate link is written only by
// the matching engine, friends and messages only by the social layer, which
// serializes access itself.
type Student struct {
	Name                string   `json:"name" yaml:"name" validate:"required"`
	Age                 int      `json:"age" yaml:"age" validate:"gte=0"`
	Gender              string   `json:"gender" yaml:"gender"`
	Year                int      `json:"year" yaml:"year" validate:"gte=0"`
	Major               string   `json:"major" yaml:"major"`
	GPA                 float64  `json:"gpa" yaml:"gpa" validate:"gte=0,lte=5"`
	RoommatePreferences []string `json:"roommatePreferences" yaml:"roommatePreferences"`
	Internships         []string `json:"previousInternships" yaml:"previousInternships"`

	roommate string
	friends  []string
	messages []Message
}

// New builds a Student with the given attributes and no relationship state.
// The preference and internship slices are copied.
func New(name string, age int, gender string, year int, major string, gpa float64, prefs, internships []string) *Student {
	return &Student{
		Name:                name,
		Age:                 age,
		Gender:              gender,
		Year:                year,
		Major:               major,
		GPA:                 gpa,
		RoommatePreferences: append([]string(nil), prefs...),
		Internships:         append([]string(nil), internships...),
	}
}
