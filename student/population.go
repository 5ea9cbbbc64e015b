package student

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the record's attributes against its validate tags.
// The returned error wraps ErrInvalidStudent.
func (s *Student) Validate() error {
	if s == nil {
		return ErrNilStudent
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidStudent, s.Name, err)
	}

	return nil
}

// Population is an ordered, name-indexed set of students.
// It holds the records by reference; it never copies them.
type Population struct {
	members []*Student
	byName  map[string]*Student
}

// NewPopulation indexes the records by name. Attributes are taken as given;
// Validate is for input boundaries such as the parser.
//
// Errors:
//   - ErrNilStudent if any element is nil.
//   - ErrDuplicateName if two records share a name.
//
// Complexity: O(n).
func NewPopulation(students ...*Student) (*Population, error) {
	p := &Population{
		members: make([]*Student, 0, len(students)),
		byName:  make(map[string]*Student, len(students)),
	}
	for i, s := range students {
		if s == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilStudent, i)
		}
		if _, dup := p.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		p.byName[s.Name] = s
		p.members = append(p.members, s)
	}

	return p, nil
}

// Lookup resolves a name to its record.
func (p *Population) Lookup(name string) (*Student, bool) {
	s, ok := p.byName[name]

	return s, ok
}

// All returns the records in input order. The slice is a copy.
func (p *Population) All() []*Student {
	return append([]*Student(nil), p.members...)
}

// Names returns the member names in input order.
func (p *Population) Names() []string {
	out := make([]string, len(p.members))
	for i, s := range p.members {
		out[i] = s.Name
	}

	return out
}

// Len returns the number of members.
func (p *Population) Len() int { return len(p.members) }

// CloneAll returns fresh copies of students with empty relationship state,
// preserving order.
func CloneAll(students []*Student) []*Student {
	out := make([]*Student, 0, len(students))
	for _, s := range students {
		if s == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, s.Clone())
	}

	return out
}
