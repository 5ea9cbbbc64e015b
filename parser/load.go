package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/longhorn/student"
)

// document is the top-level shape of a YAML population file.
type document struct {
	Students []*student.Student `yaml:"students"`
}

// ParseYAML reads a population from a YAML document with a "students" sequence.
// An empty document yields an empty population. Every record is checked
// with student.Validate.
func ParseYAML(r io.Reader) ([]*student.Student, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parser: decode yaml: %w", err)
	}
	out := make([]*student.Student, 0, len(doc.Students))
	for i, s := range doc.Students {
		if s == nil {
			return nil, fmt.Errorf("parser: yaml students[%d]: %w", i, student.ErrNilStudent)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("parser: yaml students[%d]: %w", i, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// LoadFile reads a population file, choosing the format by extension:
// .yaml and .yml are YAML, anything else is the text format.
func LoadFile(path string) ([]*student.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %s: %w", path, err)
	}
	defer f.Close()

	if IsYAML(path) {
		return ParseYAML(f)
	}

	return ParseText(f)
}

// IsYAML reports whether path names a YAML population file.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}
