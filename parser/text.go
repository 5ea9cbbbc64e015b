package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/longhorn/student"
)

// ParseText reads the block format described in the package comment.
//
// Errors wrap ErrMalformedLine or ErrBadNumber with the 1-based line number,
// student.ErrInvalidStudent with the line of the offending block header, or
// the underlying read error. Records parsed before the failure are not
// returned.
func ParseText(r io.Reader) ([]*student.Student, error) {
	var (
		out     []*student.Student
		cur     *student.Student
		inBlock bool
		lineNo  int
		start   int
	)
	flush := func() error {
		if !inBlock || cur.Name == "" {
			return nil
		}
		if err := cur.Validate(); err != nil {
			return fmt.Errorf("parser: block at line %d: %w", start, err)
		}
		out = append(out, cur)

		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == blockHeader {
			if err := flush(); err != nil {
				return nil, err
			}
			cur, inBlock, start = &student.Student{}, true, lineNo
			continue
		}
		if !inBlock {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w at line %d: %q, expected 'Key: value'", ErrMalformedLine, lineNo, line)
		}
		if err := setField(cur, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("%w at line %d", err, lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if out == nil {
		out = []*student.Student{}
	}

	return out, nil
}

func setField(s *student.Student, key, value string) error {
	var err error
	switch key {
	case keyName:
		s.Name = value
	case keyGender:
		s.Gender = value
	case keyMajor:
		s.Major = value
	case keyAge:
		s.Age, err = parseInt(key, value)
	case keyYear:
		s.Year, err = parseInt(key, value)
	case keyGPA:
		s.GPA, err = strconv.ParseFloat(value, 64)
		if err != nil {
			err = fmt.Errorf("%w for %s: %q", ErrBadNumber, key, value)
		}
	case keyPreferences:
		s.RoommatePreferences = splitList(value)
	case keyInternships:
		s.Internships = splitList(value)
	}

	return err
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w for %s: %q", ErrBadNumber, key, value)
	}

	return n, nil
}

// splitList splits a comma separated value, trimming items and dropping
// empty ones. "None" in any case yields nil.
func splitList(value string) []string {
	if value == "" || strings.EqualFold(value, "None") {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
