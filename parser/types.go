package parser

import "errors"

var (
	// ErrMalformedLine is returned for a line inside a block that has no ':'.
	ErrMalformedLine = errors.New("parser: malformed line")

	// ErrBadNumber is returned when Age, Year or GPA does not parse.
	ErrBadNumber = errors.New("parser: invalid number")
)

// Field keys of the text format.
const (
	blockHeader = "Student:"

	keyName        = "Name"
	keyAge         = "Age"
	keyGender      = "Gender"
	keyYear        = "Year"
	keyMajor       = "Major"
	keyGPA         = "GPA"
	keyPreferences = "RoommatePreferences"
	keyInternships = "PreviousInternships"
)
