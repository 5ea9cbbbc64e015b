// Package parser reads student populations from disk.
//
// Two formats are supported. The text format is a sequence of blocks:
//
//	Student:
//	Name: Alice
//	Age: 20
//	Gender: Female
//	Year: 2
//	Major: Computer Science
//	GPA: 3.5
//	RoommatePreferences: Bob, Charlie, Frank
//	PreviousInternships: Google
//
// Each "Student:" line opens a new record. Lists are comma separated, and
// "None" (any case) or an empty value means no entries. Blank lines, lines
// before the first block and unknown keys are ignored. A block that never
// sets Name is dropped.
//
// The YAML format is a document with a top-level "students" sequence whose
// items use the Student yaml keys (name, age, gender, year, major, gpa,
// roommatePreferences, previousInternships).
//
// Every record is checked with student.Validate: a non-empty name, age and
// year not negative, GPA between 0 and 5. Preference and internship entries
// are taken as written. Duplicate names are left to student.NewPopulation.
package parser
