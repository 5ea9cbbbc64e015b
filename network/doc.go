// Package network builds the connection graph of a student population.
//
// Every unordered pair (i, j) of the population is scored with Strength,
// evaluated from i's perspective (i precedes j in input order), and an
// undirected edge carrying that score is stored iff the score is positive.
//
// Strength table (subject A against B):
//
//	A's roommate is B                        +4
//	each internship string in both lists     +3 per match (lists, not sets)
//	A.Major == B.Major (case-sensitive)      +2
//	A.Age == B.Age                           +1
//
// The graph holds the *student.Student records by reference, so a later
// roommate change is visible through Lookup, but edge weights are frozen at
// Build time. Rebuild after the matching engine runs.
//
// A built Graph is read-only and safe for concurrent readers.
//
// Errors:
//
//	ErrEmptyPopulation - Build was called with no students.
//	student.ErrDuplicateName, student.ErrNilStudent
//	                   - propagated from population indexing.
package network
