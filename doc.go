// Package longhorn models a university cohort as a weighted connection graph
// and answers three questions about it: who rooms with whom, how strongly
// students are tied to each other, and through whom a student can reach
// someone who interned at a given company.
//
// Packages:
//
//	core/      thread-safe undirected weighted graph primitives
//	student/   the student record, population index and validation
//	network/   connection strength scoring, graph build, components
//	matching/  propose/reject roommate assignment
//	referral/  cheapest referral chain (Dijkstra on max(1, 10-weight))
//	pods/      capacity-bounded grouping of strongly tied students
//	parser/    text and YAML population files
//	social/    friend requests and chat, run on a bounded worker pool
//	session/   load pipeline and read-only views for consumers
//	config/    defaults, YAML file and LONGHORN_* environment settings
//	logging/   zap logger construction
//
// The command in cmd/longhorn exposes every query on the command line.
//
// Quick example:
//
//	s := session.New()
//	if _, err := s.LoadCase(ctx, 2); err != nil {
//		return err
//	}
//	ref, _ := s.Referral("Greg", "DummyCompany")
//	fmt.Println(ref.Path) // [Greg Ivy]
package longhorn
