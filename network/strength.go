package network

import "github.com/katalvlaran/longhorn/student"

// Strength scores the connection of a to b from a's perspective.
//
// The roommate bonus reads a's roommate field only, so Strength(a, b) and
// Strength(b, a) differ while the roommate relation is asymmetric. Shared
// internships are counted over a's list: every entry of a's list that also
// appears in b's list adds the bonus, so a company repeated in a's list
// counts once per repetition.
//
// Complexity: O(|a.Internships| · |b.Internships|).
func Strength(a, b *student.Student) int64 {
	if a == nil || b == nil {
		return 0
	}

	var w int64
	if a.HasRoommate() && a.Roommate() == b.Name {
		w += RoommateBonus
	}
	for _, company := range a.Internships {
		if b.HasInternship(company) {
			w += InternshipBonus
		}
	}
	if a.Major == b.Major {
		w += MajorBonus
	}
	if a.Age == b.Age {
		w += AgeBonus
	}

	return w
}
