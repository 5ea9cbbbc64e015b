package student

// Roommate returns the name of the current roommate, or "" when unmatched.
func (s *Student) Roommate() string { return s.roommate }

// HasRoommate reports whether s is currently matched.
func (s *Student) HasRoommate() bool { return s.roommate != "" }

// SetRoommate links s to the named roommate. It does not touch the other
// side; keeping the relation symmetric is the caller's job.
func (s *Student) SetRoommate(name string) { s.roommate = name }

// ClearRoommate removes the roommate link of s.
func (s *Student) ClearRoommate() { s.roommate = "" }

// HasInternship reports whether company appears in the internship list.
func (s *Student) HasInternship(company string) bool {
	for _, c := range s.Internships {
		if c == company {
			return true
		}
	}

	return false
}

// PreferenceRank returns the index of name in the roommate preference list,
// or -1 if name is not ranked.
func (s *Student) PreferenceRank(name string) int {
	for i, p := range s.RoommatePreferences {
		if p == name {
			return i
		}
	}

	return -1
}

// Friends returns a copy of the friend list in the order friends were added.
func (s *Student) Friends() []string {
	return append([]string{}, s.friends...)
}

// AddFriend appends name to the friend list unless already present.
// It reports whether the list changed.
func (s *Student) AddFriend(name string) bool {
	for _, f := range s.friends {
		if f == name {
			return false
		}
	}
	s.friends = append(s.friends, name)

	return true
}

// Messages returns a copy of the chat log in chronological order.
func (s *Student) Messages() []Message {
	return append([]Message{}, s.messages...)
}

// AppendMessage adds m to the end of the chat log.
func (s *Student) AppendMessage(m Message) {
	s.messages = append(s.messages, m)
}

// Clone returns a fresh record with the same attributes and empty
// relationship state. Slices are copied, so the clone shares nothing with s.
func (s *Student) Clone() *Student {
	return New(s.Name, s.Age, s.Gender, s.Year, s.Major, s.GPA, s.RoommatePreferences, s.Internships)
}

// String returns the student's name.
func (s *Student) String() string { return s.Name }
