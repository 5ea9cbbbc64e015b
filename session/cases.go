package session

import (
	"github.com/katalvlaran/longhorn/social"
	"github.com/katalvlaran/longhorn/student"
)

type builtinCase struct {
	info     CaseInfo
	students func() []*student.Student
}

var builtinCases = []builtinCase{
	{
		info: CaseInfo{ID: 1, Name: "Test Case 1", Description: "6 students, 2 groups"},
		students: func() []*student.Student {
			return []*student.Student{
				student.New("Alice", 20, "Female", 2, "Computer Science", 3.5, []string{"Bob", "Charlie", "Frank"}, []string{"Google"}),
				student.New("Bob", 21, "Male", 3, "Computer Science", 3.7, []string{"Alice", "Charlie", "Frank"}, []string{"Google", "Microsoft"}),
				student.New("Charlie", 20, "Male", 2, "Mathematics", 3.2, []string{"Alice", "Bob", "Frank"}, nil),
				student.New("Frank", 23, "Male", 3, "Chemistry", 3.1, []string{"Alice", "Bob", "Charlie"}, nil),
				student.New("Dana", 22, "Female", 4, "Biology", 3.8, []string{"Evan"}, []string{"Pfizer"}),
				student.New("Evan", 22, "Male", 4, "Biology", 3.6, []string{"Dana"}, []string{"Moderna", "Pfizer"}),
			}
		},
	},
	{
		info: CaseInfo{ID: 2, Name: "Test Case 2", Description: "3 students, DummyCompany referral"},
		students: func() []*student.Student {
			return []*student.Student{
				student.New("Greg", 24, "Male", 4, "Economics", 3.4, []string{"Helen", "Ivy"}, []string{"InternshipA"}),
				student.New("Helen", 24, "Female", 4, "Economics", 3.5, []string{"Greg", "Ivy"}, []string{"InternshipB"}),
				student.New("Ivy", 25, "Female", 4, "Economics", 3.8, []string{"Helen", "Greg"}, []string{"DummyCompany"}),
			}
		},
	},
	{
		info: CaseInfo{ID: 3, Name: "Test Case 3", Description: "3 students, one unpaired"},
		students: func() []*student.Student {
			return []*student.Student{
				student.New("Jack", 19, "Male", 1, "History", 3.0, []string{"Kim"}, []string{"MuseumIntern"}),
				student.New("Kim", 19, "Female", 1, "History", 3.2, []string{"Jack"}, []string{"MuseumIntern"}),
				student.New("Leo", 20, "Male", 1, "History", 3.5, nil, nil),
			}
		},
	},
}

// Cases lists the built-in test cases.
func Cases() []CaseInfo {
	out := make([]CaseInfo, len(builtinCases))
	for i, c := range builtinCases {
		out[i] = c.info
	}

	return out
}

// CaseStudents returns fresh records of built-in case id.
func CaseStudents(id int) ([]*student.Student, bool) {
	if id < 1 || id > len(builtinCases) {
		return nil, false
	}

	return builtinCases[id-1].students(), true
}

// SeedTasks returns the social activity applied on every load: the first
// student befriends and greets the second, and the second the third.
func SeedTasks(students []*student.Student) []social.Task {
	var tasks []social.Task
	if len(students) >= 2 {
		tasks = append(tasks,
			social.FriendRequest(students[0], students[1]),
			social.Chat(students[0], students[1], "Hello!"),
		)
	}
	if len(students) >= 3 {
		tasks = append(tasks,
			social.FriendRequest(students[1], students[2]),
			social.Chat(students[1], students[2], "Hi there!"),
		)
	}

	return tasks
}
