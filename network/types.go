package network

import (
	"errors"

	"github.com/katalvlaran/longhorn/student"
)

// ErrEmptyPopulation indicates Build was given no students.
var ErrEmptyPopulation = errors.New("network: empty population")

// Score contributions of the strength table.
const (
	RoommateBonus   int64 = 4
	InternshipBonus int64 = 3
	MajorBonus      int64 = 2
	AgeBonus        int64 = 1
)

// Link is one entry of a neighbor list: the adjacent student and the weight
// of the connecting edge.
type Link struct {
	Student *student.Student
	Weight  int64
}

// EdgeView is an undirected edge reported once per unordered pair.
type EdgeView struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}
