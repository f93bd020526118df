package models

import "strconv"

// Header is the column row every fixture file starts with
var Header = []string{"id", "question", "category", "difficulty"}

// Question represents one row of the generated question fixture
type Question struct {
	ID         int
	Question   string
	Category   string
	Difficulty string
}

// Record returns the question as CSV fields in Header order
func (q Question) Record() []string {
	return []string{strconv.Itoa(q.ID), q.Question, q.Category, q.Difficulty}
}
