package models

import "time"

type Assignment struct {
	AssignmentID int       `json:"assignment_id" db:"assignment_id"`
	ClassID      int       `json:"class_id" db:"class_id"`
	InstructorID int       `json:"instructor_id" db:"instructor_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	DueDate      time.Time `json:"due_date" db:"due_date"`
	MaxPoints    float64   `json:"max_points" db:"max_points"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// AssignmentWithClass enriches an assignment with its class's code and
// name. Both are empty strings when the class no longer exists.
type AssignmentWithClass struct {
	AssignmentID int     `json:"assignment_id" db:"assignment_id"`
	ClassID      int     `json:"class_id" db:"class_id"`
	ClassCode    string  `json:"class_code" db:"class_code"`
	ClassName    string  `json:"class_name" db:"class_name"`
	Title        string  `json:"title" db:"title"`
	Description  string  `json:"description" db:"description"`
	DueDate      string  `json:"due_date" db:"due_date"`
	MaxPoints    float64 `json:"max_points" db:"max_points"`
}

type Rubric struct {
	RubricID      int       `json:"rubric_id" db:"rubric_id"`
	AssignmentID  int       `json:"assignment_id" db:"assignment_id"`
	CriterionName string    `json:"criterion_name" db:"criterion_name"`
	MaxPoints     float64   `json:"max_points" db:"max_points"`
	Description   string    `json:"description" db:"description"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
}
