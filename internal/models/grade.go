package models

import "time"

type Grade struct {
	GradeID      int       `json:"grade_id" db:"grade_id"`
	SubmissionID int       `json:"submission_id" db:"submission_id"`
	RubricID     *int      `json:"rubric_id" db:"rubric_id"` // nil = freeform/overall line item
	PointsEarned float64   `json:"points_earned" db:"points_earned"`
	Feedback     string    `json:"feedback" db:"feedback"`
	GradedBy     int       `json:"graded_by" db:"graded_by"`
	GradedAt     time.Time `json:"graded_at" db:"graded_at"`
}

// OverallGrade is the single aggregated score per submission. At most one
// row exists per submission_id; a second write overwrites it in place.
type OverallGrade struct {
	OverallGradeID  int       `json:"overall_grade_id" db:"overall_grade_id"`
	SubmissionID    int       `json:"submission_id" db:"submission_id"`
	TotalPoints     float64   `json:"total_points" db:"total_points"`
	LetterGrade     string    `json:"letter_grade" db:"letter_grade"`
	OverallFeedback string    `json:"overall_feedback" db:"overall_feedback"`
	GradedBy        int       `json:"graded_by" db:"graded_by"`
	GradedAt        time.Time `json:"graded_at" db:"graded_at"`
}

// RubricGradeLine is one per-criterion line in a student's grade view.
// Criterion name falls back to "Overall" when the grade has no rubric.
type RubricGradeLine struct {
	CriterionName string  `json:"criterion_name" db:"criterion_name"`
	MaxPoints     float64 `json:"max_points" db:"max_points"`
	PointsEarned  float64 `json:"points_earned" db:"points_earned"`
	Feedback      string  `json:"feedback" db:"feedback"`
}

// StudentGradeView is one graded submission in the aggregated per-student
// report. Overall-grade fields default to zero values when no overall
// grade has been recorded yet.
type StudentGradeView struct {
	SubmissionID    int               `json:"submission_id"`
	AssignmentTitle string            `json:"assignment_title"`
	MaxPoints       float64           `json:"max_points"`
	TotalPoints     float64           `json:"total_points"`
	LetterGrade     string            `json:"letter_grade"`
	OverallFeedback string            `json:"overall_feedback"`
	RubricGrades    []RubricGradeLine `json:"rubric_grades"`
	GradedAt        string            `json:"graded_at"`
}

// ExportRow is one data row of the grade CSV export: a graded submission
// that has both a matching student and a recorded overall grade.
type ExportRow struct {
	StudentUniqueID string
	StudentName     string
	Email           string
	TotalPoints     float64
	OverallFeedback string
	GradedAt        time.Time
}
