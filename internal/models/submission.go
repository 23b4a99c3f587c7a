package models

import "time"

type Submission struct {
	SubmissionID   int       `json:"submission_id" db:"submission_id"`
	AssignmentID   int       `json:"assignment_id" db:"assignment_id"`
	StudentID      int       `json:"student_id" db:"student_id"`
	SubmissionText string    `json:"submission_text" db:"submission_text"`
	FilePath       string    `json:"file_path" db:"file_path"`
	Status         string    `json:"status" db:"status"` // submitted, graded
	SubmittedAt    time.Time `json:"submitted_at" db:"submitted_at"`
}

type SubmissionWithDetails struct {
	SubmissionID    int    `json:"submission_id" db:"submission_id"`
	AssignmentID    int    `json:"assignment_id" db:"assignment_id"`
	AssignmentTitle string `json:"assignment_title" db:"assignment_title"`
	StudentID       int    `json:"student_id" db:"student_id"`
	StudentName     string `json:"student_name" db:"student_name"`
	StudentUniqueID string `json:"student_unique_id" db:"student_unique_id"`
	SubmissionText  string `json:"submission_text" db:"submission_text"`
	FilePath        string `json:"file_path" db:"file_path"`
	Status          string `json:"status" db:"status"`
	SubmittedAt     string `json:"submitted_at" db:"submitted_at"`
}

type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)

func (s SubmissionStatus) String() string {
	return string(s)
}
