package models

// SubmissionGradedEvent is published to the broker whenever a grade is
// recorded against a submission. Consumers (notification jobs, analytics)
// are outside this service.
type SubmissionGradedEvent struct {
	SubmissionID int   `json:"submission_id"`
	AssignmentID int   `json:"assignment_id"`
	StudentID    int   `json:"student_id"`
	GradedBy     int   `json:"graded_by"`
	Timestamp    int64 `json:"timestamp"`
}
