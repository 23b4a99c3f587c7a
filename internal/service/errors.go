package service

import "errors"

// Typed errors so the delivery layer can map them to HTTP status codes.
var (
	// Conflicts.
	ErrEmailTaken       = errors.New("email already registered")
	ErrAlreadyEnrolled  = errors.New("student already enrolled")
	ErrAlreadySubmitted = errors.New("assignment already submitted")
	ErrSubmissionGraded = errors.New("cannot delete graded submission")

	// Missing rows.
	ErrStudentNotFound    = errors.New("student not found with this email")
	ErrClassNotFound      = errors.New("class not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")

	// Bad input.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDueDate     = errors.New("invalid due_date format")
)
