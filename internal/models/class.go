package models

import "time"

type Class struct {
	ClassID      int       `json:"class_id" db:"class_id"`
	InstructorID int       `json:"instructor_id" db:"instructor_id"`
	ClassCode    string    `json:"class_code" db:"class_code"`
	ClassName    string    `json:"class_name" db:"class_name"`
	Description  string    `json:"description" db:"description"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

type Enrollment struct {
	EnrollmentID int       `json:"enrollment_id" db:"enrollment_id"`
	ClassID      int       `json:"class_id" db:"class_id"`
	StudentID    int       `json:"student_id" db:"student_id"`
	EnrolledAt   time.Time `json:"enrolled_at" db:"enrolled_at"`
}

// EnrolledStudent is one row of the class roster listing.
type EnrolledStudent struct {
	EnrollmentID int    `json:"enrollment_id" db:"enrollment_id"`
	UserID       int    `json:"user_id" db:"user_id"`
	UniqueID     string `json:"unique_id" db:"unique_id"`
	Email        string `json:"email" db:"email"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
}
