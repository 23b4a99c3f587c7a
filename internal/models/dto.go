package models

// Data Transfer Objects

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=1"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=student instructor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateClassRequest struct {
	InstructorID int    `json:"instructor_id" validate:"required"`
	ClassCode    string `json:"class_code" validate:"required,max=20"`
	ClassName    string `json:"class_name" validate:"required,max=255"`
	Description  string `json:"description"`
}

// EnrollRequest accepts either a student id or a student email; the email
// wins when both are present.
type EnrollRequest struct {
	ClassID      int    `json:"class_id" validate:"required"`
	StudentID    int    `json:"student_id" validate:"required_without=StudentEmail"`
	StudentEmail string `json:"student_email" validate:"omitempty,email"`
}

type CreateAssignmentRequest struct {
	ClassID      int      `json:"class_id" validate:"required"`
	InstructorID int      `json:"instructor_id" validate:"required"`
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description"`
	DueDate      string   `json:"due_date" validate:"required"`
	MaxPoints    *float64 `json:"max_points"`
}

type CreateRubricRequest struct {
	AssignmentID  int     `json:"assignment_id" validate:"required"`
	CriterionName string  `json:"criterion_name" validate:"required,max=255"`
	MaxPoints     float64 `json:"max_points"`
	Description   string  `json:"description"`
}

type CreateSubmissionRequest struct {
	AssignmentID   int    `json:"assignment_id" validate:"required"`
	StudentID      int    `json:"student_id" validate:"required"`
	SubmissionText string `json:"submission_text"`
	FilePath       string `json:"file_path" validate:"max=500"`
}

type CreateGradeRequest struct {
	SubmissionID int     `json:"submission_id" validate:"required"`
	RubricID     *int    `json:"rubric_id"`
	PointsEarned float64 `json:"points_earned"`
	Feedback     string  `json:"feedback"`
	GradedBy     int     `json:"graded_by" validate:"required"`
}

type CreateOverallGradeRequest struct {
	SubmissionID    int     `json:"submission_id" validate:"required"`
	TotalPoints     float64 `json:"total_points"`
	LetterGrade     string  `json:"letter_grade" validate:"max=2"`
	OverallFeedback string  `json:"overall_feedback"`
	GradedBy        int     `json:"graded_by" validate:"required"`
}
