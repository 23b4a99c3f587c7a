package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) (int, error)
	GetByID(ctx context.Context, id int) (*models.Submission, error)
	GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID int) (*models.Submission, error)
	List(ctx context.Context, assignmentID, studentID int) ([]models.SubmissionWithDetails, error)
	GetGradedByStudentID(ctx context.Context, studentID int) ([]models.Submission, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

type submissionRepository struct {
	*PostgresRepository
}

func NewSubmissionRepository(db *sql.DB, logger zerolog.Logger) SubmissionRepository {
	return &submissionRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) (int, error) {
	query := `
		INSERT INTO submissions (assignment_id, student_id, submission_text, file_path, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING submission_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		submission.AssignmentID,
		submission.StudentID,
		submission.SubmissionText,
		submission.FilePath,
		submission.Status,
		submission.SubmittedAt,
	).Scan(&id)

	return id, err
}

func (r *submissionRepository) GetByID(ctx context.Context, id int) (*models.Submission, error) {
	query := `
		SELECT submission_id, assignment_id, student_id, submission_text, file_path, status, submitted_at
		FROM submissions
		WHERE submission_id = $1
	`

	submission := &models.Submission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&submission.SubmissionID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.SubmissionText,
		&submission.FilePath,
		&submission.Status,
		&submission.SubmittedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return submission, err
}

func (r *submissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID int) (*models.Submission, error) {
	query := `
		SELECT submission_id, assignment_id, student_id, submission_text, file_path, status, submitted_at
		FROM submissions
		WHERE assignment_id = $1 AND student_id = $2
	`

	submission := &models.Submission{}
	err := r.db.QueryRowContext(ctx, query, assignmentID, studentID).Scan(
		&submission.SubmissionID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.SubmissionText,
		&submission.FilePath,
		&submission.Status,
		&submission.SubmittedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return submission, err
}

// List returns submissions enriched with assignment title and student
// name/external id. Referenced rows may have been deleted, hence the
// LEFT JOINs with "Unknown"/empty fallbacks. assignmentID and studentID
// filter when non-zero.
func (r *submissionRepository) List(ctx context.Context, assignmentID, studentID int) ([]models.SubmissionWithDetails, error) {
	query := `
		SELECT
			s.submission_id, s.assignment_id,
			COALESCE(a.title, 'Unknown') as assignment_title,
			s.student_id,
			COALESCE(u.first_name || ' ' || u.last_name, 'Unknown') as student_name,
			COALESCE(u.unique_id, '') as student_unique_id,
			s.submission_text, s.file_path, s.status, s.submitted_at
		FROM submissions s
		LEFT JOIN assignments a ON s.assignment_id = a.assignment_id
		LEFT JOIN users u ON s.student_id = u.user_id
	`

	var args []interface{}
	if assignmentID != 0 {
		args = append(args, assignmentID)
		query += fmt.Sprintf(" WHERE s.assignment_id = $%d", len(args))
	}
	if studentID != 0 {
		args = append(args, studentID)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE s.student_id = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND s.student_id = $%d", len(args))
		}
	}
	query += " ORDER BY s.submission_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]models.SubmissionWithDetails, 0)
	for rows.Next() {
		var submission models.SubmissionWithDetails
		var submittedAt time.Time
		err := rows.Scan(
			&submission.SubmissionID,
			&submission.AssignmentID,
			&submission.AssignmentTitle,
			&submission.StudentID,
			&submission.StudentName,
			&submission.StudentUniqueID,
			&submission.SubmissionText,
			&submission.FilePath,
			&submission.Status,
			&submittedAt,
		)
		if err != nil {
			return nil, err
		}
		submission.SubmittedAt = submittedAt.Format(time.RFC3339)
		submissions = append(submissions, submission)
	}

	return submissions, rows.Err()
}

func (r *submissionRepository) GetGradedByStudentID(ctx context.Context, studentID int) ([]models.Submission, error) {
	query := `
		SELECT submission_id, assignment_id, student_id, submission_text, file_path, status, submitted_at
		FROM submissions
		WHERE student_id = $1 AND status = 'graded'
		ORDER BY submission_id
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]models.Submission, 0)
	for rows.Next() {
		var submission models.Submission
		err := rows.Scan(
			&submission.SubmissionID,
			&submission.AssignmentID,
			&submission.StudentID,
			&submission.SubmissionText,
			&submission.FilePath,
			&submission.Status,
			&submission.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, rows.Err()
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE submissions SET status = $1 WHERE submission_id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *submissionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM submissions WHERE submission_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
