package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) (int, error)
	GetByID(ctx context.Context, id int) (*models.Assignment, error)
	List(ctx context.Context, classID, instructorID int) ([]models.AssignmentWithClass, error)
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type assignmentRepository struct {
	*PostgresRepository
}

func NewAssignmentRepository(db *sql.DB, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (int, error) {
	query := `
		INSERT INTO assignments (class_id, instructor_id, title, description, due_date, max_points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING assignment_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		assignment.ClassID,
		assignment.InstructorID,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		assignment.MaxPoints,
		assignment.CreatedAt,
	).Scan(&id)

	return id, err
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int) (*models.Assignment, error) {
	query := `
		SELECT assignment_id, class_id, instructor_id, title, description, due_date, max_points, created_at
		FROM assignments
		WHERE assignment_id = $1
	`

	assignment := &models.Assignment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&assignment.AssignmentID,
		&assignment.ClassID,
		&assignment.InstructorID,
		&assignment.Title,
		&assignment.Description,
		&assignment.DueDate,
		&assignment.MaxPoints,
		&assignment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return assignment, err
}

// List returns assignments enriched with class code/name, blank when the
// class row is gone. classID and instructorID filter when non-zero.
func (r *assignmentRepository) List(ctx context.Context, classID, instructorID int) ([]models.AssignmentWithClass, error) {
	query := `
		SELECT
			a.assignment_id, a.class_id,
			COALESCE(c.class_code, '') as class_code,
			COALESCE(c.class_name, '') as class_name,
			a.title, a.description, a.due_date, a.max_points
		FROM assignments a
		LEFT JOIN classes c ON a.class_id = c.class_id
	`

	var args []interface{}
	if classID != 0 {
		args = append(args, classID)
		query += fmt.Sprintf(" WHERE a.class_id = $%d", len(args))
	}
	if instructorID != 0 {
		args = append(args, instructorID)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE a.instructor_id = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND a.instructor_id = $%d", len(args))
		}
	}
	query += " ORDER BY a.assignment_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]models.AssignmentWithClass, 0)
	for rows.Next() {
		var assignment models.AssignmentWithClass
		var dueDate time.Time
		err := rows.Scan(
			&assignment.AssignmentID,
			&assignment.ClassID,
			&assignment.ClassCode,
			&assignment.ClassName,
			&assignment.Title,
			&assignment.Description,
			&dueDate,
			&assignment.MaxPoints,
		)
		if err != nil {
			return nil, err
		}
		assignment.DueDate = dueDate.Format(time.RFC3339)
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

func (r *assignmentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM assignments WHERE assignment_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *assignmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM assignments WHERE assignment_id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}
