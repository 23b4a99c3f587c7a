package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type RubricRepository interface {
	Create(ctx context.Context, rubric *models.Rubric) (int, error)
	GetByID(ctx context.Context, id int) (*models.Rubric, error)
	List(ctx context.Context, assignmentID int) ([]models.Rubric, error)
}

type rubricRepository struct {
	*PostgresRepository
}

func NewRubricRepository(db *sql.DB, logger zerolog.Logger) RubricRepository {
	return &rubricRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *rubricRepository) Create(ctx context.Context, rubric *models.Rubric) (int, error) {
	query := `
		INSERT INTO rubrics (assignment_id, criterion_name, max_points, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING rubric_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		rubric.AssignmentID,
		rubric.CriterionName,
		rubric.MaxPoints,
		rubric.Description,
		rubric.CreatedAt,
	).Scan(&id)

	return id, err
}

func (r *rubricRepository) GetByID(ctx context.Context, id int) (*models.Rubric, error) {
	query := `
		SELECT rubric_id, assignment_id, criterion_name, max_points, description, created_at
		FROM rubrics
		WHERE rubric_id = $1
	`

	rubric := &models.Rubric{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rubric.RubricID,
		&rubric.AssignmentID,
		&rubric.CriterionName,
		&rubric.MaxPoints,
		&rubric.Description,
		&rubric.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return rubric, err
}

// List returns every criterion, or only one assignment's when
// assignmentID is non-zero.
func (r *rubricRepository) List(ctx context.Context, assignmentID int) ([]models.Rubric, error) {
	query := `
		SELECT rubric_id, assignment_id, criterion_name, max_points, description, created_at
		FROM rubrics
	`

	var args []interface{}
	if assignmentID != 0 {
		query += " WHERE assignment_id = $1"
		args = append(args, assignmentID)
	}
	query += " ORDER BY rubric_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rubrics := make([]models.Rubric, 0)
	for rows.Next() {
		var rubric models.Rubric
		err := rows.Scan(
			&rubric.RubricID,
			&rubric.AssignmentID,
			&rubric.CriterionName,
			&rubric.MaxPoints,
			&rubric.Description,
			&rubric.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		rubrics = append(rubrics, rubric)
	}

	return rubrics, rows.Err()
}
