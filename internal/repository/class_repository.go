package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) (int, error)
	GetByID(ctx context.Context, id int) (*models.Class, error)
	GetAll(ctx context.Context) ([]models.Class, error)
	GetByInstructorID(ctx context.Context, instructorID int) ([]models.Class, error)
	Delete(ctx context.Context, id int) error
}

type classRepository struct {
	*PostgresRepository
}

func NewClassRepository(db *sql.DB, logger zerolog.Logger) ClassRepository {
	return &classRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) (int, error) {
	query := `
		INSERT INTO classes (instructor_id, class_code, class_name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING class_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		class.InstructorID,
		class.ClassCode,
		class.ClassName,
		class.Description,
		class.CreatedAt,
	).Scan(&id)

	return id, err
}

func (r *classRepository) GetByID(ctx context.Context, id int) (*models.Class, error) {
	query := `
		SELECT class_id, instructor_id, class_code, class_name, description, created_at
		FROM classes
		WHERE class_id = $1
	`

	class := &models.Class{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&class.ClassID,
		&class.InstructorID,
		&class.ClassCode,
		&class.ClassName,
		&class.Description,
		&class.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return class, err
}

func (r *classRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	query := `
		SELECT class_id, instructor_id, class_code, class_name, description, created_at
		FROM classes
		ORDER BY class_id
	`

	return r.queryClasses(ctx, query)
}

func (r *classRepository) GetByInstructorID(ctx context.Context, instructorID int) ([]models.Class, error) {
	query := `
		SELECT class_id, instructor_id, class_code, class_name, description, created_at
		FROM classes
		WHERE instructor_id = $1
		ORDER BY class_id
	`

	return r.queryClasses(ctx, query, instructorID)
}

func (r *classRepository) queryClasses(ctx context.Context, query string, args ...interface{}) ([]models.Class, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]models.Class, 0)
	for rows.Next() {
		var class models.Class
		err := rows.Scan(
			&class.ClassID,
			&class.InstructorID,
			&class.ClassCode,
			&class.ClassName,
			&class.Description,
			&class.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	return classes, rows.Err()
}

func (r *classRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM classes WHERE class_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
