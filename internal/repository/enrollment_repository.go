package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (int, error)
	GetByID(ctx context.Context, id int) (*models.Enrollment, error)
	GetByClassAndStudent(ctx context.Context, classID, studentID int) (*models.Enrollment, error)
	GetStudentsByClassID(ctx context.Context, classID int) ([]models.EnrolledStudent, error)
	GetClassesByStudentID(ctx context.Context, studentID int) ([]models.Class, error)
	Delete(ctx context.Context, id int) error
}

type enrollmentRepository struct {
	*PostgresRepository
}

func NewEnrollmentRepository(db *sql.DB, logger zerolog.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int, error) {
	query := `
		INSERT INTO enrollments (class_id, student_id, enrolled_at)
		VALUES ($1, $2, $3)
		RETURNING enrollment_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		enrollment.ClassID,
		enrollment.StudentID,
		enrollment.EnrolledAt,
	).Scan(&id)

	return id, err
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int) (*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, class_id, student_id, enrolled_at
		FROM enrollments
		WHERE enrollment_id = $1
	`

	enrollment := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&enrollment.EnrollmentID,
		&enrollment.ClassID,
		&enrollment.StudentID,
		&enrollment.EnrolledAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return enrollment, err
}

func (r *enrollmentRepository) GetByClassAndStudent(ctx context.Context, classID, studentID int) (*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, class_id, student_id, enrolled_at
		FROM enrollments
		WHERE class_id = $1 AND student_id = $2
	`

	enrollment := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx, query, classID, studentID).Scan(
		&enrollment.EnrollmentID,
		&enrollment.ClassID,
		&enrollment.StudentID,
		&enrollment.EnrolledAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return enrollment, err
}

func (r *enrollmentRepository) GetStudentsByClassID(ctx context.Context, classID int) ([]models.EnrolledStudent, error) {
	query := `
		SELECT e.enrollment_id, u.user_id, u.unique_id, u.email, u.first_name, u.last_name
		FROM enrollments e
		JOIN users u ON e.student_id = u.user_id
		WHERE e.class_id = $1
		ORDER BY e.enrollment_id
	`

	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.EnrolledStudent, 0)
	for rows.Next() {
		var student models.EnrolledStudent
		err := rows.Scan(
			&student.EnrollmentID,
			&student.UserID,
			&student.UniqueID,
			&student.Email,
			&student.FirstName,
			&student.LastName,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

func (r *enrollmentRepository) GetClassesByStudentID(ctx context.Context, studentID int) ([]models.Class, error) {
	query := `
		SELECT c.class_id, c.instructor_id, c.class_code, c.class_name, c.description, c.created_at
		FROM enrollments e
		JOIN classes c ON e.class_id = c.class_id
		WHERE e.student_id = $1
		ORDER BY e.enrollment_id
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
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

func (r *enrollmentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM enrollments WHERE enrollment_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
