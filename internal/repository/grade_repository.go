package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type GradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) (int, error)
	GetRubricLinesBySubmissionID(ctx context.Context, submissionID int, fallbackMaxPoints float64) ([]models.RubricGradeLine, error)
	GetOverallBySubmissionID(ctx context.Context, submissionID int) (*models.OverallGrade, error)
	CreateOverall(ctx context.Context, grade *models.OverallGrade) (int, error)
	UpdateOverall(ctx context.Context, grade *models.OverallGrade) error
	GetExportRowsByAssignmentID(ctx context.Context, assignmentID int) ([]models.ExportRow, error)
}

type gradeRepository struct {
	*PostgresRepository
}

func NewGradeRepository(db *sql.DB, logger zerolog.Logger) GradeRepository {
	return &gradeRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) (int, error) {
	query := `
		INSERT INTO grades (submission_id, rubric_id, points_earned, feedback, graded_by, graded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING grade_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		grade.SubmissionID,
		grade.RubricID,
		grade.PointsEarned,
		grade.Feedback,
		grade.GradedBy,
		grade.GradedAt,
	).Scan(&id)

	return id, err
}

// GetRubricLinesBySubmissionID returns every per-criterion grade of a
// submission paired with its rubric. Grades without a rubric are labeled
// "Overall" and carry the assignment's max points instead.
func (r *gradeRepository) GetRubricLinesBySubmissionID(ctx context.Context, submissionID int, fallbackMaxPoints float64) ([]models.RubricGradeLine, error) {
	query := `
		SELECT
			COALESCE(ru.criterion_name, 'Overall') as criterion_name,
			COALESCE(ru.max_points, $2) as max_points,
			g.points_earned,
			g.feedback
		FROM grades g
		LEFT JOIN rubrics ru ON g.rubric_id = ru.rubric_id
		WHERE g.submission_id = $1
		ORDER BY g.grade_id
	`

	rows, err := r.db.QueryContext(ctx, query, submissionID, fallbackMaxPoints)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]models.RubricGradeLine, 0)
	for rows.Next() {
		var line models.RubricGradeLine
		err := rows.Scan(
			&line.CriterionName,
			&line.MaxPoints,
			&line.PointsEarned,
			&line.Feedback,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (r *gradeRepository) GetOverallBySubmissionID(ctx context.Context, submissionID int) (*models.OverallGrade, error) {
	query := `
		SELECT overall_grade_id, submission_id, total_points, letter_grade, overall_feedback, graded_by, graded_at
		FROM overall_grades
		WHERE submission_id = $1
	`

	grade := &models.OverallGrade{}
	err := r.db.QueryRowContext(ctx, query, submissionID).Scan(
		&grade.OverallGradeID,
		&grade.SubmissionID,
		&grade.TotalPoints,
		&grade.LetterGrade,
		&grade.OverallFeedback,
		&grade.GradedBy,
		&grade.GradedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return grade, err
}

func (r *gradeRepository) CreateOverall(ctx context.Context, grade *models.OverallGrade) (int, error) {
	query := `
		INSERT INTO overall_grades (submission_id, total_points, letter_grade, overall_feedback, graded_by, graded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING overall_grade_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		grade.SubmissionID,
		grade.TotalPoints,
		grade.LetterGrade,
		grade.OverallFeedback,
		grade.GradedBy,
		grade.GradedAt,
	).Scan(&id)

	return id, err
}

func (r *gradeRepository) UpdateOverall(ctx context.Context, grade *models.OverallGrade) error {
	query := `
		UPDATE overall_grades
		SET total_points = $1, letter_grade = $2, overall_feedback = $3, graded_by = $4, graded_at = $5
		WHERE submission_id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		grade.TotalPoints,
		grade.LetterGrade,
		grade.OverallFeedback,
		grade.GradedBy,
		grade.GradedAt,
		grade.SubmissionID,
	)

	return err
}

// GetExportRowsByAssignmentID returns one row per graded submission that
// still has its student row and a recorded overall grade; the inner joins
// skip the rest.
func (r *gradeRepository) GetExportRowsByAssignmentID(ctx context.Context, assignmentID int) ([]models.ExportRow, error) {
	query := `
		SELECT
			u.unique_id,
			u.first_name || ' ' || u.last_name as student_name,
			u.email,
			og.total_points,
			COALESCE(og.overall_feedback, '') as overall_feedback,
			og.graded_at
		FROM submissions s
		JOIN users u ON s.student_id = u.user_id
		JOIN overall_grades og ON s.submission_id = og.submission_id
		WHERE s.assignment_id = $1 AND s.status = 'graded'
		ORDER BY s.submission_id
	`

	rows, err := r.db.QueryContext(ctx, query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exportRows := make([]models.ExportRow, 0)
	for rows.Next() {
		var row models.ExportRow
		err := rows.Scan(
			&row.StudentUniqueID,
			&row.StudentName,
			&row.Email,
			&row.TotalPoints,
			&row.OverallFeedback,
			&row.GradedAt,
		)
		if err != nil {
			return nil, err
		}
		exportRows = append(exportRows, row)
	}

	return exportRows, rows.Err()
}
