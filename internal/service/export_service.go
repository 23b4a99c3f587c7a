package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/repository"
)

var exportHeader = []string{
	"Student ID", "Student Name", "Email", "Total Points", "Max Points",
	"Percentage", "Overall Feedback", "Graded At",
}

type ExportService interface {
	ExportGradesCSV(ctx context.Context, assignmentID int) (filename string, data []byte, err error)
}

type exportService struct {
	gradeRepo      repository.GradeRepository
	assignmentRepo repository.AssignmentRepository
	logger         zerolog.Logger
}

func NewExportService(
	gradeRepo repository.GradeRepository,
	assignmentRepo repository.AssignmentRepository,
	logger zerolog.Logger,
) ExportService {
	return &exportService{
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// ExportGradesCSV renders every graded submission of an assignment that
// has a student and an overall grade as one CSV row. Percentage is
// total/max rounded to one decimal, 0 when max points is not positive.
func (s *exportService) ExportGradesCSV(ctx context.Context, assignmentID int) (string, []byte, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		return "", nil, ErrAssignmentNotFound
	}

	rows, err := s.gradeRepo.GetExportRowsByAssignmentID(ctx, assignmentID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get export rows: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return "", nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		percentage := 0.0
		if assignment.MaxPoints > 0 {
			percentage = row.TotalPoints / assignment.MaxPoints * 100
		}

		record := []string{
			row.StudentUniqueID,
			row.StudentName,
			row.Email,
			formatPoints(row.TotalPoints),
			formatPoints(assignment.MaxPoints),
			fmt.Sprintf("%.1f%%", percentage),
			row.OverallFeedback,
			row.GradedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return "", nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("grades_%d_%s.csv",
		assignment.ClassID,
		strings.ReplaceAll(assignment.Title, " ", "_"),
	)

	s.logger.Info().
		Int("assignment_id", assignmentID).
		Int("rows", len(rows)).
		Msg("Grades exported")

	return filename, buf.Bytes(), nil
}

// formatPoints renders a point value with a decimal part always
// present: 87.5 stays 87.5, 100 becomes 100.0.
func formatPoints(points float64) string {
	s := strconv.FormatFloat(points, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
