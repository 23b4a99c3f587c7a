package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chojny89-del/grade/internal/models"
)

type exportFixture struct {
	*gradeFixture
	export ExportService
}

func newExportFixture() *exportFixture {
	f := newGradeFixture()
	return &exportFixture{
		gradeFixture: f,
		export:       NewExportService(f.grades, f.assignments, zerolog.Nop()),
	}
}

func (f *exportFixture) gradedSubmission(t *testing.T, assignmentID int, student *models.User, total float64, feedback string, gradedAt time.Time) {
	t.Helper()
	studentID, err := f.users.Create(context.Background(), student)
	require.NoError(t, err)

	submissionID, err := f.submissions.Create(context.Background(), &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Status:       models.SubmissionStatusGraded.String(),
	})
	require.NoError(t, err)

	_, err = f.grades.CreateOverall(context.Background(), &models.OverallGrade{
		SubmissionID:    submissionID,
		TotalPoints:     total,
		OverallFeedback: feedback,
		GradedAt:        gradedAt,
	})
	require.NoError(t, err)
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportService_ExportGradesCSV(t *testing.T) {
	t.Run("unknown assignment", func(t *testing.T) {
		f := newExportFixture()
		_, _, err := f.export.ExportGradesCSV(context.Background(), 404)
		assert.True(t, errors.Is(err, ErrAssignmentNotFound))
	})

	t.Run("header only when nothing is graded", func(t *testing.T) {
		f := newExportFixture()
		assignmentID, err := f.assignments.Create(context.Background(), &models.Assignment{
			ClassID:   3,
			Title:     "Final Project",
			MaxPoints: 100,
		})
		require.NoError(t, err)

		filename, data, err := f.export.ExportGradesCSV(context.Background(), assignmentID)
		require.NoError(t, err)

		assert.Equal(t, "grades_3_Final_Project.csv", filename)

		records := parseCSV(t, data)
		require.Len(t, records, 1)
		assert.Equal(t, []string{
			"Student ID", "Student Name", "Email", "Total Points", "Max Points",
			"Percentage", "Overall Feedback", "Graded At",
		}, records[0])
	})

	t.Run("one row per graded submission with formatted percentage", func(t *testing.T) {
		f := newExportFixture()
		assignmentID, err := f.assignments.Create(context.Background(), &models.Assignment{
			ClassID:   3,
			Title:     "Final Project",
			MaxPoints: 100,
		})
		require.NoError(t, err)

		gradedAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
		f.gradedSubmission(t, assignmentID, &models.User{
			UniqueID:  "s12345678",
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Nguyen",
			Role:      "student",
		}, 87.5, "solid work", gradedAt)

		_, data, err := f.export.ExportGradesCSV(context.Background(), assignmentID)
		require.NoError(t, err)

		records := parseCSV(t, data)
		require.Len(t, records, 2)
		assert.Equal(t, []string{
			"s12345678", "Alice Nguyen", "alice@example.com",
			"87.5", "100.0", "87.5%", "solid work", "2026-03-10 14:30:00",
		}, records[1])
	})

	t.Run("zero max points yields zero percentage", func(t *testing.T) {
		f := newExportFixture()
		assignmentID, err := f.assignments.Create(context.Background(), &models.Assignment{
			ClassID:   3,
			Title:     "Survey",
			MaxPoints: 0,
		})
		require.NoError(t, err)

		f.gradedSubmission(t, assignmentID, &models.User{
			UniqueID:  "s00000001",
			Email:     "bob@example.com",
			FirstName: "Bob",
			LastName:  "Marsh",
			Role:      "student",
		}, 10, "", time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC))

		_, data, err := f.export.ExportGradesCSV(context.Background(), assignmentID)
		require.NoError(t, err)

		records := parseCSV(t, data)
		require.Len(t, records, 2)
		assert.Equal(t, "10.0", records[1][3])
		assert.Equal(t, "0.0", records[1][4])
		assert.Equal(t, "0.0%", records[1][5])
	})

	t.Run("ungraded submissions are skipped", func(t *testing.T) {
		f := newExportFixture()
		assignmentID, err := f.assignments.Create(context.Background(), &models.Assignment{
			ClassID:   3,
			Title:     "Quiz",
			MaxPoints: 10,
		})
		require.NoError(t, err)

		_, err = f.submissions.Create(context.Background(), &models.Submission{
			AssignmentID: assignmentID,
			StudentID:    1,
			Status:       models.SubmissionStatusSubmitted.String(),
		})
		require.NoError(t, err)

		_, data, err := f.export.ExportGradesCSV(context.Background(), assignmentID)
		require.NoError(t, err)

		records := parseCSV(t, data)
		assert.Len(t, records, 1)
	})
}
