package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chojny89-del/grade/internal/models"
)

func TestAssignmentService_CreateAssignment(t *testing.T) {
	t.Run("accepts supported due date layouts", func(t *testing.T) {
		repo := newFakeAssignmentRepo()
		svc := NewAssignmentService(repo, zerolog.Nop())

		for _, dueDate := range []string{
			"2026-09-15T23:59:00Z",
			"2026-09-15T23:59:00",
			"2026-09-15",
		} {
			_, err := svc.CreateAssignment(context.Background(), &models.CreateAssignmentRequest{
				ClassID:      1,
				InstructorID: 2,
				Title:        "Essay",
				DueDate:      dueDate,
			})
			assert.NoError(t, err, "due date %q", dueDate)
		}
	})

	t.Run("rejects an unparseable due date", func(t *testing.T) {
		svc := NewAssignmentService(newFakeAssignmentRepo(), zerolog.Nop())

		_, err := svc.CreateAssignment(context.Background(), &models.CreateAssignmentRequest{
			ClassID:      1,
			InstructorID: 2,
			Title:        "Essay",
			DueDate:      "15/09/2026",
		})
		assert.True(t, errors.Is(err, ErrInvalidDueDate))
	})

	t.Run("max points defaults to 100", func(t *testing.T) {
		repo := newFakeAssignmentRepo()
		svc := NewAssignmentService(repo, zerolog.Nop())

		id, err := svc.CreateAssignment(context.Background(), &models.CreateAssignmentRequest{
			ClassID:      1,
			InstructorID: 2,
			Title:        "Essay",
			DueDate:      "2026-09-15",
		})
		require.NoError(t, err)

		stored, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, float64(100), stored.MaxPoints)
	})

	t.Run("explicit zero max points is kept", func(t *testing.T) {
		repo := newFakeAssignmentRepo()
		svc := NewAssignmentService(repo, zerolog.Nop())

		maxPoints := 0.0
		id, err := svc.CreateAssignment(context.Background(), &models.CreateAssignmentRequest{
			ClassID:      1,
			InstructorID: 2,
			Title:        "Survey",
			DueDate:      "2026-09-15",
			MaxPoints:    &maxPoints,
		})
		require.NoError(t, err)

		stored, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 0.0, stored.MaxPoints)
	})

	t.Run("explicit max points is kept", func(t *testing.T) {
		repo := newFakeAssignmentRepo()
		svc := NewAssignmentService(repo, zerolog.Nop())

		maxPoints := 50.0
		id, err := svc.CreateAssignment(context.Background(), &models.CreateAssignmentRequest{
			ClassID:      1,
			InstructorID: 2,
			Title:        "Quiz",
			DueDate:      "2026-09-15",
			MaxPoints:    &maxPoints,
		})
		require.NoError(t, err)

		stored, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 50.0, stored.MaxPoints)
	})
}

func TestAssignmentService_ListAssignments(t *testing.T) {
	repo := newFakeAssignmentRepo()
	svc := NewAssignmentService(repo, zerolog.Nop())

	for _, a := range []models.CreateAssignmentRequest{
		{ClassID: 1, InstructorID: 2, Title: "Essay", DueDate: "2026-09-15"},
		{ClassID: 1, InstructorID: 3, Title: "Quiz", DueDate: "2026-09-20"},
		{ClassID: 2, InstructorID: 2, Title: "Lab", DueDate: "2026-09-25"},
	} {
		req := a
		_, err := svc.CreateAssignment(context.Background(), &req)
		require.NoError(t, err)
	}

	byClass, err := svc.ListAssignments(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, byClass, 2)

	byInstructor, err := svc.ListAssignments(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, byInstructor, 2)

	all, err := svc.ListAssignments(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAssignmentService_DeleteAssignment(t *testing.T) {
	repo := newFakeAssignmentRepo()
	svc := NewAssignmentService(repo, zerolog.Nop())

	id, err := svc.CreateAssignment(context.Background(), &models.CreateAssignmentRequest{
		ClassID:      1,
		InstructorID: 2,
		Title:        "Essay",
		DueDate:      "2026-09-15",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAssignment(context.Background(), id))

	err = svc.DeleteAssignment(context.Background(), id)
	assert.True(t, errors.Is(err, ErrAssignmentNotFound))
}
