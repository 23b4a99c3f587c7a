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

func TestClassService_CreateClass(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, newFakeEnrollmentRepo(classes), zerolog.Nop())

	id, err := svc.CreateClass(context.Background(), &models.CreateClassRequest{
		InstructorID: 2,
		ClassCode:    "CS101",
		ClassName:    "Intro to CS",
		Description:  "Fundamentals",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	stored, err := classes.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "CS101", stored.ClassCode)
	assert.Equal(t, 2, stored.InstructorID)
}

func TestClassService_ListClasses(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, newFakeEnrollmentRepo(classes), zerolog.Nop())

	for _, req := range []models.CreateClassRequest{
		{InstructorID: 2, ClassCode: "CS101", ClassName: "Intro to CS"},
		{InstructorID: 3, ClassCode: "MATH101", ClassName: "Calculus"},
	} {
		r := req
		_, err := svc.CreateClass(context.Background(), &r)
		require.NoError(t, err)
	}

	all, err := svc.ListClasses(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListClasses(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "CS101", mine[0].ClassCode)
}

func TestClassService_ListClassStudents(t *testing.T) {
	classes := newFakeClassRepo()
	enrollments := newFakeEnrollmentRepo(classes)
	svc := NewClassService(classes, enrollments, zerolog.Nop())

	classID, err := svc.CreateClass(context.Background(), &models.CreateClassRequest{
		InstructorID: 2,
		ClassCode:    "CS101",
		ClassName:    "Intro to CS",
	})
	require.NoError(t, err)

	_, err = enrollments.Create(context.Background(), &models.Enrollment{ClassID: classID, StudentID: 7})
	require.NoError(t, err)
	_, err = enrollments.Create(context.Background(), &models.Enrollment{ClassID: classID, StudentID: 8})
	require.NoError(t, err)

	students, err := svc.ListClassStudents(context.Background(), classID)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestClassService_DeleteClass(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, newFakeEnrollmentRepo(classes), zerolog.Nop())

	id, err := svc.CreateClass(context.Background(), &models.CreateClassRequest{
		InstructorID: 2,
		ClassCode:    "CS101",
		ClassName:    "Intro to CS",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClass(context.Background(), id))

	err = svc.DeleteClass(context.Background(), id)
	assert.True(t, errors.Is(err, ErrClassNotFound))
}
