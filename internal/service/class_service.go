package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
)

type ClassService interface {
	CreateClass(ctx context.Context, req *models.CreateClassRequest) (int, error)
	ListClasses(ctx context.Context, instructorID int) ([]models.Class, error)
	ListClassStudents(ctx context.Context, classID int) ([]models.EnrolledStudent, error)
	DeleteClass(ctx context.Context, classID int) error
}

type classService struct {
	classRepo      repository.ClassRepository
	enrollmentRepo repository.EnrollmentRepository
	logger         zerolog.Logger
}

func NewClassService(
	classRepo repository.ClassRepository,
	enrollmentRepo repository.EnrollmentRepository,
	logger zerolog.Logger,
) ClassService {
	return &classService{
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

func (s *classService) CreateClass(ctx context.Context, req *models.CreateClassRequest) (int, error) {
	class := &models.Class{
		InstructorID: req.InstructorID,
		ClassCode:    req.ClassCode,
		ClassName:    req.ClassName,
		Description:  req.Description,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("failed to create class: %w", err)
	}

	s.logger.Info().
		Int("class_id", id).
		Str("class_code", req.ClassCode).
		Msg("Class created")

	return id, nil
}

// ListClasses returns every class, or only one instructor's when
// instructorID is non-zero.
func (s *classService) ListClasses(ctx context.Context, instructorID int) ([]models.Class, error) {
	if instructorID != 0 {
		classes, err := s.classRepo.GetByInstructorID(ctx, instructorID)
		if err != nil {
			return nil, fmt.Errorf("failed to list classes: %w", err)
		}
		return classes, nil
	}

	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListClassStudents(ctx context.Context, classID int) ([]models.EnrolledStudent, error) {
	students, err := s.enrollmentRepo.GetStudentsByClassID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list class students: %w", err)
	}
	return students, nil
}

// DeleteClass removes the class row only. Enrollments and assignments
// referencing it are left behind.
func (s *classService) DeleteClass(ctx context.Context, classID int) error {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("failed to get class: %w", err)
	}
	if class == nil {
		return ErrClassNotFound
	}

	if err := s.classRepo.Delete(ctx, classID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}

	s.logger.Info().Int("class_id", classID).Msg("Class deleted")
	return nil
}
