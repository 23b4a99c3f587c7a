package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, req *models.EnrollRequest) (int, error)
	Unenroll(ctx context.Context, enrollmentID int) error
	ListStudentClasses(ctx context.Context, studentID int) ([]models.Class, error)
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	logger         zerolog.Logger
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Enroll adds a student to a class, resolving a student email to a
// student-role user first when one is given. The duplicate check and the
// insert are separate statements; two identical concurrent requests can
// both pass the check and both insert.
func (s *enrollmentService) Enroll(ctx context.Context, req *models.EnrollRequest) (int, error) {
	studentID := req.StudentID
	if req.StudentEmail != "" {
		student, err := s.userRepo.GetByEmailAndRole(ctx, req.StudentEmail, models.RoleStudent.String())
		if err != nil {
			return 0, fmt.Errorf("failed to look up student: %w", err)
		}
		if student == nil {
			return 0, ErrStudentNotFound
		}
		studentID = student.UserID
	}

	existing, err := s.enrollmentRepo.GetByClassAndStudent(ctx, req.ClassID, studentID)
	if err != nil {
		return 0, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if existing != nil {
		return 0, ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{
		ClassID:    req.ClassID,
		StudentID:  studentID,
		EnrolledAt: time.Now().UTC(),
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		return 0, fmt.Errorf("failed to create enrollment: %w", err)
	}

	s.logger.Info().
		Int("enrollment_id", id).
		Int("class_id", req.ClassID).
		Int("student_id", studentID).
		Msg("Student enrolled")

	return id, nil
}

func (s *enrollmentService) Unenroll(ctx context.Context, enrollmentID int) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return fmt.Errorf("failed to get enrollment: %w", err)
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}

	if err := s.enrollmentRepo.Delete(ctx, enrollmentID); err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}

	s.logger.Info().Int("enrollment_id", enrollmentID).Msg("Student unenrolled")
	return nil
}

func (s *enrollmentService) ListStudentClasses(ctx context.Context, studentID int) ([]models.Class, error) {
	classes, err := s.enrollmentRepo.GetClassesByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list student classes: %w", err)
	}
	return classes, nil
}
