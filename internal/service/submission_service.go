package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
)

type SubmissionService interface {
	CreateSubmission(ctx context.Context, req *models.CreateSubmissionRequest) (int, error)
	ListSubmissions(ctx context.Context, assignmentID, studentID int) ([]models.SubmissionWithDetails, error)
	DeleteSubmission(ctx context.Context, submissionID int) error
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	logger         zerolog.Logger
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// CreateSubmission stores a student's work for an assignment. One
// submission per (assignment, student) pair, enforced by the same
// check-then-insert sequence as enrollment, with the same race.
func (s *submissionService) CreateSubmission(ctx context.Context, req *models.CreateSubmissionRequest) (int, error) {
	existing, err := s.submissionRepo.GetByAssignmentAndStudent(ctx, req.AssignmentID, req.StudentID)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing submission: %w", err)
	}
	if existing != nil {
		return 0, ErrAlreadySubmitted
	}

	submission := &models.Submission{
		AssignmentID:   req.AssignmentID,
		StudentID:      req.StudentID,
		SubmissionText: req.SubmissionText,
		FilePath:       req.FilePath,
		Status:         models.SubmissionStatusSubmitted.String(),
		SubmittedAt:    time.Now().UTC(),
	}

	id, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return 0, fmt.Errorf("failed to create submission: %w", err)
	}

	s.logger.Info().
		Int("submission_id", id).
		Int("assignment_id", req.AssignmentID).
		Int("student_id", req.StudentID).
		Msg("Submission created")

	return id, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, assignmentID, studentID int) ([]models.SubmissionWithDetails, error) {
	submissions, err := s.submissionRepo.List(ctx, assignmentID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// DeleteSubmission refuses once the submission has been graded.
func (s *submissionService) DeleteSubmission(ctx context.Context, submissionID int) error {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("failed to get submission: %w", err)
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}

	if submission.Status == models.SubmissionStatusGraded.String() {
		return ErrSubmissionGraded
	}

	if err := s.submissionRepo.Delete(ctx, submissionID); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	s.logger.Info().Int("submission_id", submissionID).Msg("Submission deleted")
	return nil
}
