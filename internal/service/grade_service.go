package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
	"github.com/chojny89-del/grade/internal/service/integration"
)

type GradeService interface {
	RecordGrade(ctx context.Context, req *models.CreateGradeRequest) (int, error)
	UpsertOverallGrade(ctx context.Context, req *models.CreateOverallGradeRequest) error
	GetStudentGrades(ctx context.Context, studentID int) ([]models.StudentGradeView, error)
}

type gradeService struct {
	gradeRepo      repository.GradeRepository
	submissionRepo repository.SubmissionRepository
	assignmentRepo repository.AssignmentRepository
	rabbitmqClient integration.RabbitMQClient
	logger         zerolog.Logger
}

func NewGradeService(
	gradeRepo repository.GradeRepository,
	submissionRepo repository.SubmissionRepository,
	assignmentRepo repository.AssignmentRepository,
	rabbitmqClient integration.RabbitMQClient,
	logger zerolog.Logger,
) GradeService {
	return &gradeService{
		gradeRepo:      gradeRepo,
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		rabbitmqClient: rabbitmqClient,
		logger:         logger,
	}
}

// RecordGrade stores one per-criterion grade and flips the parent
// submission to graded. The flip happens on the first grade already, it
// does not wait for the remaining criteria.
func (s *gradeService) RecordGrade(ctx context.Context, req *models.CreateGradeRequest) (int, error) {
	grade := &models.Grade{
		SubmissionID: req.SubmissionID,
		RubricID:     req.RubricID,
		PointsEarned: req.PointsEarned,
		Feedback:     req.Feedback,
		GradedBy:     req.GradedBy,
		GradedAt:     time.Now().UTC(),
	}

	id, err := s.gradeRepo.Create(ctx, grade)
	if err != nil {
		return 0, fmt.Errorf("failed to create grade: %w", err)
	}

	submission, err := s.submissionRepo.GetByID(ctx, req.SubmissionID)
	if err != nil {
		return 0, fmt.Errorf("failed to get submission: %w", err)
	}
	if submission != nil {
		if err := s.submissionRepo.UpdateStatus(ctx, req.SubmissionID, models.SubmissionStatusGraded.String()); err != nil {
			return 0, fmt.Errorf("failed to update submission status: %w", err)
		}
		s.publishGraded(ctx, submission, req.GradedBy)
	}

	s.logger.Info().
		Int("grade_id", id).
		Int("submission_id", req.SubmissionID).
		Msg("Grade recorded")

	return id, nil
}

// UpsertOverallGrade inserts the overall grade for a submission, or
// overwrites the existing one in place, refreshing its timestamp. Calling
// it twice with the same arguments leaves the store unchanged.
func (s *gradeService) UpsertOverallGrade(ctx context.Context, req *models.CreateOverallGradeRequest) error {
	overall := &models.OverallGrade{
		SubmissionID:    req.SubmissionID,
		TotalPoints:     req.TotalPoints,
		LetterGrade:     req.LetterGrade,
		OverallFeedback: req.OverallFeedback,
		GradedBy:        req.GradedBy,
		GradedAt:        time.Now().UTC(),
	}

	existing, err := s.gradeRepo.GetOverallBySubmissionID(ctx, req.SubmissionID)
	if err != nil {
		return fmt.Errorf("failed to check overall grade: %w", err)
	}

	if existing != nil {
		if err := s.gradeRepo.UpdateOverall(ctx, overall); err != nil {
			return fmt.Errorf("failed to update overall grade: %w", err)
		}
	} else {
		if _, err := s.gradeRepo.CreateOverall(ctx, overall); err != nil {
			return fmt.Errorf("failed to create overall grade: %w", err)
		}
	}

	submission, err := s.submissionRepo.GetByID(ctx, req.SubmissionID)
	if err != nil {
		return fmt.Errorf("failed to get submission: %w", err)
	}
	if submission != nil {
		s.publishGraded(ctx, submission, req.GradedBy)
	}

	s.logger.Info().
		Int("submission_id", req.SubmissionID).
		Float64("total_points", req.TotalPoints).
		Msg("Overall grade saved")

	return nil
}

// GetStudentGrades builds the aggregated per-assignment view of every
// graded submission by the student. Overall-grade fields default to zero
// values when the instructor has recorded criterion grades but no overall
// grade yet.
func (s *gradeService) GetStudentGrades(ctx context.Context, studentID int) ([]models.StudentGradeView, error) {
	submissions, err := s.submissionRepo.GetGradedByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get graded submissions: %w", err)
	}

	views := make([]models.StudentGradeView, 0, len(submissions))
	for _, submission := range submissions {
		view := models.StudentGradeView{
			SubmissionID:    submission.SubmissionID,
			AssignmentTitle: "Unknown",
			MaxPoints:       defaultMaxPoints,
		}

		assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assignment: %w", err)
		}
		if assignment != nil {
			view.AssignmentTitle = assignment.Title
			view.MaxPoints = assignment.MaxPoints
		}

		overall, err := s.gradeRepo.GetOverallBySubmissionID(ctx, submission.SubmissionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get overall grade: %w", err)
		}
		if overall != nil {
			view.TotalPoints = overall.TotalPoints
			view.LetterGrade = overall.LetterGrade
			view.OverallFeedback = overall.OverallFeedback
			view.GradedAt = overall.GradedAt.Format(time.RFC3339)
		}

		lines, err := s.gradeRepo.GetRubricLinesBySubmissionID(ctx, submission.SubmissionID, view.MaxPoints)
		if err != nil {
			return nil, fmt.Errorf("failed to get rubric grades: %w", err)
		}
		view.RubricGrades = lines

		views = append(views, view)
	}

	return views, nil
}

// publishGraded emits the graded event if a broker is connected; failure
// to publish is logged, never surfaced to the caller.
func (s *gradeService) publishGraded(ctx context.Context, submission *models.Submission, gradedBy int) {
	if s.rabbitmqClient == nil {
		return
	}

	event := &models.SubmissionGradedEvent{
		SubmissionID: submission.SubmissionID,
		AssignmentID: submission.AssignmentID,
		StudentID:    submission.StudentID,
		GradedBy:     gradedBy,
		Timestamp:    time.Now().Unix(),
	}

	if err := s.rabbitmqClient.PublishSubmissionGraded(ctx, event); err != nil {
		s.logger.Error().Err(err).
			Int("submission_id", submission.SubmissionID).
			Msg("Failed to publish submission graded event")
	}
}
