package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
)

// dueDateLayouts are tried in order when parsing an assignment due date.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const defaultMaxPoints = 100

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (int, error)
	ListAssignments(ctx context.Context, classID, instructorID int) ([]models.AssignmentWithClass, error)
	DeleteAssignment(ctx context.Context, assignmentID int) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	logger         zerolog.Logger
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (int, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return 0, ErrInvalidDueDate
	}

	maxPoints := float64(defaultMaxPoints)
	if req.MaxPoints != nil {
		maxPoints = *req.MaxPoints
	}

	assignment := &models.Assignment{
		ClassID:      req.ClassID,
		InstructorID: req.InstructorID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      dueDate,
		MaxPoints:    maxPoints,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return 0, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info().
		Int("assignment_id", id).
		Int("class_id", req.ClassID).
		Str("title", req.Title).
		Msg("Assignment created")

	return id, nil
}

func (s *assignmentService) ListAssignments(ctx context.Context, classID, instructorID int) ([]models.AssignmentWithClass, error) {
	assignments, err := s.assignmentRepo.List(ctx, classID, instructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, assignmentID int) error {
	exists, err := s.assignmentRepo.Exists(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to check assignment: %w", err)
	}
	if !exists {
		return ErrAssignmentNotFound
	}

	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.logger.Info().Int("assignment_id", assignmentID).Msg("Assignment deleted")
	return nil
}

func parseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable due date %q", value)
}
