package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
)

type RubricService interface {
	CreateRubric(ctx context.Context, req *models.CreateRubricRequest) (int, error)
	ListRubrics(ctx context.Context, assignmentID int) ([]models.Rubric, error)
}

type rubricService struct {
	rubricRepo repository.RubricRepository
	logger     zerolog.Logger
}

func NewRubricService(rubricRepo repository.RubricRepository, logger zerolog.Logger) RubricService {
	return &rubricService{
		rubricRepo: rubricRepo,
		logger:     logger,
	}
}

// CreateRubric adds one scored criterion to an assignment. No check that
// criterion points sum to the assignment's max points; that is left to
// the instructor.
func (s *rubricService) CreateRubric(ctx context.Context, req *models.CreateRubricRequest) (int, error) {
	rubric := &models.Rubric{
		AssignmentID:  req.AssignmentID,
		CriterionName: req.CriterionName,
		MaxPoints:     req.MaxPoints,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.rubricRepo.Create(ctx, rubric)
	if err != nil {
		return 0, fmt.Errorf("failed to create rubric: %w", err)
	}

	s.logger.Info().
		Int("rubric_id", id).
		Int("assignment_id", req.AssignmentID).
		Str("criterion", req.CriterionName).
		Msg("Rubric criterion created")

	return id, nil
}

func (s *rubricService) ListRubrics(ctx context.Context, assignmentID int) ([]models.Rubric, error) {
	rubrics, err := s.rubricRepo.List(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rubrics: %w", err)
	}
	return rubrics, nil
}
