package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/chojny89-del/grade/internal/models"
	"github.com/chojny89-del/grade/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.PublicUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.PublicUser, error)
}

type authService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.PublicUser, error) {
	taken, err := s.userRepo.ExistsEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	uniqueID, err := s.generateUniqueID(ctx, req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UniqueID:     uniqueID,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.UserID = id

	s.logger.Info().
		Int("user_id", id).
		Str("unique_id", uniqueID).
		Str("role", req.Role).
		Msg("User registered")

	return user.Public(), nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user.Public(), nil
}

// generateUniqueID produces the human-facing identifier: "s" plus 8
// random digits for students, "i" plus 5 for instructors, regenerated
// until it does not collide with a stored one.
func (s *authService) generateUniqueID(ctx context.Context, role string) (string, error) {
	for {
		var uniqueID string
		if role == models.RoleStudent.String() {
			uniqueID = fmt.Sprintf("s%d", 10000000+rand.Intn(90000000))
		} else {
			uniqueID = fmt.Sprintf("i%d", 10000+rand.Intn(90000))
		}

		exists, err := s.userRepo.ExistsUniqueID(ctx, uniqueID)
		if err != nil {
			return "", fmt.Errorf("failed to check unique id: %w", err)
		}
		if !exists {
			return uniqueID, nil
		}
	}
}
