package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	ExistsUniqueID(ctx context.Context, uniqueID string) (bool, error)
}

type userRepository struct {
	*PostgresRepository
}

func NewUserRepository(db *sql.DB, logger zerolog.Logger) UserRepository {
	return &userRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (int, error) {
	query := `
		INSERT INTO users (unique_id, email, password_hash, first_name, last_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		user.UniqueID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Role,
		user.CreatedAt,
	).Scan(&id)

	return id, err
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT user_id, unique_id, email, password_hash, first_name, last_name, role, created_at
		FROM users
		WHERE user_id = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.UserID,
		&user.UniqueID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, unique_id, email, password_hash, first_name, last_name, role, created_at
		FROM users
		WHERE email = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.UserID,
		&user.UniqueID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *userRepository) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	query := `
		SELECT user_id, unique_id, email, password_hash, first_name, last_name, role, created_at
		FROM users
		WHERE email = $1 AND role = $2
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email, role).Scan(
		&user.UserID,
		&user.UniqueID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *userRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *userRepository) ExistsUniqueID(ctx context.Context, uniqueID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE unique_id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, uniqueID).Scan(&exists)
	return exists, err
}
