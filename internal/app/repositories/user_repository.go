package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	"github.com/victoriayuechen/tarecruit/internal/pkg/dberrors"
)

// UserRepository handles database operations for identities
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, roles)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, user.Username, user.Password, user.Roles).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyUsed
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, roles, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Roles,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// AddRole appends a role tag to a user unless already present. The grant is
// idempotent: repeating it leaves the role set unchanged.
func (r *UserRepository) AddRole(ctx context.Context, username, role string) error {
	query := `
		UPDATE users
		SET roles = array_append(roles, $2), updated_at = NOW()
		WHERE username = $1 AND NOT ($2 = ANY(roles))
	`

	tag, err := r.db.Exec(ctx, query, username, role)
	if err != nil {
		return fmt.Errorf("error adding role: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Either the user does not exist or already holds the role.
		// Distinguish the two so a bad username still surfaces.
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists); err != nil {
			return fmt.Errorf("error checking user existence: %w", err)
		}
		if !exists {
			return apperrors.ErrUserNotFound
		}
	}

	return nil
}
