package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// ApplicationRepository handles database operations for TA applications
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new application. The caller sets the initial status;
// rows are never deleted afterwards, only status-transitioned.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (course_code, username, grade, status, quarter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		application.CourseCode,
		application.Username,
		application.Grade,
		application.Status,
		application.Quarter,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, course_code, username, grade, status, quarter, created_at, updated_at
		FROM applications
		WHERE id = $1
	`

	var application models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.CourseCode,
		&application.Username,
		&application.Grade,
		&application.Status,
		&application.Quarter,
		&application.CreatedAt,
		&application.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// UpdateStatus transitions an application to a new status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Find retrieves applications filtered by any combination of course code,
// username and status. Empty filter values are ignored.
func (r *ApplicationRepository) Find(ctx context.Context, courseCode, username string, status models.ApplicationStatus) ([]*models.Application, error) {
	builder := r.sb.Select(
		"id", "course_code", "username", "grade", "status", "quarter", "created_at", "updated_at",
	).From("applications").OrderBy("created_at")

	where := squirrel.And{}
	if courseCode != "" {
		where = append(where, squirrel.Eq{"course_code": courseCode})
	}
	if username != "" {
		where = append(where, squirrel.Eq{"username": username})
	}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building application query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		if err := rows.Scan(
			&application.ID,
			&application.CourseCode,
			&application.Username,
			&application.Grade,
			&application.Status,
			&application.Quarter,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
