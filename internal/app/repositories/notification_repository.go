package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// NotificationRepository handles database operations for the inbox
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// Create appends an inbox item. No deduplication and no size bound.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (text, status, username)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		notification.Text,
		notification.Status,
		notification.Username,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// GetPendingByUsername retrieves the user's pending inbox items in insertion order
func (r *NotificationRepository) GetPendingByUsername(ctx context.Context, username string) ([]*models.Notification, error) {
	query := `
		SELECT id, text, status, username, created_at
		FROM notifications
		WHERE username = $1 AND status = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, username, models.NotificationPending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.Text,
			&notification.Status,
			&notification.Username,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkCompleted flips a single inbox item to Completed
func (r *NotificationRepository) MarkCompleted(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET status = $2 WHERE id = $1`,
		id, models.NotificationCompleted,
	)
	if err != nil {
		return fmt.Errorf("error completing notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}
