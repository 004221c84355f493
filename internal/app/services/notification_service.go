package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
)

// NotificationService handles the append-only inbox. Draining reads each
// pending item and acknowledges it individually; there is no transaction
// around the batch.
type NotificationService struct {
	notificationRepo NotificationStore
	logger           zerolog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo NotificationStore, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Enqueue appends a Pending inbox item for the user. No deduplication and
// no inbox size bound.
func (s *NotificationService) Enqueue(ctx context.Context, username, text string) (*models.Notification, error) {
	notification := &models.Notification{
		Text:     text,
		Status:   models.NotificationPending,
		Username: username,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// Drain returns the newline-joined text of the user's pending items and
// flips each of them to Completed, one item at a time. The per-item
// acknowledgement is the contract: a failure partway through returns the
// error together with the text collected so far, with only the already
// processed items flipped. Retrying after such a failure redelivers the
// unflipped remainder.
func (s *NotificationService) Drain(ctx context.Context, username string) (string, error) {
	pending, err := s.notificationRepo.GetPendingByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(pending))
	for _, notification := range pending {
		if err := s.notificationRepo.MarkCompleted(ctx, notification.ID); err != nil {
			s.logger.Error().
				Err(err).
				Int64("notificationId", notification.ID).
				Str("username", username).
				Msg("Failed to acknowledge notification mid-drain")
			return strings.Join(texts, "\n"), err
		}
		texts = append(texts, notification.Text)
	}

	return strings.Join(texts, "\n"), nil
}
