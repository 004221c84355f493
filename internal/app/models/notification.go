package models

import "time"

// Notification defines an inbox item based on the 'notifications' table.
// The inbox is append-only: items are enqueued Pending and flipped to
// Completed when drained, never deleted.
type Notification struct {
	ID        int64              `json:"id" db:"id"`
	Text      string             `json:"text" db:"text"`
	Status    NotificationStatus `json:"status" db:"status" example:"Pending"`
	Username  string             `json:"username" db:"username"`
	CreatedAt time.Time          `json:"createdAt" db:"created_at"`
}
