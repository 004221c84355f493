package dto

// CreateNotificationRequest enqueues an inbox item for a user
type CreateNotificationRequest struct {
	Username string `json:"username" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// NotificationTextResponse carries the newline-joined text of the drained
// pending notifications. Empty when the inbox had nothing pending.
type NotificationTextResponse struct {
	Text string `json:"text"`
}
