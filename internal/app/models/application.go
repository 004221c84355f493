package models

import "time"

// Application defines a TA application based on the 'applications' table.
// Applications are never deleted; the status field carries the lifecycle.
// Only the application intake service mutates these rows.
type Application struct {
	ID         int64             `json:"id" db:"id"`
	CourseCode string            `json:"courseCode" db:"course_code" example:"CSE1305"`
	Username   string            `json:"username" db:"username" example:"jdoe"`
	Grade      float64           `json:"grade" db:"grade" example:"8.5"`
	Status     ApplicationStatus `json:"status" db:"status" example:"Pending"`
	Quarter    string            `json:"quarter" db:"quarter" example:"2026.1"`
	CreatedAt  time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time         `json:"updatedAt" db:"updated_at"`
}
