package dto

import "time"

// CreateCourseRequest represents a new course entry
type CreateCourseRequest struct {
	Code             string     `json:"courseCode" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	Quarter          string     `json:"quarter" binding:"required"`
	NumberOfStudents int        `json:"numberOfStudents" binding:"min=0"`
	IsOpen           bool       `json:"isOpen"`
	Duration         int        `json:"duration" binding:"min=0"`
	NumberOfTas      int        `json:"numberOfTas" binding:"min=0"`
	StudentTaRatio   int        `json:"studentTaRatio" binding:"min=0"`
	StartDate        *time.Time `json:"startDate,omitempty"`
}

// UpdateCourseRequest represents mutable course fields
type UpdateCourseRequest struct {
	Name             *string    `json:"name,omitempty"`
	NumberOfStudents *int       `json:"numberOfStudents,omitempty"`
	IsOpen           *bool      `json:"isOpen,omitempty"`
	Duration         *int       `json:"duration,omitempty"`
	NumberOfTas      *int       `json:"numberOfTas,omitempty"`
	StudentTaRatio   *int       `json:"studentTaRatio,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
}

// AverageWorkloadResponse carries the computed average declared hours for a
// course. The integer truncation matches the ledger's hour granularity.
type AverageWorkloadResponse struct {
	AverageHours int `json:"averageHours"`
}
