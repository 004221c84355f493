package models

import "time"

// Course defines the course model based on the 'courses' table. The course
// directory owns this record; other services only ever see a snapshot
// fetched over HTTP.
type Course struct {
	ID               int64      `json:"id" db:"id"`
	Code             string     `json:"courseCode" db:"code" example:"CSE1305"`
	Name             string     `json:"name" db:"name" example:"Algorithms and Data Structures"`
	Quarter          string     `json:"quarter" db:"quarter" example:"2026.1"`
	NumberOfStudents int        `json:"numberOfStudents" db:"number_of_students" example:"520"`
	IsOpen           bool       `json:"isOpen" db:"is_open"`
	AverageTaHour    float64    `json:"averageTaHour" db:"average_ta_hour"`
	Duration         int        `json:"duration" db:"duration" example:"10"` // weeks
	NumberOfTas      int        `json:"numberOfTas" db:"number_of_tas"`
	StudentTaRatio   int        `json:"studentTaRatio" db:"student_ta_ratio" example:"20"`
	StartDate        *time.Time `json:"startDate,omitempty" db:"start_date"` // nullable; no start date means no deadline
}

// CourseUpdate carries the mutable course fields for a partial update.
// Nil fields are left untouched.
type CourseUpdate struct {
	Name             *string
	NumberOfStudents *int
	IsOpen           *bool
	Duration         *int
	NumberOfTas      *int
	StudentTaRatio   *int
	StartDate        *time.Time
}
