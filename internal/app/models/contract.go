package models

import "time"

// ContractStatus enumerates the states of a TA contract.
type ContractStatus string

const (
	ContractDraft  ContractStatus = "Draft"
	ContractSigned ContractStatus = "Signed"
)

// Contract defines a TA contract based on the 'contracts' table. A contract
// is only ever created after an application reaches Accepted.
type Contract struct {
	ID              int64          `json:"id" db:"id"`
	Username        string         `json:"username" db:"username"`
	CourseCode      string         `json:"courseCode" db:"course_code"`
	HoursRequired   int            `json:"hoursRequired" db:"hours_required" example:"80"`
	TextualContract string         `json:"textualContract" db:"textual_contract"`
	Status          ContractStatus `json:"status" db:"status" example:"Draft"`
	TaDescription   string         `json:"taDescription" db:"ta_description"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}

// Review defines a post-hoc TA review based on the 'reviews' table. Reviews
// are independent of the application lifecycle.
type Review struct {
	ID            int64     `json:"id" db:"id"`
	Rating        int       `json:"rating" db:"rating" example:"4"`
	TextualReview string    `json:"textualReview" db:"textual_review"`
	Username      string    `json:"username" db:"username"`
	CourseCode    string    `json:"courseCode" db:"course_code"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Workload defines declared TA hours based on the 'workloads' table.
// Entries are aggregated into a course's averageTaHour.
type Workload struct {
	ID         int64     `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	CourseCode string    `json:"courseCode" db:"course_code"`
	Hours      int       `json:"hours" db:"hours" example:"12"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
