package dto

// SubmitApplicationRequest represents a student applying to TA a course
type SubmitApplicationRequest struct {
	CourseCode string  `json:"courseCode" binding:"required"`
	Quarter    string  `json:"quarter" binding:"required"`
	Grade      float64 `json:"grade" binding:"required,min=1,max=10"`
}

// DecideApplicationRequest carries the lecturer's decision outcome
type DecideApplicationRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=Accepted Rejected Withdrawn"`
}
