package dto

// CreateContractRequest represents a contract created by the decide chain
type CreateContractRequest struct {
	Username        string `json:"username" binding:"required"`
	CourseCode      string `json:"courseCode" binding:"required"`
	HoursRequired   int    `json:"hoursRequired" binding:"min=0"`
	TextualContract string `json:"textualContract"`
	TaDescription   string `json:"taDescription"`
}

// CreateReviewRequest represents a post-hoc TA review
type CreateReviewRequest struct {
	Username      string `json:"username" binding:"required"`
	CourseCode    string `json:"courseCode" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	TextualReview string `json:"textualReview"`
}

// DeclareWorkloadRequest represents hours a TA declares for a course
type DeclareWorkloadRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
	Hours      int    `json:"hours" binding:"required,min=1"`
}
