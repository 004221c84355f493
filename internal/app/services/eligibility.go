package services

import (
	"fmt"
	"time"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// applicationWindow is how long before the course start date applications
// close.
const applicationWindow = 3 * 7 * 24 * time.Hour

// HasEnoughTAs reports whether a course already has at least as many TAs
// allocated as its ratio calls for. The comparison is exactly
// floor(numberOfStudents / studentTaRatio) < numberOfTas: "enough" is true
// once the allocated count exceeds the computed need. A zero ratio is a
// validation failure, not a crash.
func HasEnoughTAs(course *models.Course) (bool, error) {
	if course.StudentTaRatio == 0 {
		return false, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, apperrors.ErrZeroStudentTaRatio)
	}

	needed := course.NumberOfStudents / course.StudentTaRatio
	return needed < course.NumberOfTas, nil
}

// DeadlinePassed reports whether the application deadline for a course has
// passed. Courses without a start date never close. The deadline is three
// weeks before the start date, and the comparison is by calendar date
// (year, then month, then day), deliberately insensitive to time of day:
// on the deadline day itself the deadline has not passed.
func DeadlinePassed(course *models.Course, now time.Time) bool {
	if course.StartDate == nil {
		return false
	}

	deadline := course.StartDate.Add(-applicationWindow)

	if now.Year() != deadline.Year() {
		return now.Year() > deadline.Year()
	}
	if now.Month() != deadline.Month() {
		return now.Month() > deadline.Month()
	}
	return now.Day() > deadline.Day()
}
