package services

import (
	"context"
	"fmt"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	"github.com/victoriayuechen/tarecruit/internal/pkg/validation"
)

// CourseService handles course directory operations
type CourseService struct {
	courseRepo CourseStore
	peers      PeerGateway
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, peers PeerGateway) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		peers:      peers,
	}
}

// CreateCourse creates a new course entry
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !validation.ValidCourseCode(req.Code) {
		return nil, fmt.Errorf("%w: course code must look like CSE1305", apperrors.ErrValidationFailed)
	}
	if !validation.ValidQuarter(req.Quarter) {
		return nil, fmt.Errorf("%w: quarter must look like 2026.1", apperrors.ErrValidationFailed)
	}
	if req.NumberOfTas < 0 || req.StudentTaRatio < 0 {
		return nil, fmt.Errorf("%w: TA counts and ratios cannot be negative", apperrors.ErrValidationFailed)
	}

	course := &models.Course{
		Code:             req.Code,
		Name:             req.Name,
		Quarter:          req.Quarter,
		NumberOfStudents: req.NumberOfStudents,
		IsOpen:           req.IsOpen,
		Duration:         req.Duration,
		NumberOfTas:      req.NumberOfTas,
		StudentTaRatio:   req.StudentTaRatio,
		StartDate:        req.StartDate,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a single course snapshot by code
func (s *CourseService) GetCourse(ctx context.Context, code string) (*models.Course, error) {
	return s.courseRepo.GetByCode(ctx, code)
}

// ListCourses retrieves courses, optionally scoped to a quarter or to open
// courses only
func (s *CourseService) ListCourses(ctx context.Context, quarter string, openOnly bool) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, quarter, openOnly)
}

// UpdateCourse applies a partial update to a course
func (s *CourseService) UpdateCourse(ctx context.Context, code string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if req.NumberOfTas != nil && *req.NumberOfTas < 0 {
		return nil, fmt.Errorf("%w: numberOfTas cannot be negative", apperrors.ErrValidationFailed)
	}
	if req.StudentTaRatio != nil && *req.StudentTaRatio < 0 {
		return nil, fmt.Errorf("%w: studentTaRatio cannot be negative", apperrors.ErrValidationFailed)
	}

	update := &models.CourseUpdate{
		Name:             req.Name,
		NumberOfStudents: req.NumberOfStudents,
		IsOpen:           req.IsOpen,
		Duration:         req.Duration,
		NumberOfTas:      req.NumberOfTas,
		StudentTaRatio:   req.StudentTaRatio,
		StartDate:        req.StartDate,
	}

	if err := s.courseRepo.Update(ctx, code, update); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByCode(ctx, code)
}

// IncrementTAs bumps the course's TA headcount by one. The TA ledger calls
// this when a contract is persisted so that the eligibility threshold
// eventually reflects the accepted TAs.
func (s *CourseService) IncrementTAs(ctx context.Context, code string) (*models.Course, error) {
	if err := s.courseRepo.IncrementNumberOfTas(ctx, code); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByCode(ctx, code)
}

// AverageWorkload pulls the declared hour entries for a course from the TA
// ledger, averages them with integer truncation, persists the result on the
// course row and returns it. An empty ledger averages to zero.
func (s *CourseService) AverageWorkload(ctx context.Context, code, token string) (int, error) {
	// The course must exist locally before we reach out to the ledger
	if _, err := s.courseRepo.GetByCode(ctx, code); err != nil {
		return 0, err
	}

	hours, err := s.peers.WorkloadHours(ctx, code, token)
	if err != nil {
		return 0, err
	}

	if len(hours) == 0 {
		return 0, nil
	}

	sum := 0
	for _, h := range hours {
		sum += h
	}
	avg := sum / len(hours)

	if err := s.courseRepo.SetAverageTaHour(ctx, code, float64(avg)); err != nil {
		return 0, err
	}

	return avg, nil
}
