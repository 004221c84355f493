package services

import (
	"context"
	"fmt"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// TaService handles the TA ledger: contracts, reviews and workloads.
type TaService struct {
	contractRepo ContractStore
	reviewRepo   ReviewStore
	workloadRepo WorkloadStore
	peers        PeerGateway
}

// NewTaService creates a new TA ledger service instance
func NewTaService(contractRepo ContractStore, reviewRepo ReviewStore, workloadRepo WorkloadStore, peers PeerGateway) *TaService {
	return &TaService{
		contractRepo: contractRepo,
		reviewRepo:   reviewRepo,
		workloadRepo: workloadRepo,
		peers:        peers,
	}
}

// CreateContract persists a Draft contract and tells the course directory to
// bump the course's TA headcount. Called by the application service's
// acceptance chain; contracts only ever exist for accepted applications.
// The contract write and the headcount bump are two independent calls: a
// failed bump leaves the persisted contract in place and surfaces the error.
func (s *TaService) CreateContract(ctx context.Context, req *dto.CreateContractRequest, token string) (*models.Contract, error) {
	if req.HoursRequired < 0 {
		return nil, fmt.Errorf("%w: hoursRequired cannot be negative", apperrors.ErrValidationFailed)
	}

	contract := &models.Contract{
		Username:        req.Username,
		CourseCode:      req.CourseCode,
		HoursRequired:   req.HoursRequired,
		TextualContract: req.TextualContract,
		Status:          models.ContractDraft,
		TaDescription:   req.TaDescription,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.peers.IncrementCourseTAs(ctx, req.CourseCode, token); err != nil {
		return nil, err
	}

	return contract, nil
}

// GetContracts retrieves a TA's contracts.
func (s *TaService) GetContracts(ctx context.Context, username string) ([]*models.Contract, error) {
	return s.contractRepo.GetByUsername(ctx, username)
}

// SignContract moves a TA's own contract to Signed.
func (s *TaService) SignContract(ctx context.Context, username, courseCode, caller string) (*models.Contract, error) {
	if username != caller {
		return nil, apperrors.NewForbiddenError("only the contract holder can sign it")
	}

	if err := s.contractRepo.SetStatus(ctx, username, courseCode, models.ContractSigned); err != nil {
		return nil, err
	}

	return s.contractRepo.GetByUsernameAndCourse(ctx, username, courseCode)
}

// CountTAs counts the TAs holding a contract for a course.
func (s *TaService) CountTAs(ctx context.Context, courseCode string) (int, error) {
	return s.contractRepo.CountTAs(ctx, courseCode)
}

// CreateReview records a post-hoc review of a TA. Reviews are independent
// of the application lifecycle.
func (s *TaService) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, apperrors.ErrInvalidRating)
	}

	review := &models.Review{
		Rating:        req.Rating,
		TextualReview: req.TextualReview,
		Username:      req.Username,
		CourseCode:    req.CourseCode,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// GetReviews retrieves the reviews written for TAs of a course.
func (s *TaService) GetReviews(ctx context.Context, courseCode string) ([]*models.Review, error) {
	return s.reviewRepo.GetByCourse(ctx, courseCode)
}

// DeclareWorkload records hours a TA spent on a course.
func (s *TaService) DeclareWorkload(ctx context.Context, username string, req *dto.DeclareWorkloadRequest) (*models.Workload, error) {
	if req.Hours <= 0 {
		return nil, fmt.Errorf("%w: hours must be positive", apperrors.ErrValidationFailed)
	}

	workload := &models.Workload{
		Username:   username,
		CourseCode: req.CourseCode,
		Hours:      req.Hours,
	}

	if err := s.workloadRepo.Create(ctx, workload); err != nil {
		return nil, err
	}

	return workload, nil
}

// WorkloadHours retrieves the raw declared hour entries for a course.
func (s *TaService) WorkloadHours(ctx context.Context, courseCode string) ([]int, error) {
	hours, err := s.workloadRepo.HoursByCourse(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	if hours == nil {
		hours = []int{}
	}
	return hours, nil
}
