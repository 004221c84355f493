package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	"github.com/victoriayuechen/tarecruit/internal/pkg/validation"
)

// defaultContractHours is the hoursRequired written into contracts created
// by an acceptance, pending a lecturer adjusting it on the ledger side.
const defaultContractHours = 80

// ApplicationService owns the application status state machine. All course
// data it decides on is a snapshot fetched from the course directory at
// decision time; role grants, contracts and notifications go out through
// the peer gateway as separate sequential calls.
type ApplicationService struct {
	applicationRepo ApplicationStore
	peers           PeerGateway
	logger          zerolog.Logger
	now             func() time.Time
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo ApplicationStore, peers PeerGateway, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		peers:           peers,
		logger:          logger,
		now:             time.Now,
	}
}

// Submit creates an application in Pending. There is deliberately no
// duplicate check: a student can apply twice and the intake records both.
func (s *ApplicationService) Submit(ctx context.Context, username string, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if !validation.ValidQuarter(req.Quarter) {
		return nil, fmt.Errorf("%w: quarter must look like 2026.1", apperrors.ErrValidationFailed)
	}
	if req.Grade < 1 || req.Grade > 10 {
		return nil, fmt.Errorf("%w: grade must be between 1 and 10", apperrors.ErrValidationFailed)
	}

	application := &models.Application{
		CourseCode: req.CourseCode,
		Username:   username,
		Grade:      req.Grade,
		Status:     models.StatusPending,
		Quarter:    req.Quarter,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("applicationId", application.ID).
		Str("courseCode", application.CourseCode).
		Str("username", application.Username).
		Msg("Application submitted")

	return application, nil
}

// Get retrieves a single application.
func (s *ApplicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

// ListByCourse retrieves applications for a course, optionally filtered by
// status.
func (s *ApplicationService) ListByCourse(ctx context.Context, courseCode string, status models.ApplicationStatus) ([]*models.Application, error) {
	return s.applicationRepo.Find(ctx, courseCode, "", status)
}

// ListByUsername retrieves a student's own applications.
func (s *ApplicationService) ListByUsername(ctx context.Context, username string) ([]*models.Application, error) {
	return s.applicationRepo.Find(ctx, "", username, "")
}

// Decide moves a pending application to a terminal outcome.
//
// The eligibility checks run against a course snapshot fetched at call
// time; nothing holds a lock between the read and the write, so two
// concurrent acceptances can both observe a course below its TA threshold
// and both go through. Likewise the acceptance chain of role grant,
// contract write and notification enqueue runs as three independent
// network calls with no compensation: a mid-chain failure aborts the rest
// but leaves the earlier effects committed and the application Pending.
// Both gaps are inherited contract, covered by tests rather than fixed
// here.
func (s *ApplicationService) Decide(ctx context.Context, id int64, outcome models.ApplicationStatus, token string) (*models.Application, error) {
	if !models.ValidOutcome(outcome) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownApplicationState, outcome)
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if application.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", apperrors.ErrApplicationNotPending, application.Status)
	}

	course, err := s.peers.GetCourse(ctx, application.CourseCode, token)
	if err != nil {
		return nil, err
	}

	if DeadlinePassed(course, s.now()) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDeadlinePassed, course.Code)
	}

	if outcome == models.StatusAccepted {
		if !course.IsOpen {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseClosed, course.Code)
		}

		enough, err := HasEnoughTAs(course)
		if err != nil {
			return nil, err
		}
		if enough {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseFullyStaffed, course.Code)
		}

		if err := s.acceptChain(ctx, application, course, token); err != nil {
			return nil, err
		}
	} else {
		// Rejections and withdrawals still notify the applicant
		if err := s.notifyDecision(ctx, application, outcome, token); err != nil {
			return nil, err
		}
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, outcome); err != nil {
		return nil, err
	}
	application.Status = outcome

	s.logger.Info().
		Int64("applicationId", id).
		Str("outcome", string(outcome)).
		Msg("Application decided")

	return application, nil
}

// acceptChain runs the three sequential side effects of an acceptance:
// grant the TA role, persist the contract, enqueue the notification. Each
// step is a separate remote call; an error aborts the remaining steps
// without rolling back the completed ones.
func (s *ApplicationService) acceptChain(ctx context.Context, application *models.Application, course *models.Course, token string) error {
	if err := s.peers.GrantTARole(ctx, application.Username, token); err != nil {
		return err
	}

	contract := &dto.CreateContractRequest{
		Username:        application.Username,
		CourseCode:      application.CourseCode,
		HoursRequired:   defaultContractHours,
		TextualContract: fmt.Sprintf("TA contract for %s (%s), quarter %s", course.Name, course.Code, application.Quarter),
		TaDescription:   fmt.Sprintf("Teaching assistant for %s", course.Name),
	}
	if err := s.peers.CreateContract(ctx, contract, token); err != nil {
		s.logger.Warn().
			Int64("applicationId", application.ID).
			Msg("Contract creation failed after role grant; role grant stands")
		return err
	}

	return s.notifyDecision(ctx, application, models.StatusAccepted, token)
}

// notifyDecision enqueues the status-update notification for the applicant.
func (s *ApplicationService) notifyDecision(ctx context.Context, application *models.Application, outcome models.ApplicationStatus, token string) error {
	text := fmt.Sprintf("Newest update for %s is %s", application.CourseCode, outcome)
	return s.peers.EnqueueNotification(ctx, application.Username, text, token)
}

// Withdraw lets an applicant pull back their own pending application. No
// notification is sent; the applicant initiated the change.
func (s *ApplicationService) Withdraw(ctx context.Context, id int64, username string) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if application.Username != username {
		return nil, apperrors.NewForbiddenError("only the applicant can withdraw an application")
	}

	if application.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", apperrors.ErrApplicationNotPending, application.Status)
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, models.StatusWithdrawn); err != nil {
		return nil, err
	}
	application.Status = models.StatusWithdrawn

	return application, nil
}
