// Package services holds the business logic of the five service groups.
// Services depend on narrow store interfaces rather than concrete
// repositories so that tests can substitute in-memory fakes; the pgx-backed
// repositories in internal/app/repositories satisfy them.
package services

import (
	"context"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
)

// UserStore is the identity persistence surface used by AuthService.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	AddRole(ctx context.Context, username, role string) error
}

// CourseStore is the course persistence surface used by CourseService.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context, quarter string, openOnly bool) ([]*models.Course, error)
	Update(ctx context.Context, code string, update *models.CourseUpdate) error
	SetAverageTaHour(ctx context.Context, code string, avg float64) error
	IncrementNumberOfTas(ctx context.Context, code string) error
}

// ApplicationStore is the application persistence surface used by
// ApplicationService.
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	Find(ctx context.Context, courseCode, username string, status models.ApplicationStatus) ([]*models.Application, error)
}

// ContractStore is the contract persistence surface used by TaService.
type ContractStore interface {
	Create(ctx context.Context, contract *models.Contract) error
	GetByUsername(ctx context.Context, username string) ([]*models.Contract, error)
	GetByUsernameAndCourse(ctx context.Context, username, courseCode string) (*models.Contract, error)
	SetStatus(ctx context.Context, username, courseCode string, status models.ContractStatus) error
	CountTAs(ctx context.Context, courseCode string) (int, error)
}

// ReviewStore is the review persistence surface used by TaService.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	GetByCourse(ctx context.Context, courseCode string) ([]*models.Review, error)
}

// WorkloadStore is the workload persistence surface used by TaService.
type WorkloadStore interface {
	Create(ctx context.Context, workload *models.Workload) error
	HoursByCourse(ctx context.Context, courseCode string) ([]int, error)
}

// NotificationStore is the inbox persistence surface used by
// NotificationService.
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetPendingByUsername(ctx context.Context, username string) ([]*models.Notification, error)
	MarkCompleted(ctx context.Context, id int64) error
}
