package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	CourseRepository       *CourseRepository
	ApplicationRepository  *ApplicationRepository
	ContractRepository     *ContractRepository
	ReviewRepository       *ReviewRepository
	WorkloadRepository     *WorkloadRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CourseRepository:       NewCourseRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		ContractRepository:     NewContractRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		WorkloadRepository:     NewWorkloadRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
