package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
)

// WorkloadRepository handles database operations for declared TA hours
type WorkloadRepository struct {
	db *pgxpool.Pool
}

// NewWorkloadRepository creates a new workload repository
func NewWorkloadRepository(db *pgxpool.Pool) *WorkloadRepository {
	return &WorkloadRepository{
		db: db,
	}
}

// Create records declared hours
func (r *WorkloadRepository) Create(ctx context.Context, workload *models.Workload) error {
	query := `
		INSERT INTO workloads (username, course_code, hours)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		workload.Username,
		workload.CourseCode,
		workload.Hours,
	).Scan(&workload.ID, &workload.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating workload entry: %w", err)
	}

	return nil
}

// HoursByCourse retrieves the raw hour entries declared for a course
func (r *WorkloadRepository) HoursByCourse(ctx context.Context, courseCode string) ([]int, error) {
	query := `
		SELECT hours
		FROM workloads
		WHERE course_code = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error listing workload hours: %w", err)
	}
	defer rows.Close()

	var hours []int
	for rows.Next() {
		var h int
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hours, nil
}
