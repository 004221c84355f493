package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
)

// ReviewRepository handles database operations for TA reviews
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (rating, textual_review, username, course_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.Rating,
		review.TextualReview,
		review.Username,
		review.CourseCode,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

// GetByCourse retrieves all reviews written for TAs of a course
func (r *ReviewRepository) GetByCourse(ctx context.Context, courseCode string) ([]*models.Review, error) {
	query := `
		SELECT id, rating, textual_review, username, course_code, created_at
		FROM reviews
		WHERE course_code = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.TextualReview,
			&review.Username,
			&review.CourseCode,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
