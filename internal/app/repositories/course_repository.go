package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	"github.com/victoriayuechen/tarecruit/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, quarter, number_of_students, is_open, average_ta_hour, duration, number_of_tas, student_ta_ratio, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code,
		course.Name,
		course.Quarter,
		course.NumberOfStudents,
		course.IsOpen,
		course.AverageTaHour,
		course.Duration,
		course.NumberOfTas,
		course.StudentTaRatio,
		course.StartDate,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByCode retrieves a course by its unique code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT id, code, name, quarter, number_of_students, is_open, average_ta_hour, duration, number_of_tas, student_ta_ratio, start_date
		FROM courses
		WHERE code = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Quarter,
		&course.NumberOfStudents,
		&course.IsOpen,
		&course.AverageTaHour,
		&course.Duration,
		&course.NumberOfTas,
		&course.StudentTaRatio,
		&course.StartDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves courses, optionally filtered by quarter and openness
func (r *CourseRepository) GetAll(ctx context.Context, quarter string, openOnly bool) ([]*models.Course, error) {
	builder := r.sb.Select(
		"id", "code", "name", "quarter", "number_of_students", "is_open",
		"average_ta_hour", "duration", "number_of_tas", "student_ta_ratio", "start_date",
	).From("courses").OrderBy("code")

	if quarter != "" {
		builder = builder.Where(squirrel.Eq{"quarter": quarter})
	}
	if openOnly {
		builder = builder.Where(squirrel.Eq{"is_open": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Quarter,
			&course.NumberOfStudents,
			&course.IsOpen,
			&course.AverageTaHour,
			&course.Duration,
			&course.NumberOfTas,
			&course.StudentTaRatio,
			&course.StartDate,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update applies the non-nil fields of the update to a course row
func (r *CourseRepository) Update(ctx context.Context, code string, update *models.CourseUpdate) error {
	builder := r.sb.Update("courses").Where(squirrel.Eq{"code": code})

	changed := false
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		changed = true
	}
	if update.NumberOfStudents != nil {
		builder = builder.Set("number_of_students", *update.NumberOfStudents)
		changed = true
	}
	if update.IsOpen != nil {
		builder = builder.Set("is_open", *update.IsOpen)
		changed = true
	}
	if update.Duration != nil {
		builder = builder.Set("duration", *update.Duration)
		changed = true
	}
	if update.NumberOfTas != nil {
		builder = builder.Set("number_of_tas", *update.NumberOfTas)
		changed = true
	}
	if update.StudentTaRatio != nil {
		builder = builder.Set("student_ta_ratio", *update.StudentTaRatio)
		changed = true
	}
	if update.StartDate != nil {
		builder = builder.Set("start_date", *update.StartDate)
		changed = true
	}

	if !changed {
		return nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building course update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// SetAverageTaHour persists the computed average workload on the course row
func (r *CourseRepository) SetAverageTaHour(ctx context.Context, code string, avg float64) error {
	tag, err := r.db.Exec(ctx, `UPDATE courses SET average_ta_hour = $2 WHERE code = $1`, code, avg)
	if err != nil {
		return fmt.Errorf("error updating average TA hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// IncrementNumberOfTas bumps the allocated TA count for a course
func (r *CourseRepository) IncrementNumberOfTas(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `UPDATE courses SET number_of_tas = number_of_tas + 1 WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("error incrementing TA count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
