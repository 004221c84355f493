package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// ContractRepository handles database operations for TA contracts
type ContractRepository struct {
	db *pgxpool.Pool
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{
		db: db,
	}
}

// Create creates a new contract
func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	query := `
		INSERT INTO contracts (username, course_code, hours_required, textual_contract, status, ta_description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		contract.Username,
		contract.CourseCode,
		contract.HoursRequired,
		contract.TextualContract,
		contract.Status,
		contract.TaDescription,
	).Scan(&contract.ID, &contract.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contract: %w", err)
	}

	return nil
}

// GetByUsername retrieves all contracts held by a TA
func (r *ContractRepository) GetByUsername(ctx context.Context, username string) ([]*models.Contract, error) {
	query := `
		SELECT id, username, course_code, hours_required, textual_contract, status, ta_description, created_at
		FROM contracts
		WHERE username = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("error listing contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*models.Contract
	for rows.Next() {
		var contract models.Contract
		if err := rows.Scan(
			&contract.ID,
			&contract.Username,
			&contract.CourseCode,
			&contract.HoursRequired,
			&contract.TextualContract,
			&contract.Status,
			&contract.TaDescription,
			&contract.CreatedAt,
		); err != nil {
			return nil, err
		}
		contracts = append(contracts, &contract)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contracts, nil
}

// GetByUsernameAndCourse retrieves a single contract by its owning pair
func (r *ContractRepository) GetByUsernameAndCourse(ctx context.Context, username, courseCode string) (*models.Contract, error) {
	query := `
		SELECT id, username, course_code, hours_required, textual_contract, status, ta_description, created_at
		FROM contracts
		WHERE username = $1 AND course_code = $2
	`

	var contract models.Contract
	err := r.db.QueryRow(ctx, query, username, courseCode).Scan(
		&contract.ID,
		&contract.Username,
		&contract.CourseCode,
		&contract.HoursRequired,
		&contract.TextualContract,
		&contract.Status,
		&contract.TaDescription,
		&contract.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, fmt.Errorf("error retrieving contract: %w", err)
	}

	return &contract, nil
}

// SetStatus updates a contract's status
func (r *ContractRepository) SetStatus(ctx context.Context, username, courseCode string, status models.ContractStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contracts SET status = $3 WHERE username = $1 AND course_code = $2`,
		username, courseCode, status,
	)
	if err != nil {
		return fmt.Errorf("error updating contract status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrContractNotFound
	}
	return nil
}

// CountTAs counts the distinct TAs holding a contract for a course
func (r *ContractRepository) CountTAs(ctx context.Context, courseCode string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT username) FROM contracts WHERE course_code = $1`,
		courseCode,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting TAs: %w", err)
	}
	return count, nil
}
