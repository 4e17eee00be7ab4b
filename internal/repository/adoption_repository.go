package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pawhaven/internal/domain"
)

type AdoptionRepository interface {
	Create(ctx context.Context, req *domain.AdoptionRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdoptionRequest, error)
	ListAll(ctx context.Context) ([]domain.AdoptionRequest, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.AdoptionRequest, error)
	// UpdateDecision persists a terminal status with a compare-and-swap on
	// status='pending'. It reports false when the row exists but was no
	// longer pending, so concurrent second decisions lose instead of
	// overwriting.
	UpdateDecision(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus, adminMessage string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type adoptionRepository struct {
	db *sqlx.DB
}

func NewAdoptionRepository(db *sqlx.DB) AdoptionRepository {
	return &adoptionRepository{db: db}
}

func (r *adoptionRepository) Create(ctx context.Context, req *domain.AdoptionRequest) error {
	query := `
		INSERT INTO adoption_requests
			(id, pet_id, pet_name, pet_type, full_name, citizenship_number,
			 phone_number, email, home_address, reason, date, status, admin_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		req.ID, req.PetID, req.PetName, req.PetType, req.FullName,
		req.CitizenshipNumber, req.PhoneNumber, req.Email, req.HomeAddress,
		req.Reason, req.Date, req.Status, req.AdminMessage,
	).Scan(&req.CreatedAt)
}

func (r *adoptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdoptionRequest, error) {
	var req domain.AdoptionRequest
	query := `SELECT * FROM adoption_requests WHERE id = $1`
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("adoption request %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &req, nil
}

func (r *adoptionRepository) ListAll(ctx context.Context) ([]domain.AdoptionRequest, error) {
	requests := []domain.AdoptionRequest{}
	query := `SELECT * FROM adoption_requests ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *adoptionRepository) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.AdoptionRequest, error) {
	requests := []domain.AdoptionRequest{}
	query := `SELECT * FROM adoption_requests WHERE pet_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &requests, query, petID); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *adoptionRepository) UpdateDecision(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus, adminMessage string) (bool, error) {
	query := `
		UPDATE adoption_requests
		SET status = $2, admin_message = $3
		WHERE id = $1 AND status = 'pending'`

	result, err := r.db.ExecContext(ctx, query, id, status, adminMessage)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *adoptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM adoption_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("adoption request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
