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

type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type petRepository struct {
	db *sqlx.DB
}

func NewPetRepository(db *sqlx.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	query := `
		INSERT INTO pets (id, name, type, age, sex, breed, location, image_url, owner_phone_number, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		pet.ID, pet.Name, pet.Type, pet.Age, pet.Sex, pet.Breed,
		pet.Location, pet.ImageURL, pet.OwnerPhoneNumber, pet.Description,
	).Scan(&pet.CreatedAt)
}

func (r *petRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	var pet domain.Pet
	query := `SELECT * FROM pets WHERE id = $1`
	if err := r.db.GetContext(ctx, &pet, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pet %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	query := `SELECT * FROM pets WHERE 1=1`
	args := []interface{}{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Sex != "" {
		args = append(args, filter.Sex)
		query += fmt.Sprintf(" AND sex = $%d", len(args))
	}
	if filter.MinAge != nil {
		args = append(args, *filter.MinAge)
		query += fmt.Sprintf(" AND age >= $%d", len(args))
	}
	if filter.MaxAge != nil {
		args = append(args, *filter.MaxAge)
		query += fmt.Sprintf(" AND age <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	pets := []domain.Pet{}
	if err := r.db.SelectContext(ctx, &pets, query, args...); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("pet %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
