package database

import (
	"context"
	"database/sql"
	"fmt"

	"petminder/internal/models"

	"github.com/google/uuid"
)

// PetRepository handles pet database operations
type PetRepository struct {
	db    *DB
	clock Clock
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *DB) *PetRepository {
	return &PetRepository{db: db, clock: RealClock{}}
}

// SetClock overrides the wall clock, for deterministic tests.
func (r *PetRepository) SetClock(clock Clock) {
	r.clock = clock
}

// List retrieves all pets, oldest first.
func (r *PetRepository) List(ctx context.Context) ([]*models.Pet, error) {
	query := `
		SELECT id, name, breed, weight, image_url, created_at, updated_at
		FROM pets
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pets: %w", err)
	}
	defer rows.Close()

	var pets []*models.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}

	return pets, nil
}

// GetByID retrieves a pet by ID. Returns ErrNotFound when no pet has the id.
func (r *PetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	query := `
		SELECT id, name, breed, weight, image_url, created_at, updated_at
		FROM pets
		WHERE id = ?
	`

	pet, err := scanPet(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return pet, nil
}

// Put inserts the pet, or fully replaces the stored record when a pet with
// the same id already exists. There is no field merging.
func (r *PetRepository) Put(ctx context.Context, pet *models.Pet) error {
	now := r.clock.Now()
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = now
	}
	pet.UpdatedAt = now

	query := `
		INSERT INTO pets (id, name, breed, weight, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			breed = excluded.breed,
			weight = excluded.weight,
			image_url = excluded.image_url,
			updated_at = excluded.updated_at
	`

	var weight sql.NullFloat64
	if pet.Weight != nil {
		weight = sql.NullFloat64{Float64: *pet.Weight, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		pet.ID,
		pet.Name,
		pet.Breed,
		weight,
		pet.ImageURL,
		pet.CreatedAt,
		pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put pet: %w", err)
	}

	return nil
}

// Delete removes the pet and, in the same transaction, every task that
// references it. No orphaned tasks survive a pet deletion. Deleting an
// unknown id is a silent no-op.
func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE pet_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete tasks for pet: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pet delete: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (*models.Pet, error) {
	pet := &models.Pet{}
	var weight sql.NullFloat64

	err := s.Scan(
		&pet.ID,
		&pet.Name,
		&pet.Breed,
		&weight,
		&pet.ImageURL,
		&pet.CreatedAt,
		&pet.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan pet: %w", err)
	}

	if weight.Valid {
		pet.Weight = &weight.Float64
	}

	return pet, nil
}
