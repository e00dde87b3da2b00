package database

import (
	"context"

	"petminder/internal/models"

	"github.com/google/uuid"
)

// PetStore defines the interface for pet repository operations.
// This interface enables better testability by allowing mock implementations.
type PetStore interface {
	List(ctx context.Context) ([]*models.Pet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	Put(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskStore defines the interface for task repository operations
type TaskStore interface {
	List(ctx context.Context) ([]*models.Task, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]*models.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Put(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) (*models.Task, error)
}

// PreferencesStore defines the interface for preference scalar operations
type PreferencesStore interface {
	Load(ctx context.Context) (models.Preferences, error)
	GetTheme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
	GetNotificationsEnabled(ctx context.Context) (bool, error)
	SetNotificationsEnabled(ctx context.Context, enabled bool) error
}

// Ensure concrete types implement the interfaces
var (
	_ PetStore         = (*PetRepository)(nil)
	_ TaskStore        = (*TaskRepository)(nil)
	_ PreferencesStore = (*PreferencesRepository)(nil)
)
