package database

import (
	"context"
	"testing"
	"time"

	"petminder/internal/models"

	"github.com/google/uuid"
)

// newTestDB opens a fresh in-memory database with the real schema.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	})

	return db
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestPet(name string) *models.Pet {
	return &models.Pet{
		ID:   uuid.New(),
		Name: name,
	}
}

func newTestTask(petID uuid.UUID, title string, frequencyDays int, nextDue time.Time) *models.Task {
	return &models.Task{
		ID:            uuid.New(),
		PetID:         petID,
		Type:          models.TaskTypeOther,
		Title:         title,
		FrequencyDays: frequencyDays,
		NextDueDate:   nextDue,
	}
}

func mustPutPet(t *testing.T, repo *PetRepository, pet *models.Pet) {
	t.Helper()
	if err := repo.Put(context.Background(), pet); err != nil {
		t.Fatalf("Failed to put pet: %v", err)
	}
}

func mustPutTask(t *testing.T, repo *TaskRepository, task *models.Task) {
	t.Helper()
	if err := repo.Put(context.Background(), task); err != nil {
		t.Fatalf("Failed to put task: %v", err)
	}
}
