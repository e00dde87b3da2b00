package database

import (
	"context"
	"testing"
	"time"

	"petminder/internal/models"

	"github.com/google/uuid"
)

func TestTaskRepository_CompleteAdvancesSchedule(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	task := newTestTask(uuid.New(), "heartworm meds", 30, created)
	mustPutTask(t, repo, task)

	completedAt := time.Date(2024, time.March, 6, 15, 30, 0, 0, time.UTC)
	repo.SetClock(fixedClock{now: completedAt})

	updated, err := repo.Complete(ctx, task.ID)
	if err != nil {
		t.Fatalf("Complete() returned error: %v", err)
	}
	if updated == nil {
		t.Fatal("Complete() returned nil task for an existing id")
	}

	if updated.LastDoneDate == nil || !updated.LastDoneDate.Equal(completedAt) {
		t.Errorf("Expected last done %v, got %v", completedAt, updated.LastDoneDate)
	}
	wantNext := time.Date(2024, time.April, 5, 15, 30, 0, 0, time.UTC)
	if !updated.NextDueDate.Equal(wantNext) {
		t.Errorf("Expected next due %v, got %v", wantNext, updated.NextDueDate)
	}

	// The persisted record must match what Complete returned.
	stored, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() returned error: %v", err)
	}
	if stored.LastDoneDate == nil || !stored.LastDoneDate.Equal(completedAt) {
		t.Errorf("Expected stored last done %v, got %v", completedAt, stored.LastDoneDate)
	}
	if !stored.NextDueDate.Equal(wantNext) {
		t.Errorf("Expected stored next due %v, got %v", wantNext, stored.NextDueDate)
	}
}

func TestTaskRepository_CompleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTestTask(uuid.New(), "ear cleaning", 14, time.Now())
	mustPutTask(t, repo, task)

	updated, err := repo.Complete(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Completing a nonexistent task should succeed, got error: %v", err)
	}
	if updated != nil {
		t.Errorf("Expected nil task for nonexistent id, got %+v", updated)
	}

	stored, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() returned error: %v", err)
	}
	if stored.LastDoneDate != nil {
		t.Error("Expected existing task untouched by no-op completion")
	}
}

func TestTaskRepository_DeleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTestTask(uuid.New(), "nail trim", 21, time.Now())
	mustPutTask(t, repo, task)

	if err := repo.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("Deleting a nonexistent task should succeed, got error: %v", err)
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("Expected store unchanged (1 task), got %d", len(tasks))
	}
}

func TestTaskRepository_ReplaceSemantics(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTestTask(uuid.New(), "old title", 7, time.Now())
	mustPutTask(t, repo, task)

	replacement := newTestTask(task.PetID, "new title", 14, task.NextDueDate)
	replacement.ID = task.ID
	replacement.Type = models.TaskTypeMedication
	mustPutTask(t, repo, replacement)

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected exactly 1 task after replace, got %d", len(tasks))
	}
	if tasks[0].Title != "new title" {
		t.Errorf("Expected title 'new title', got %q", tasks[0].Title)
	}
	if tasks[0].FrequencyDays != 14 {
		t.Errorf("Expected frequency 14, got %d", tasks[0].FrequencyDays)
	}
	if tasks[0].Type != models.TaskTypeMedication {
		t.Errorf("Expected type medication, got %q", tasks[0].Type)
	}
}

func TestTaskRepository_ListSortedByNextDue(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	base := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	later := newTestTask(uuid.New(), "later", 7, base.AddDate(0, 0, 5))
	first := newTestTask(uuid.New(), "first", 7, base.AddDate(0, 0, -2))
	middle := newTestTask(uuid.New(), "middle", 7, base)

	mustPutTask(t, repo, later)
	mustPutTask(t, repo, first)
	mustPutTask(t, repo, middle)

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(tasks))
	}

	wantOrder := []string{"first", "middle", "later"}
	for i, want := range wantOrder {
		if tasks[i].Title != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, tasks[i].Title)
		}
	}
}

func TestTaskRepository_ListByPet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	petA := uuid.New()
	petB := uuid.New()
	now := time.Now()
	mustPutTask(t, repo, newTestTask(petA, "a1", 7, now))
	mustPutTask(t, repo, newTestTask(petA, "a2", 7, now))
	mustPutTask(t, repo, newTestTask(petB, "b1", 7, now))

	tasks, err := repo.ListByPet(ctx, petA)
	if err != nil {
		t.Fatalf("ListByPet() returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks for pet A, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.PetID != petA {
			t.Errorf("Task %s belongs to pet %s, expected %s", task.ID, task.PetID, petA)
		}
	}
}

// End-to-end scheduling scenario: a task created immediately due at t0 and
// completed five days later is next due thirty days after completion.
func TestTaskRepository_CompletionScenario(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	petRepo := NewPetRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	t0 := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	rex := newTestPet("Rex")
	mustPutPet(t, petRepo, rex)

	task := newTestTask(rex.ID, "flea treatment", 30, t0)
	mustPutTask(t, taskRepo, task)

	stored, err := taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() returned error: %v", err)
	}
	if !stored.NextDueDate.Equal(t0) {
		t.Errorf("Expected next due %v at creation, got %v", t0, stored.NextDueDate)
	}
	if stored.LastDoneDate != nil {
		t.Errorf("Expected nil last done at creation, got %v", stored.LastDoneDate)
	}

	completedAt := t0.AddDate(0, 0, 5)
	taskRepo.SetClock(fixedClock{now: completedAt})

	updated, err := taskRepo.Complete(ctx, task.ID)
	if err != nil {
		t.Fatalf("Complete() returned error: %v", err)
	}
	if updated.LastDoneDate == nil || !updated.LastDoneDate.Equal(completedAt) {
		t.Errorf("Expected last done %v, got %v", completedAt, updated.LastDoneDate)
	}
	if want := t0.AddDate(0, 0, 35); !updated.NextDueDate.Equal(want) {
		t.Errorf("Expected next due %v, got %v", want, updated.NextDueDate)
	}
}
