package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"petminder/internal/models"
	"petminder/internal/schedule"

	"github.com/google/uuid"
)

const taskColumns = `id, pet_id, type, title, frequency_days, last_done_date, next_due_date, created_at, updated_at`

// TaskRepository handles care-task database operations
type TaskRepository struct {
	db    *DB
	clock Clock
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db, clock: RealClock{}}
}

// SetClock overrides the wall clock, for deterministic tests.
func (r *TaskRepository) SetClock(clock Clock) {
	r.clock = clock
}

// List retrieves all tasks sorted ascending by next due date.
func (r *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks`)
}

// ListByPet retrieves all tasks attached to one pet, sorted ascending by
// next due date.
func (r *TaskRepository) ListByPet(ctx context.Context, petID uuid.UUID) ([]*models.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE pet_id = ?`, petID)
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	// Sorted in Go rather than SQL so ordering does not depend on the
	// text encoding of timestamps.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].NextDueDate.Before(tasks[j].NextDueDate)
	})

	return tasks, nil
}

// GetByID retrieves a task by ID. Returns ErrNotFound when absent.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Put inserts the task, or fully replaces the stored record when a task
// with the same id already exists.
func (r *TaskRepository) Put(ctx context.Context, task *models.Task) error {
	now := r.clock.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pet_id = excluded.pet_id,
			type = excluded.type,
			title = excluded.title,
			frequency_days = excluded.frequency_days,
			last_done_date = excluded.last_done_date,
			next_due_date = excluded.next_due_date,
			updated_at = excluded.updated_at
	`

	var lastDone sql.NullTime
	if task.LastDoneDate != nil {
		lastDone = sql.NullTime{Time: *task.LastDoneDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.PetID,
		task.Type,
		task.Title,
		task.FrequencyDays,
		lastDone,
		task.NextDueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put task: %w", err)
	}

	return nil
}

// Delete removes one task. Deleting an unknown id is a silent no-op.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Complete marks the task done now: last_done_date becomes the current
// time and next_due_date advances by the task's recurrence interval using
// calendar-day arithmetic. Completing an unknown id is a no-op and returns
// (nil, nil).
//
// frequency_days is deliberately not re-validated here; a non-positive
// interval yields a next due date at or before now, which the due-today
// view classifies as already due.
func (r *TaskRepository) Complete(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	task, err := scanTask(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	task.LastDoneDate = &now
	task.NextDueDate = schedule.NextDue(now, task.FrequencyDays)
	task.UpdatedAt = now

	update := `
		UPDATE tasks
		SET last_done_date = ?, next_due_date = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, update, now, task.NextDueDate, task.UpdatedAt, task.ID); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task completion: %w", err)
	}

	return task, nil
}

func scanTask(s scanner) (*models.Task, error) {
	task := &models.Task{}
	var lastDone sql.NullTime

	err := s.Scan(
		&task.ID,
		&task.PetID,
		&task.Type,
		&task.Title,
		&task.FrequencyDays,
		&lastDone,
		&task.NextDueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	if lastDone.Valid {
		task.LastDoneDate = &lastDone.Time
	}

	return task, nil
}
