package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskType categorizes a care task. Used for display iconography only.
type TaskType string

const (
	TaskTypeMedication TaskType = "medication"
	TaskTypeNailCare   TaskType = "nail-care"
	TaskTypeEarCare    TaskType = "ear-care"
	TaskTypeOther      TaskType = "other"
)

// Task is a recurring care activity tied to one pet.
//
// NextDueDate is always set: it defaults to the creation time (immediately
// due) and advances by FrequencyDays on each completion. LastDoneDate is
// nil exactly when the task has never been completed.
type Task struct {
	ID            uuid.UUID  `json:"id"`
	PetID         uuid.UUID  `json:"pet_id"`
	Type          TaskType   `json:"type"`
	Title         string     `json:"title"`
	FrequencyDays int        `json:"frequency_days"`
	LastDoneDate  *time.Time `json:"last_done_date,omitempty"`
	NextDueDate   time.Time  `json:"next_due_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
