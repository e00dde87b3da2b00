package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"petminder/internal/database"
	"petminder/internal/models"
	"petminder/internal/schedule"
	"petminder/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	// MaxTaskTitleLength is the maximum length for a task title
	MaxTaskTitleLength = 500

	// ViewToday filters the task list to tasks due today or overdue
	ViewToday = "today"
	// ViewAll returns the full task list
	ViewAll = "all"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	tasks  database.TaskStore
	clock  database.Clock
	logger *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks database.TaskStore, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, clock: database.RealClock{}, logger: logger}
}

// SetClock replaces the wall clock. Intended for tests.
func (h *TaskHandler) SetClock(clock database.Clock) {
	h.clock = clock
}

// RegisterRoutes registers task routes on the given router.
// The router should already have the /tasks prefix.
func (h *TaskHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListTasks).Methods("GET")
	r.HandleFunc("", h.CreateTask).Methods("POST")
	r.HandleFunc("/{id}", h.UpdateTask).Methods("PUT")
	r.HandleFunc("/{id}", h.DeleteTask).Methods("DELETE")
	r.HandleFunc("/{id}/complete", h.CompleteTask).Methods("POST")
}

// TaskRequest represents a create or replace task request
type TaskRequest struct {
	PetID         string `json:"pet_id" validate:"required,uuid"`
	Type          string `json:"type" validate:"required,task_type"`
	Title         string `json:"title" validate:"required,min=1,max=500"`
	FrequencyDays int    `json:"frequency_days" validate:"required,min=1"`
}

// ListTasks lists tasks, optionally filtered to one pet and to the
// due-today view. Storage faults degrade to an empty list.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view := r.URL.Query().Get("view")
	if view == "" {
		view = ViewAll
	}
	if view != ViewAll && view != ViewToday {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "view must be 'today' or 'all'")
		return
	}

	var tasks []*models.Task
	var err error
	if petIDStr := r.URL.Query().Get("pet_id"); petIDStr != "" {
		petID, parseErr := uuid.Parse(petIDStr)
		if parseErr != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid pet ID")
			return
		}
		tasks, err = h.tasks.ListByPet(ctx, petID)
	} else {
		tasks, err = h.tasks.List(ctx)
	}
	if err != nil {
		h.logger.Warn("task_list_degraded", zap.Error(err))
		tasks = []*models.Task{}
	}

	if view == ViewToday {
		now := h.clock.Now()
		due := make([]*models.Task, 0, len(tasks))
		for _, task := range tasks {
			if schedule.IsDue(task.NextDueDate, now) {
				due = append(due, task)
			}
		}
		tasks = due
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	respondJSON(w, http.StatusOK, tasks)
}

// CreateTask creates a new task. The task starts immediately due: its next
// due date is the creation time and it has never been completed.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, petID, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	task := &models.Task{
		ID:            uuid.New(),
		PetID:         petID,
		Type:          models.TaskType(req.Type),
		Title:         req.Title,
		FrequencyDays: req.FrequencyDays,
		NextDueDate:   h.clock.Now(),
	}

	if err := h.tasks.Put(r.Context(), task); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to create task")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask replaces an existing task's descriptive fields. Schedule state
// (last done, next due) is owned by completion and carried over unchanged.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid task ID")
		return
	}

	existing, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}

	req, petID, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	task := &models.Task{
		ID:            existing.ID,
		PetID:         petID,
		Type:          models.TaskType(req.Type),
		Title:         req.Title,
		FrequencyDays: req.FrequencyDays,
		LastDoneDate:  existing.LastDoneDate,
		NextDueDate:   existing.NextDueDate,
		CreatedAt:     existing.CreatedAt,
	}

	if err := h.tasks.Put(r.Context(), task); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to update task")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task. Deleting a task that does not exist succeeds.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid task ID")
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteTask records a completion now and advances the schedule by the
// task's interval. Completing an absent task succeeds with no content.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid task ID")
		return
	}

	task, err := h.tasks.Complete(r.Context(), id)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to complete task")
		return
	}
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// decodeAndValidate parses and validates a task request body. On failure it
// writes the error response and returns ok=false.
func (h *TaskHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (*TaskRequest, uuid.UUID, bool) {
	var req TaskRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return nil, uuid.Nil, false
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return nil, uuid.Nil, false
	}

	req.Title = validation.SanitizeText(req.Title)

	if err := validation.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return nil, uuid.Nil, false
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return nil, uuid.Nil, false
	}

	petID, err := uuid.Parse(req.PetID)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid pet ID")
		return nil, uuid.Nil, false
	}

	return &req, petID, true
}
