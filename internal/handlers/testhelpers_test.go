package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petminder/internal/database"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// envelope mirrors the JSON response wrapper for decoding in tests.
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
}

// testEnv wires handlers against a real in-memory database.
type testEnv struct {
	db     *database.DB
	pets   *database.PetRepository
	tasks  *database.TaskRepository
	prefs  *database.PreferencesRepository
	router *mux.Router

	petHandler  *PetHandler
	taskHandler *TaskHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	})

	env := &testEnv{
		db:    db,
		pets:  database.NewPetRepository(db),
		tasks: database.NewTaskRepository(db),
		prefs: database.NewPreferencesRepository(db),
	}

	logger := zap.NewNop()
	env.petHandler = NewPetHandler(env.pets, logger)
	env.taskHandler = NewTaskHandler(env.tasks, logger)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	env.petHandler.RegisterRoutes(api.PathPrefix("/pets").Subrouter())
	env.taskHandler.RegisterRoutes(api.PathPrefix("/tasks").Subrouter())
	NewPreferencesHandler(env.prefs).RegisterRoutes(api.PathPrefix("/preferences").Subrouter())
	api.HandleFunc("/reset", NewResetHandler(db, logger).Reset).Methods("POST")

	env.router = router
	return env
}

// do performs a request against the test router and returns the recorder.
func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decodeData decodes the envelope's data field into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var env envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("Expected success envelope, got error %q: %s", env.Error, env.Message)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("Failed to decode response data: %v", err)
	}
}

// createPet creates a pet through the API and returns its id.
func (env *testEnv) createPet(t *testing.T, name string) string {
	t.Helper()

	w := env.do(t, "POST", "/api/v1/pets", map[string]any{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create pet: status %d, body %s", w.Code, w.Body.String())
	}
	var pet struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &pet)
	return pet.ID
}

// createTask creates a task through the API and returns its id.
func (env *testEnv) createTask(t *testing.T, petID, title string, frequencyDays int) string {
	t.Helper()

	w := env.do(t, "POST", "/api/v1/tasks", map[string]any{
		"pet_id":         petID,
		"type":           "medication",
		"title":          title,
		"frequency_days": frequencyDays,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create task: status %d, body %s", w.Code, w.Body.String())
	}
	var task struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &task)
	return task.ID
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
