package handlers

import (
	"encoding/json"
	"net/http"

	"petminder/internal/database"
	"petminder/internal/models"
	"petminder/internal/validation"

	"github.com/gorilla/mux"
)

// PreferencesHandler handles preference requests
type PreferencesHandler struct {
	prefs database.PreferencesStore
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(prefs database.PreferencesStore) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// RegisterRoutes registers preference routes on the given router.
// The router should already have the /preferences prefix.
func (h *PreferencesHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.GetPreferences).Methods("GET")
	r.HandleFunc("", h.UpdatePreferences).Methods("PUT")
}

// UpdatePreferencesRequest represents a preference update. Omitted fields
// are left unchanged.
type UpdatePreferencesRequest struct {
	Theme                *string `json:"theme,omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

// GetPreferences returns both preference scalars
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Load(r.Context())
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to load preferences")
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

// UpdatePreferences persists each provided scalar with its own store call
func (h *PreferencesHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	ctx := r.Context()

	if req.Theme != nil {
		if err := validation.ValidateTheme(*req.Theme); err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		if err := h.prefs.SetTheme(ctx, models.Theme(*req.Theme)); err != nil {
			respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to save theme")
			return
		}
	}

	if req.NotificationsEnabled != nil {
		if err := h.prefs.SetNotificationsEnabled(ctx, *req.NotificationsEnabled); err != nil {
			respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to save notifications setting")
			return
		}
	}

	prefs, err := h.prefs.Load(ctx)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to load preferences")
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}
