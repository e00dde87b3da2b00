package handlers

import (
	"net/http"

	"petminder/internal/database"

	"go.uber.org/zap"
)

// ResetHandler handles the full data reset request
type ResetHandler struct {
	db     *database.DB
	logger *zap.Logger
}

// NewResetHandler creates a new reset handler
func NewResetHandler(db *database.DB, logger *zap.Logger) *ResetHandler {
	return &ResetHandler{db: db, logger: logger}
}

// Reset deletes every pet and task and returns preferences to their
// defaults, in one transaction.
func (h *ResetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.db.ClearAll(r.Context()); err != nil {
		h.logger.Error("reset_failed", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to reset data")
		return
	}

	h.logger.Info("data_reset")
	w.WriteHeader(http.StatusNoContent)
}
