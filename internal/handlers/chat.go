package handlers

import (
	"encoding/json"
	"net/http"

	"petminder/internal/services/assistant"
	"petminder/internal/validation"

	"go.uber.org/zap"
)

// ChatHandler handles assistant chat requests
type ChatHandler struct {
	provider assistant.Provider
	logger   *zap.Logger
}

// NewChatHandler creates a new chat handler. A nil provider means the
// assistant is not configured; requests still succeed with the fallback
// reply.
func NewChatHandler(provider assistant.Provider, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{provider: provider, logger: logger}
}

// ChatRequest represents a single chat message from the owner
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatReply represents the assistant's answer
type ChatReply struct {
	Reply string `json:"reply"`
}

// Chat forwards one message to the assistant. Provider faults never surface
// as errors; the owner always gets a readable reply.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	req.Message = validation.SanitizeText(req.Message)
	if err := validation.Validate.Struct(req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Message is required")
		return
	}

	if h.provider == nil {
		respondJSON(w, http.StatusOK, ChatReply{Reply: assistant.FallbackNotConfigured})
		return
	}

	reply, err := h.provider.Chat(r.Context(), req.Message)
	if err != nil {
		h.logger.Warn("assistant_chat_failed", zap.Error(err))
		respondJSON(w, http.StatusOK, ChatReply{Reply: assistant.Fallback(err)})
		return
	}

	respondJSON(w, http.StatusOK, ChatReply{Reply: reply})
}
