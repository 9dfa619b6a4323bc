package handler

import (
	"encoding/json"
	"net/http"

	"pdf-ask-server/internal/domain"
)

const maxAskBodyBytes = 1 << 20

type AIHandler struct {
	aiService domain.AIService
	logger    domain.Logger
}

func NewAIHandler(aiService domain.AIService, logger domain.Logger) *AIHandler {
	return &AIHandler{
		aiService: aiService,
		logger:    logger,
	}
}

// Ask handles POST /ask
func (h *AIHandler) Ask(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found in context")
		return
	}

	var req domain.AskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAskBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.aiService.Ask(r.Context(), sessionID, req.Question)
	if err != nil {
		logFailure(h.logger, "Ask AI failed", err, "session_id", sessionID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
