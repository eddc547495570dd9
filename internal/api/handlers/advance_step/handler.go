package advance_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard"
)

const (
	msgSessionNotFound = "session not found"
	msgStepIncomplete  = "current step is not complete"
	msgPaymentRequired = "payment must succeed before continuing"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.service.Advance(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/advance - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrStepIncomplete):
			h.logger.Warn("POST /sessions/{id}/advance - Step incomplete: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgStepIncomplete)

		case errors.Is(err, wizard.ErrPaymentRequired):
			h.logger.Warn("POST /sessions/{id}/advance - Payment required: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgPaymentRequired)

		default:
			h.logger.Error("POST /sessions/{id}/advance - Failed to advance: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/advance - Advanced: session_id=%s, step=%d", sessionID, state.Step)
	handlers.RespondJSON(w, http.StatusOK, state)
}
