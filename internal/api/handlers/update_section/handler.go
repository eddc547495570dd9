package update_section

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownSection     = "unknown section"
	msgSessionNotFound    = "session not found"
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

// Handle PATCH /api/v1/sessions/{sessionId}/sections/{section}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	section, err := domain.ParseSection(vars["section"])
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/sections/{section} - Unknown section: session_id=%s, section=%s",
			sessionID, vars["section"])
		handlers.RespondBadRequest(w, msgUnknownSection)
		return
	}

	update, err := parseSectionUpdate(section, r)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/sections/{section} - Invalid request body: session_id=%s, section=%s, error=%v",
			sessionID, section, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.UpdateSection(r.Context(), sessionID, update)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/sections/{section} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrUnknownSection):
			h.logger.Warn("PATCH /sessions/{id}/sections/{section} - Unknown section: session_id=%s, section=%s",
				sessionID, section)
			handlers.RespondBadRequest(w, msgUnknownSection)

		default:
			h.logger.Error("PATCH /sessions/{id}/sections/{section} - Failed to update section: session_id=%s, section=%s, error=%v",
				sessionID, section, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/sections/{section} - Section updated: session_id=%s, section=%s",
		sessionID, section)
	handlers.RespondJSON(w, http.StatusOK, state)
}
