package set_applicant_kind

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidApplicantKind = "applicant kind must be \"individual\" or \"organization\""
	msgSessionNotFound      = "session not found"
)

type request struct {
	Kind string `json:"kind"`
}

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

// Handle PUT /api/v1/sessions/{sessionId}/applicant-kind
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/applicant-kind - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	kind, err := domain.ParseApplicantKind(req.Kind)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/applicant-kind - Invalid kind: session_id=%s, kind=%s", sessionID, req.Kind)
		handlers.RespondBadRequest(w, msgInvalidApplicantKind)
		return
	}

	state, err := h.service.SetApplicantKind(r.Context(), sessionID, kind)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/applicant-kind - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidApplicantKind):
			h.logger.Warn("PUT /sessions/{id}/applicant-kind - Invalid kind: session_id=%s, kind=%s", sessionID, req.Kind)
			handlers.RespondBadRequest(w, msgInvalidApplicantKind)

		default:
			h.logger.Error("PUT /sessions/{id}/applicant-kind - Failed to set kind: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/applicant-kind - Kind set: session_id=%s, kind=%s", sessionID, req.Kind)
	handlers.RespondJSON(w, http.StatusOK, state)
}
