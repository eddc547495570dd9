package upload_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 10 << 20

const (
	msgMissingFile     = "multipart form must carry a \"document\" file"
	msgSessionNotFound = "session not found"
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

// Handle POST /api/v1/sessions/{sessionId}/vehicle/registration-document
//
// Only the file's name and size become part of the application record;
// the content is not retained.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /sessions/{id}/vehicle/registration-document - Invalid multipart form: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/vehicle/registration-document - Missing file: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	doc := domain.Attachment{
		Name:      header.Filename,
		SizeBytes: header.Size,
	}

	state, err := h.service.AttachRegistrationDocument(r.Context(), sessionID, doc)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/vehicle/registration-document - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/vehicle/registration-document - Failed to attach: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions/{id}/vehicle/registration-document - Document attached: session_id=%s, name=%s, size=%d",
		sessionID, doc.Name, doc.SizeBytes)
	handlers.RespondJSON(w, http.StatusOK, state)
}
