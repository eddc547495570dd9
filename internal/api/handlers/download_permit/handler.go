package download_permit

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/i18n"
	generatePermit "github.com/szekelyhub/transit-permit-service/internal/usecase/generate_permit"
)

const (
	msgSessionNotFound = "session not found"
	msgNotPaid         = "permit is only available after successful payment"
)

type Handler struct {
	useCase GeneratePermitUseCase
	logger  Logger
}

func NewHandler(useCase GeneratePermitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/permit?lang=xx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	lang := i18n.Parse(r.URL.Query().Get("lang"))

	result, err := h.useCase.Generate(r.Context(), &generatePermit.Request{
		SessionID: sessionID,
		Lang:      lang,
	})
	if err != nil {
		switch {
		case errors.Is(err, generatePermit.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/permit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, generatePermit.ErrNotPaid):
			h.logger.Warn("GET /sessions/{id}/permit - Not paid: session_id=%s", sessionID)
			handlers.RespondForbidden(w, msgNotPaid)

		default:
			h.logger.Error("GET /sessions/{id}/permit - Failed to generate permit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/permit - Permit rendered: session_id=%s, lang=%s, bytes=%d",
		sessionID, lang, len(result.Content))

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
