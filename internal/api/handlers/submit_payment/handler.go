package submit_payment

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/domain"
	submitPayment "github.com/szekelyhub/transit-permit-service/internal/usecase/submit_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgWrongStep          = "payment is only available on the payment step"
	msgPaymentInProgress  = "payment is already being processed"
	msgAlreadyPaid        = "payment already succeeded"
	msgPaymentFailed      = "a previous payment failed, reset the application to start over"
	msgIncomplete         = "application is incomplete"
)

type Handler struct {
	useCase SubmitPaymentUseCase
	metrics PaymentMetrics
	logger  Logger
}

func NewHandler(useCase SubmitPaymentUseCase, metrics PaymentMetrics, logger Logger) *Handler {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	// An absent body is a normal attempt.
	var req SubmitPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sessions/{id}/payment - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Submit(r.Context(), &submitPayment.Request{
		SessionID:       sessionID,
		SimulateFailure: req.SimulateFailure,
	})
	if err != nil {
		h.metrics.ObservePaymentAttempt("rejected")
		switch {
		case errors.Is(err, submitPayment.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/payment - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitPayment.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/payment - Wrong step: session_id=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, submitPayment.ErrPaymentInProgress):
			h.logger.Warn("POST /sessions/{id}/payment - Payment in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgPaymentInProgress)

		case errors.Is(err, submitPayment.ErrAlreadyPaid):
			h.logger.Warn("POST /sessions/{id}/payment - Already paid: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, submitPayment.ErrPaymentFailed):
			h.logger.Warn("POST /sessions/{id}/payment - Previous payment failed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgPaymentFailed)

		case errors.Is(err, submitPayment.ErrApplicationIncomplete):
			h.logger.Warn("POST /sessions/{id}/payment - Application incomplete: session_id=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgIncomplete)

		default:
			h.logger.Error("POST /sessions/{id}/payment - Failed to submit payment: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.ObservePaymentAttempt(string(result.Status))
	if result.Status == domain.PaymentSucceeded {
		h.logger.Info("POST /sessions/{id}/payment - Payment succeeded: session_id=%s", sessionID)
	} else {
		h.logger.Info("POST /sessions/{id}/payment - Payment failed: session_id=%s, message=%s", sessionID, result.Message)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

type noopMetrics struct{}

func (noopMetrics) ObservePaymentAttempt(string) {}
