package submit_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/infra/sessionstore"
	storage "github.com/szekelyhub/transit-permit-service/internal/infra/storage/application"
	"github.com/szekelyhub/transit-permit-service/internal/integrations/paymentgateway"
	"github.com/szekelyhub/transit-permit-service/internal/pricing"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard"
)

// UseCase drives the payment sub-state machine of the wizard:
// idle -> processing -> succeeded | failed. A successful charge also
// persists the application and advances the session to the final step.
type UseCase struct {
	store        SessionStore
	applications ApplicationRepository
	gateway      PaymentGateway
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

func New(
	store SessionStore,
	applications ApplicationRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		applications: applications,
		gateway:      gateway,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Submit runs one payment attempt for the session. The processing state
// is saved before the gateway is called so a concurrent submission is
// rejected, and a failed attempt is terminal until the session is reset.
func (u *UseCase) Submit(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	session, err := u.store.Load(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, req.SessionID)
		}
		u.logger.Error("submit payment: load session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}

	if session.Step != domain.StepPayment {
		return nil, fmt.Errorf("%w: current step is %d", ErrWrongStep, session.Step)
	}
	switch session.PaymentStatus {
	case domain.PaymentProcessing:
		return nil, ErrPaymentInProgress
	case domain.PaymentSucceeded:
		return nil, ErrAlreadyPaid
	case domain.PaymentFailed:
		return nil, ErrPaymentFailed
	}

	for step := domain.StepApplicant; step <= domain.StepSummary; step++ {
		if !wizard.StepValid(&session.Application, step) {
			return nil, fmt.Errorf("%w: step %d is not complete", ErrApplicationIncomplete, step)
		}
	}

	pricing.Recompute(&session.Application)

	session.PaymentStatus = domain.PaymentProcessing
	session.UpdatedAt = u.timeProvider.Now()
	if err := u.store.Save(ctx, session); err != nil {
		u.logger.Error("submit payment: save processing state for session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}

	result, err := u.gateway.Charge(ctx, &paymentgateway.ChargeRequest{
		SessionID:       session.ID,
		AmountRON:       session.Application.Price,
		SimulateFailure: req.SimulateFailure,
	})
	if err != nil {
		u.logger.Error("submit payment: charge for session %s: %v", session.ID, err)
		return u.fail(ctx, session, "payment could not be processed")
	}
	if !result.Success {
		u.logger.Info("submit payment: charge declined for session %s: %s", session.ID, result.Message)
		return u.fail(ctx, session, result.Message)
	}

	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		_, createErr := u.applications.Create(ctx, session.ID, &session.Application)
		return createErr
	})
	if errors.Is(err, storage.ErrDuplicateApplication) {
		// An earlier attempt already persisted this session's row.
		if existing, getErr := u.applications.GetBySessionID(ctx, session.ID); getErr == nil {
			u.logger.Warn("submit payment: session %s already recorded as application %d", session.ID, existing.ID)
		}
		err = nil
	}
	if err != nil {
		u.logger.Error("submit payment: persist application for session %s: %v", session.ID, err)
		return u.fail(ctx, session, "payment accepted but the application could not be recorded")
	}

	session.PaymentStatus = domain.PaymentSucceeded
	session.Step = domain.StepCompletion
	session.UpdatedAt = u.timeProvider.Now()
	if err := u.store.Save(ctx, session); err != nil {
		u.logger.Error("submit payment: save succeeded state for session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}

	u.logger.Info("submit payment: session %s paid %d RON", session.ID, session.Application.Price)

	return &Response{
		Status:  domain.PaymentSucceeded,
		Message: result.Message,
		Step:    session.Step,
	}, nil
}

func (u *UseCase) fail(ctx context.Context, session *domain.Session, message string) (*Response, error) {
	session.PaymentStatus = domain.PaymentFailed
	session.UpdatedAt = u.timeProvider.Now()
	if err := u.store.Save(ctx, session); err != nil {
		u.logger.Error("submit payment: save failed state for session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}
	return &Response{
		Status:  domain.PaymentFailed,
		Message: message,
		Step:    session.Step,
	}, nil
}
