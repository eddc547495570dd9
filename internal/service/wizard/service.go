// Package wizard drives the five-step permit application flow: section
// mutations, derived price recomputation, step gating and navigation.
package wizard

import (
	"context"
	"errors"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/infra/sessionstore"
	"github.com/szekelyhub/transit-permit-service/internal/pricing"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard/models"
)

// Service is the wizard controller. There is exactly one mutator per
// session; all operations read the post-write record synchronously, so
// derived values never lag the data they derive from.
type Service struct {
	store        SessionStore
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

func NewService(store SessionStore, idGenerator IDGenerator, logger Logger) *Service {
	return &Service{
		store:        store,
		idGenerator:  idGenerator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create starts a new session with the default record.
func (s *Service) Create(ctx context.Context) (*models.SessionState, error) {
	session := domain.NewSession(s.idGenerator.NewID(), s.timeProvider.Now())
	pricing.Recompute(&session.Application)

	s.persist(ctx, session)
	s.logger.Info("Create: started session id=%s", session.ID)
	return models.FromDomainSession(session, StepValid), nil
}

// Get returns the current wizard state.
func (s *Service) Get(ctx context.Context, id string) (*models.SessionState, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSession(session, StepValid), nil
}

// UpdateSection merges a partial update over one section of the record,
// recomputes the derived price when the vehicle or route changed, and
// persists the session. Validation failures never block data entry.
func (s *Service) UpdateSection(ctx context.Context, id string, update domain.SectionUpdate) (*models.SessionState, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Application.ApplySection(update); err != nil {
		if errors.Is(err, domain.ErrEmptyUpdate) || errors.Is(err, domain.ErrUnknownSection) {
			return nil, ErrUnknownSection
		}
		return nil, err
	}

	if update.AffectsPrice() {
		pricing.Recompute(&session.Application)
	}

	session.UpdatedAt = s.timeProvider.Now()
	s.persist(ctx, session)

	s.logger.Info("UpdateSection: session=%s section=%s price=%d",
		id, update.Section(), session.Application.Price)
	return models.FromDomainSession(session, StepValid), nil
}

// SetApplicantKind switches the active applicant section. This is the
// whole-record replace path for the scalar discriminator; the inactive
// section's values are retained.
func (s *Service) SetApplicantKind(ctx context.Context, id string, kind domain.ApplicantKind) (*models.SessionState, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidApplicantKind
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Application.ApplicantKind = kind
	session.UpdatedAt = s.timeProvider.Now()
	s.persist(ctx, session)

	s.logger.Info("SetApplicantKind: session=%s kind=%s", id, kind)
	return models.FromDomainSession(session, StepValid), nil
}

// AttachRegistrationDocument stores the opaque handle of the uploaded
// vehicle registration document.
func (s *Service) AttachRegistrationDocument(ctx context.Context, id string, doc domain.Attachment) (*models.SessionState, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Application.Vehicle.RegistrationDocument = &doc
	session.UpdatedAt = s.timeProvider.Now()
	s.persist(ctx, session)

	s.logger.Info("AttachRegistrationDocument: session=%s name=%s size=%d",
		id, doc.Name, doc.SizeBytes)
	return models.FromDomainSession(session, StepValid), nil
}

// Advance moves to the next step. The transition itself only clamps at
// the last step; the service gates it on the current step's validator
// (steps 1-3) or on payment success (step 4).
func (s *Service) Advance(ctx context.Context, id string) (*models.SessionState, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case domain.StepApplicant, domain.StepVehicle, domain.StepSummary:
		if !StepValid(&session.Application, session.Step) {
			s.logger.Warn("Advance: session=%s blocked at step %d", id, session.Step)
			return nil, ErrStepIncomplete
		}
	case domain.StepPayment:
		if !session.IsPaid() {
			s.logger.Warn("Advance: session=%s payment not succeeded", id)
			return nil, ErrPaymentRequired
		}
	}

	session.AdvanceStep()
	session.UpdatedAt = s.timeProvider.Now()
	s.persist(ctx, session)

	s.logger.Info("Advance: session=%s now at step %d", id, session.Step)
	return models.FromDomainSession(session, StepValid), nil
}

// Retreat moves to the previous step, clamped at the first. Never gated.
func (s *Service) Retreat(ctx context.Context, id string) (*models.SessionState, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.RetreatStep()
	session.UpdatedAt = s.timeProvider.Now()
	s.persist(ctx, session)

	s.logger.Info("Retreat: session=%s now at step %d", id, session.Step)
	return models.FromDomainSession(session, StepValid), nil
}

// Reset wipes the session back to step 1 with the default record and an
// idle payment state. This is the only exit from a failed payment.
func (s *Service) Reset(ctx context.Context, id string) (*models.SessionState, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Reset(s.timeProvider.Now())
	pricing.Recompute(&session.Application)
	s.persist(ctx, session)

	s.logger.Info("Reset: session=%s wiped", id)
	return models.FromDomainSession(session, StepValid), nil
}

// load fetches a session. A missing session is reported as not found;
// a failing store degrades to a fresh default session with the same ID
// so the operator can keep working in memory.
func (s *Service) load(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.store.Load(ctx, id)
	if err == nil {
		// Recompute on load: a stale persisted price must never
		// survive a reload.
		pricing.Recompute(&session.Application)
		return session, nil
	}
	if errors.Is(err, sessionstore.ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}

	s.logger.Error("load: session store failed for id=%s, continuing with defaults: %v", id, err)
	session = domain.NewSession(id, s.timeProvider.Now())
	pricing.Recompute(&session.Application)
	return session, nil
}

// persist saves the session. Persistence failures are logged and
// swallowed: they must never surface into the mutation path.
func (s *Service) persist(ctx context.Context, session *domain.Session) {
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("persist: failed to save session id=%s: %v", session.ID, err)
	}
}
