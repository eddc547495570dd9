package submit_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/infra/sessionstore"
	storage "github.com/szekelyhub/transit-permit-service/internal/infra/storage/application"
	"github.com/szekelyhub/transit-permit-service/internal/integrations/paymentgateway"
	"github.com/szekelyhub/transit-permit-service/pkg/types"
)

type fakeStore struct {
	sessions map[string]*domain.Session
	saveErr  error
	// statuses records the payment status at every save, in order.
	statuses []domain.PaymentStatus
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]*domain.Session)}
}

func (s *fakeStore) Load(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, sessionstore.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *fakeStore) Save(_ context.Context, session *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.statuses = append(s.statuses, session.PaymentStatus)
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

type fakeRepo struct {
	createErr error
	created   []string
}

func (r *fakeRepo) Create(_ context.Context, sessionID string, _ *domain.Application) (*storage.StoredApplication, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, sessionID)
	return &storage.StoredApplication{ID: 1, SessionID: sessionID}, nil
}

func (r *fakeRepo) GetBySessionID(_ context.Context, sessionID string) (*storage.StoredApplication, error) {
	return &storage.StoredApplication{ID: 1, SessionID: sessionID}, nil
}

type fakeGateway struct {
	err     error
	result  *paymentgateway.ChargeResult
	charged []*paymentgateway.ChargeRequest
}

func (g *fakeGateway) Charge(_ context.Context, req *paymentgateway.ChargeRequest) (*paymentgateway.ChargeResult, error) {
	g.charged = append(g.charged, req)
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{}

func (fixedTime) Now() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func paidReadySession() *domain.Session {
	s := domain.NewSession("sess-1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.Step = domain.StepPayment
	s.Application.Individual = domain.Individual{
		LastName:   "Kovacs",
		FirstName:  "Anna",
		NationalID: "2960101123456",
		Email:      "anna@example.com",
		Phone:      "+40 740 123 456",
	}
	s.Application.Address = domain.Address{
		Street: "Strada Garii",
		Number: "12",
		City:   "Targu Mures",
		County: "Mures",
	}
	s.Application.Step1Consents.DataAccurate = true
	s.Application.Vehicle = domain.Vehicle{
		Make:            "Volvo",
		Category:        "N3",
		Plate:           "MS 01 ABC",
		MaxWeightTonnes: "15",
		VIN:             "YV2A1234567890123",
		RegistrationDocument: &domain.Attachment{
			Name:      "talon.pdf",
			SizeBytes: 123456,
		},
	}
	s.Application.Route = domain.Route{
		ShipmentType: "construction materials",
		Description:  "Gara - Combinat",
		Zone:         domain.ZoneA,
		StartDate:    "2026-03-15",
		StartTime:    types.TimeString("08:00"),
		Period:       domain.PeriodMonthly,
	}
	s.Application.Step2Consent.DataAccurate = true
	s.Application.Step3Consent.DataAccurate = true
	return s
}

func newTestUseCase(store *fakeStore, repo *fakeRepo, gateway *fakeGateway) *UseCase {
	return New(store, repo, gateway, fakeTxManager{}, fixedTime{}, noopLogger{})
}

func TestSubmitSuccessAdvancesToCompletion(t *testing.T) {
	store := newFakeStore()
	store.sessions["sess-1"] = paidReadySession()
	repo := &fakeRepo{}
	gateway := &fakeGateway{result: &paymentgateway.ChargeResult{Success: true, Message: "accepted"}}
	uc := newTestUseCase(store, repo, gateway)

	resp, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentSucceeded, resp.Status)
	require.Equal(t, domain.StepCompletion, resp.Step)

	// Processing was persisted before the charge, success after it.
	require.Equal(t, []domain.PaymentStatus{domain.PaymentProcessing, domain.PaymentSucceeded}, store.statuses)
	require.Equal(t, []string{"sess-1"}, repo.created)

	// The charge carried the recomputed price: (50+20+25)*20.
	require.Len(t, gateway.charged, 1)
	require.Equal(t, int64(1900), gateway.charged[0].AmountRON)

	saved := store.sessions["sess-1"]
	require.Equal(t, domain.PaymentSucceeded, saved.PaymentStatus)
	require.Equal(t, domain.StepCompletion, saved.Step)
}

func TestSubmitDeclinedChargeMarksFailed(t *testing.T) {
	store := newFakeStore()
	store.sessions["sess-1"] = paidReadySession()
	repo := &fakeRepo{}
	gateway := &fakeGateway{result: &paymentgateway.ChargeResult{Success: false, Message: "declined"}}
	uc := newTestUseCase(store, repo, gateway)

	resp, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1", SimulateFailure: true})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentFailed, resp.Status)
	require.Equal(t, domain.StepPayment, resp.Step)

	require.Empty(t, repo.created)
	require.Equal(t, domain.PaymentFailed, store.sessions["sess-1"].PaymentStatus)
	// Failure keeps the session on the payment step with its data intact.
	require.Equal(t, "MS 01 ABC", store.sessions["sess-1"].Application.Vehicle.Plate)
}

func TestSubmitDuplicateApplicationCountsAsSuccess(t *testing.T) {
	store := newFakeStore()
	store.sessions["sess-1"] = paidReadySession()
	repo := &fakeRepo{createErr: storage.ErrDuplicateApplication}
	gateway := &fakeGateway{result: &paymentgateway.ChargeResult{Success: true, Message: "accepted"}}
	uc := newTestUseCase(store, repo, gateway)

	resp, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentSucceeded, resp.Status)
	require.Equal(t, domain.StepCompletion, resp.Step)
}

func TestSubmitPersistFailureMarksFailed(t *testing.T) {
	store := newFakeStore()
	store.sessions["sess-1"] = paidReadySession()
	repo := &fakeRepo{createErr: errors.New("db down")}
	gateway := &fakeGateway{result: &paymentgateway.ChargeResult{Success: true, Message: "accepted"}}
	uc := newTestUseCase(store, repo, gateway)

	resp, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentFailed, resp.Status)
	require.Equal(t, domain.PaymentFailed, store.sessions["sess-1"].PaymentStatus)
}

func TestSubmitGates(t *testing.T) {
	base := func() (*fakeStore, *UseCase) {
		store := newFakeStore()
		store.sessions["sess-1"] = paidReadySession()
		uc := newTestUseCase(store, &fakeRepo{}, &fakeGateway{result: &paymentgateway.ChargeResult{Success: true}})
		return store, uc
	}

	t.Run("unknown session", func(t *testing.T) {
		_, uc := base()
		_, err := uc.Submit(context.Background(), &Request{SessionID: "missing"})
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("wrong step", func(t *testing.T) {
		store, uc := base()
		store.sessions["sess-1"].Step = domain.StepSummary
		_, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
		require.ErrorIs(t, err, ErrWrongStep)
	})

	t.Run("already processing", func(t *testing.T) {
		store, uc := base()
		store.sessions["sess-1"].PaymentStatus = domain.PaymentProcessing
		_, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
		require.ErrorIs(t, err, ErrPaymentInProgress)
	})

	t.Run("already paid", func(t *testing.T) {
		store, uc := base()
		store.sessions["sess-1"].PaymentStatus = domain.PaymentSucceeded
		_, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
		require.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("previous failure is terminal", func(t *testing.T) {
		store, uc := base()
		store.sessions["sess-1"].PaymentStatus = domain.PaymentFailed
		_, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
		require.ErrorIs(t, err, ErrPaymentFailed)
	})

	t.Run("incomplete application", func(t *testing.T) {
		store, uc := base()
		store.sessions["sess-1"].Application.Step3Consent.DataAccurate = false
		_, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
		require.ErrorIs(t, err, ErrApplicationIncomplete)
	})
}

func TestSubmitGatewayErrorMarksFailed(t *testing.T) {
	store := newFakeStore()
	store.sessions["sess-1"] = paidReadySession()
	gateway := &fakeGateway{err: errors.New("gateway down")}
	uc := newTestUseCase(store, &fakeRepo{}, gateway)

	resp, err := uc.Submit(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentFailed, resp.Status)
}
