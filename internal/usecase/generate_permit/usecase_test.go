package generate_permit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/i18n"
	"github.com/szekelyhub/transit-permit-service/internal/infra/permitpdf"
	"github.com/szekelyhub/transit-permit-service/internal/infra/sessionstore"
)

type fakeStore struct {
	sessions map[string]*domain.Session
}

func (s *fakeStore) Load(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, sessionstore.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

type fakeRenderer struct {
	lastDoc *permitpdf.Document
	err     error
}

func (r *fakeRenderer) Render(doc *permitpdf.Document) ([]byte, error) {
	r.lastDoc = doc
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fixedTime struct{}

func (fixedTime) Now() time.Time {
	return time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func paidSession() *domain.Session {
	s := domain.NewSession("sess-1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.Step = domain.StepCompletion
	s.PaymentStatus = domain.PaymentSucceeded
	s.Application.Individual = domain.Individual{
		LastName:  "Kovacs",
		FirstName: "Anna",
	}
	s.Application.Vehicle = domain.Vehicle{
		Make:            "Volvo",
		Plate:           "MS 01 ABC",
		MaxWeightTonnes: "15",
	}
	s.Application.Route = domain.Route{
		Description: "Gara - Combinat",
		Zone:        domain.ZoneA,
		StartDate:   "2026-03-15",
		Period:      domain.PeriodMonthly,
	}
	s.Application.Price = 1900
	return s
}

func TestGenerateRendersDocument(t *testing.T) {
	store := &fakeStore{sessions: map[string]*domain.Session{"sess-1": paidSession()}}
	renderer := &fakeRenderer{}
	uc := New(store, renderer, fixedTime{}, noopLogger{})

	resp, err := uc.Generate(context.Background(), &Request{SessionID: "sess-1", Lang: i18n.LangEN})
	require.NoError(t, err)
	require.Equal(t, PermitFileName, resp.FileName)
	require.Equal(t, "application/pdf", resp.ContentType)
	require.NotEmpty(t, resp.Content)

	doc := renderer.lastDoc
	require.NotNil(t, doc)
	require.Equal(t, "Transit Permit Application", doc.Title)
	require.Equal(t, "Permit price: 1900 RON", doc.PriceLine)
	require.Equal(t, "Issued: 2026-03-20", doc.IssueLine)

	require.Equal(t, []permitpdf.Line{
		{Label: "Last Name", Value: "Kovacs"},
		{Label: "First Name", Value: "Anna"},
		{Label: "Personal Identification Number", Value: ""},
		{Label: "Email", Value: ""},
	}, doc.ApplicantLines)

	require.Equal(t, permitpdf.Line{Label: "Maximum Weight", Value: "15 t"}, doc.VehicleLines[2])
	require.Equal(t, permitpdf.Line{Label: "Valid", Value: "2026-03-15 - 2026-04-14"}, doc.ValidityLines[2])
}

func TestGenerateQRPayload(t *testing.T) {
	store := &fakeStore{sessions: map[string]*domain.Session{"sess-1": paidSession()}}
	renderer := &fakeRenderer{}
	uc := New(store, renderer, fixedTime{}, noopLogger{})

	_, err := uc.Generate(context.Background(), &Request{SessionID: "sess-1", Lang: i18n.LangHU})
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(renderer.lastDoc.QRPayload), &payload))
	require.Equal(t, "Kovacs Anna", payload["applicant"])
	require.Equal(t, "Volvo - MS 01 ABC", payload["vehicle"])
	require.Equal(t, "Gara - Combinat", payload["route"])
	require.Equal(t, "1900 RON", payload["price"])
	require.Equal(t, "2026-03-20", payload["issueDate"])
	require.Equal(t, "2026-03-15 - 2026-04-14", payload["validity"])
}

func TestGenerateOrganizationApplicant(t *testing.T) {
	session := paidSession()
	session.Application.ApplicantKind = domain.ApplicantOrganization
	session.Application.Organization = domain.Organization{
		Name:  "Transilvania Cargo SRL",
		TaxID: "RO1234567",
		Email: "office@tcargo.ro",
	}
	store := &fakeStore{sessions: map[string]*domain.Session{"sess-1": session}}
	renderer := &fakeRenderer{}
	uc := New(store, renderer, fixedTime{}, noopLogger{})

	_, err := uc.Generate(context.Background(), &Request{SessionID: "sess-1", Lang: i18n.LangEN})
	require.NoError(t, err)

	require.Equal(t, []permitpdf.Line{
		{Label: "Company Name", Value: "Transilvania Cargo SRL"},
		{Label: "Tax ID", Value: "RO1234567"},
		{Label: "Company Email", Value: "office@tcargo.ro"},
	}, renderer.lastDoc.ApplicantLines)
}

func TestGenerateRequiresPayment(t *testing.T) {
	session := paidSession()
	session.PaymentStatus = domain.PaymentIdle
	store := &fakeStore{sessions: map[string]*domain.Session{"sess-1": session}}
	uc := New(store, &fakeRenderer{}, fixedTime{}, noopLogger{})

	_, err := uc.Generate(context.Background(), &Request{SessionID: "sess-1"})
	require.ErrorIs(t, err, ErrNotPaid)
}

func TestGenerateUnknownSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]*domain.Session{}}
	uc := New(store, &fakeRenderer{}, fixedTime{}, noopLogger{})

	_, err := uc.Generate(context.Background(), &Request{SessionID: "missing"})
	require.ErrorIs(t, err, ErrSessionNotFound)
}
