package generate_permit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/i18n"
	"github.com/szekelyhub/transit-permit-service/internal/infra/permitpdf"
	"github.com/szekelyhub/transit-permit-service/internal/infra/sessionstore"
	"github.com/szekelyhub/transit-permit-service/internal/pricing"
)

// UseCase renders the permit certificate for a paid session.
type UseCase struct {
	store        SessionStore
	renderer     Renderer
	timeProvider TimeProvider
	logger       Logger
}

func New(store SessionStore, renderer Renderer, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		renderer:     renderer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Generate builds the certificate document from the session's application
// and renders it. The permit only exists after a successful payment.
func (u *UseCase) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.SessionID) == "" {
		return nil, fmt.Errorf("%w: session id is empty", ErrSessionNotFound)
	}

	session, err := u.store.Load(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, req.SessionID)
		}
		u.logger.Error("generate permit: load session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}
	if !session.IsPaid() {
		return nil, fmt.Errorf("%w: payment status is %q", ErrNotPaid, session.PaymentStatus)
	}

	doc := u.buildDocument(&session.Application, req.Lang)

	content, err := u.renderer.Render(doc)
	if err != nil {
		u.logger.Error("generate permit: render for session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: render: %v", ErrInternal, err)
	}

	u.logger.Info("generate permit: session %s rendered %d bytes", session.ID, len(content))

	return &Response{
		FileName:    PermitFileName,
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func (u *UseCase) buildDocument(app *domain.Application, lang i18n.Lang) *permitpdf.Document {
	t := i18n.T(lang)

	applicant := app.Applicant()
	validity := pricing.Validity(app.Route.StartDate, app.Route.Period)
	issueDate := u.timeProvider.Now().UTC().Format(domain.DateFormat)
	price := fmt.Sprintf("%d RON", app.Price)

	var applicantLines []permitpdf.Line
	if applicant.Kind == domain.ApplicantOrganization && applicant.Organization != nil {
		o := applicant.Organization
		applicantLines = []permitpdf.Line{
			{Label: t("organization_name"), Value: o.Name},
			{Label: t("tax_id"), Value: o.TaxID},
			{Label: t("organization_email"), Value: o.Email},
		}
	} else if applicant.Individual != nil {
		i := applicant.Individual
		applicantLines = []permitpdf.Line{
			{Label: t("last_name"), Value: i.LastName},
			{Label: t("first_name"), Value: i.FirstName},
			{Label: t("national_id"), Value: i.NationalID},
			{Label: t("email"), Value: i.Email},
		}
	}

	vehicleLines := []permitpdf.Line{
		{Label: t("make"), Value: app.Vehicle.Make},
		{Label: t("plate"), Value: app.Vehicle.Plate},
		{Label: t("max_weight"), Value: weightLine(app.Vehicle.MaxWeightTonnes)},
		{Label: t("route_description"), Value: app.Route.Description},
		{Label: t("zone"), Value: string(app.Route.Zone)},
	}

	validityLines := []permitpdf.Line{
		{Label: t("start_date"), Value: app.Route.StartDate},
		{Label: t("period"), Value: t(string(app.Route.Period))},
		{Label: t("valid_range"), Value: validity.String()},
	}

	payload, err := json.Marshal(qrPayload{
		Applicant: applicant.DisplayName(),
		Vehicle:   app.Vehicle.Make + " - " + app.Vehicle.Plate,
		Route:     app.Route.Description,
		Price:     price,
		IssueDate: issueDate,
		Validity:  validity.String(),
	})
	if err != nil {
		payload = nil
	}

	return &permitpdf.Document{
		Title:            t("app_title"),
		ApplicantHeading: t("applicant_section"),
		ApplicantLines:   applicantLines,
		VehicleHeading:   t("vehicle_section"),
		VehicleLines:     vehicleLines,
		ValidityHeading:  t("validity_fee_section"),
		ValidityLines:    validityLines,
		PriceLine:        t("permit_price") + " " + price,
		IssueLine:        t("issue_date") + ": " + issueDate,
		QRPayload:        string(payload),
	}
}

func weightLine(w string) string {
	if strings.TrimSpace(w) == "" {
		return ""
	}
	return w + " t"
}
