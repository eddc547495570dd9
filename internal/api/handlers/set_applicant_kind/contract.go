package set_applicant_kind

import (
	"context"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard/models"
)

type WizardService interface {
	SetApplicantKind(ctx context.Context, id string, kind domain.ApplicantKind) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
