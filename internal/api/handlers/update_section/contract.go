package update_section

import (
	"context"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/internal/service/wizard/models"
)

type WizardService interface {
	UpdateSection(ctx context.Context, id string, update domain.SectionUpdate) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
