package retreat_step

import (
	"context"

	"github.com/szekelyhub/transit-permit-service/internal/service/wizard/models"
)

type WizardService interface {
	Retreat(ctx context.Context, id string) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
