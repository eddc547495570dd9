package reset_session

import (
	"context"

	"github.com/szekelyhub/transit-permit-service/internal/service/wizard/models"
)

type WizardService interface {
	Reset(ctx context.Context, id string) (*models.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
